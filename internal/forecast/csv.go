package forecast

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"property-forecast/internal/bond"
)

// WriteSeriesCSV writes one row per month of a comparison, for plotting.
func WriteSeriesCSV(path string, res *Result) error {
	return writeFile(path, func(w io.Writer) error { return EncodeSeriesCSV(w, res) })
}

func EncodeSeriesCSV(out io.Writer, res *Result) error {
	w := csv.NewWriter(out)

	header := []string{
		"month",
		"property_nominal",
		"property_real",
		"fund_nominal",
		"fund_real",
		"nominal_delta",
		"real_delta",
		"leader",
		"property_cash_flow",
		"bond_balance",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	cmp := res.Comparison
	for i, d := range cmp.Deltas {
		p, f := cmp.Property.Points[i], cmp.Fund.Points[i]
		row := []string{
			strconv.Itoa(d.Month),
			fmtFloat(p.Nominal),
			fmtFloat(p.Real),
			fmtFloat(f.Nominal),
			fmtFloat(f.Real),
			fmtFloat(d.Nominal),
			fmtFloat(d.Real),
			string(d.Leader),
			fmtFloat(p.CashFlow),
			fmtFloat(res.Schedule.BalanceAt(d.Month)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteSweepCSV writes the real values of every successful variant side by
// side, one row per month.
func WriteSweepCSV(path string, results []BatchResult) error {
	return writeFile(path, func(w io.Writer) error { return EncodeSweepCSV(w, results) })
}

func EncodeSweepCSV(out io.Writer, results []BatchResult) error {
	w := csv.NewWriter(out)

	header := []string{"month"}
	months := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		header = append(header,
			fmt.Sprintf("%s property_real", r.Variant.Label),
			fmt.Sprintf("%s fund_real", r.Variant.Label),
		)
		if n := len(r.Result.Comparison.Deltas); n > months {
			months = n
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	type realColumns struct{ property, fund []float64 }
	var cols []realColumns
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		cmp := r.Result.Comparison
		cols = append(cols, realColumns{cmp.Property.RealValues(), cmp.Fund.RealValues()})
	}

	for i := 0; i < months; i++ {
		row := []string{strconv.Itoa(i + 1)}
		for _, c := range cols {
			if i >= len(c.property) {
				row = append(row, "", "")
				continue
			}
			row = append(row, fmtFloat(c.property[i]), fmtFloat(c.fund[i]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteScheduleCSV writes a bond amortization schedule.
func WriteScheduleCSV(path string, s bond.Schedule) error {
	return writeFile(path, func(w io.Writer) error { return EncodeScheduleCSV(w, s) })
}

func EncodeScheduleCSV(out io.Writer, s bond.Schedule) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"month", "payment", "interest", "principal", "balance"}); err != nil {
		return err
	}
	for _, r := range s.Rows {
		row := []string{
			strconv.Itoa(r.Month),
			fmtFloat(r.Payment),
			fmtFloat(r.Interest),
			fmtFloat(r.Principal),
			fmtFloat(r.Balance),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
