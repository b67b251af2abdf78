package forecast

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-forecast/internal/model"
)

func baseline() model.Assumptions {
	return model.Assumptions{
		IncomeSurplus:                  30000,
		InvestmentRate:                 0.085,
		PropertyValuation:              3_000_000,
		BondRate:                       0.096,
		BondTerm:                       20,
		MonthlyInsurance:               500,
		MonthlyTaxes:                   1500,
		MonthlyLevies:                  2000,
		TransferDuty:                   70000,
		LawyerFees:                     70000,
		PropertyAppreciationRate:       0.1,
		Deposit:                        300_000,
		MonthlyRentalIncome:            15000,
		PropertySaleCommissionRate:     0.05,
		RentalEscalationRate:           0.05,
		PropertyExpensesEscalationRate: 0.05,
		InflationRate:                  0.06,
		RentalManagementFeePct:         0.1,
		HorizonMonths:                  120,
	}
}

func series(name string, nominal ...float64) model.ValueSeries {
	s := model.ValueSeries{Scenario: name}
	for i, v := range nominal {
		s.Points = append(s.Points, model.ValuePoint{Month: i + 1, Nominal: v, Real: v / 2})
	}
	return s
}

func TestCompare_CrossoverAtMonth7(t *testing.T) {
	prop := series("property", 1, 2, 3, 4, 5, 6, 20, 21, 22, 23)
	fund := series("fund", 10, 10, 10, 10, 10, 10, 10, 10, 10, 10)

	res, err := Compare(prop, fund)
	require.NoError(t, err)
	require.NotNil(t, res.Summary.CrossoverMonth)
	assert.Equal(t, 7, *res.Summary.CrossoverMonth)

	require.Len(t, res.Deltas, 10)
	assert.Equal(t, -9.0, res.Deltas[0].Nominal)
	assert.Equal(t, -4.5, res.Deltas[0].Real)
	assert.Equal(t, model.PositionFund, res.Deltas[5].Leader)
	assert.Equal(t, model.PositionProperty, res.Deltas[6].Leader)
	for i, d := range res.Deltas {
		assert.Equal(t, i+1, d.Month)
	}

	assert.Equal(t, 13.0, res.Summary.FinalNominalDelta)
	assert.Equal(t, 6.5, res.Summary.FinalRealDelta)
	assert.Equal(t, model.PositionProperty, res.Summary.Leader)
	assert.InDelta(t, 130.0, res.Summary.LeadPct, 1e-9)
}

func TestCompare_NoCrossover(t *testing.T) {
	res, err := Compare(series("p", 5, 6, 7), series("f", 1, 2, 3))
	require.NoError(t, err)
	assert.Nil(t, res.Summary.CrossoverMonth)
	assert.Equal(t, model.PositionProperty, res.Summary.Leader)
}

func TestCompare_FirstCrossoverOnly(t *testing.T) {
	res, err := Compare(series("p", 5, 1, 5, 1), series("f", 3, 3, 3, 3))
	require.NoError(t, err)
	require.NotNil(t, res.Summary.CrossoverMonth)
	assert.Equal(t, 2, *res.Summary.CrossoverMonth)
	assert.Equal(t, model.PositionFund, res.Summary.Leader)
	assert.InDelta(t, 200.0, res.Summary.LeadPct, 1e-9)
}

func TestCompare_Misaligned(t *testing.T) {
	_, err := Compare(series("p", 1, 2, 3), series("f", 1, 2))
	assert.True(t, errors.Is(err, ErrMisalignedSeries))

	shifted := series("f", 1, 2, 3)
	shifted.Points[2].Month = 4
	_, err = Compare(series("p", 1, 2, 3), shifted)
	assert.True(t, errors.Is(err, ErrMisalignedSeries))

	opened := series("f", 1, 2, 3)
	opened.Opening.Month = 1
	_, err = Compare(series("p", 1, 2, 3), opened)
	assert.True(t, errors.Is(err, ErrMisalignedSeries))
}

func TestCompare_CrossoverIgnoresOpening(t *testing.T) {
	p := series("p", 1, 2, 3)
	f := series("f", 2, 3, 4)
	p.Opening.Nominal = 10
	res, err := Compare(p, f)
	require.NoError(t, err)
	assert.Nil(t, res.Summary.CrossoverMonth)
	assert.Len(t, res.Deltas, 3)
	assert.Equal(t, 1, res.Deltas[0].Month)
}

func TestEngine_ResultPartsAgree(t *testing.T) {
	a := baseline()
	a.HorizonMonths = 36
	res, err := New(nil, Options{}).Run("consistent", a)
	require.NoError(t, err)

	require.Len(t, res.Schedule.Rows, 36)
	require.Len(t, res.Ledger, 36)
	for i, row := range res.Ledger {
		p := res.Comparison.Property.Points[i]
		assert.Equal(t, row.Month, p.Month)
		assert.Equal(t, row.NetEquity, p.Nominal)
		assert.Equal(t, row.CashFlow, p.CashFlow)
		assert.Equal(t, res.Schedule.Rows[i].Balance, row.BondBalance)
		assert.Equal(t, res.Schedule.Rows[i].Payment, row.BondPayment)
	}
}

func TestEngine_Run(t *testing.T) {
	log, hook := test.NewNullLogger()
	e := New(log, Options{})

	res, err := e.Run("Baseline", baseline())
	require.NoError(t, err)
	assert.Equal(t, "Baseline", res.Label)
	assert.Equal(t, 120, res.Comparison.Property.Len())
	assert.Equal(t, 120, res.Comparison.Fund.Len())
	assert.Len(t, res.Ledger, 120)
	assert.Len(t, res.Schedule.Rows, 120)
	assert.Greater(t, res.Schedule.BalanceAt(120), 0.0)

	last := res.Comparison.Property.Final()
	row := res.Ledger[119]
	assert.InDelta(t, row.PropertyValue-row.BondBalance-row.Commission, last.Nominal, 1e-6)

	require.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, "forecasting scenario", hook.AllEntries()[0].Message)
	assert.Equal(t, "Baseline", hook.AllEntries()[0].Data["label"])

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Message == "property cash flow is negative" {
			warned = true
		}
	}
	assert.True(t, warned, "bond payments exceed rent in the baseline")
}

func TestEngine_RunInvalid(t *testing.T) {
	a := baseline()
	a.BondRate = 9.6
	_, err := New(nil, Options{}).Run("bad", a)
	assert.True(t, errors.Is(err, model.ErrInvalidAssumption))
}

func TestEngine_SeedOption(t *testing.T) {
	plain, err := New(nil, Options{}).Run("plain", baseline())
	require.NoError(t, err)
	seeded, err := New(nil, Options{SeedFundWithDeposit: true}).Run("seeded", baseline())
	require.NoError(t, err)

	assert.Equal(t, 0.0, plain.Comparison.Fund.Opening.Nominal)
	assert.Equal(t, 440_000.0, seeded.Comparison.Fund.Opening.Nominal)
	assert.Greater(t, seeded.Comparison.Summary.FinalFund.Nominal, plain.Comparison.Summary.FinalFund.Nominal)
	assert.Equal(t, plain.Comparison.Property, seeded.Comparison.Property)
}

func TestEngine_RunIsDeterministic(t *testing.T) {
	e := New(nil, Options{SeedFundWithDeposit: true})
	first, err := e.Run("x", baseline())
	require.NoError(t, err)
	second, err := e.Run("x", baseline())
	require.NoError(t, err)
	assert.Equal(t, first.Comparison, second.Comparison)
}

func TestEngine_RunBatchPreservesOrder(t *testing.T) {
	var variants []Variant
	for i := 0; i < 12; i++ {
		a := baseline()
		a.Deposit = float64(i) * 100_000
		variants = append(variants, Variant{Label: fmt.Sprintf("deposit %d", i), Assumptions: a})
	}
	bad := baseline()
	bad.Deposit = 5_000_000
	variants = append(variants[:3], append([]Variant{{Label: "too much", Assumptions: bad}}, variants[3:]...)...)

	out := New(nil, Options{}).RunBatch(variants)
	require.Len(t, out, len(variants))

	for i, r := range out {
		assert.Equal(t, variants[i].Label, r.Variant.Label)
		if i == 3 {
			assert.True(t, errors.Is(r.Err, model.ErrInvalidAssumption))
			assert.Nil(t, r.Result)
			continue
		}
		require.NoError(t, r.Err)
		assert.Equal(t, variants[i].Label, r.Result.Label)
		assert.Equal(t, variants[i].Assumptions.Deposit, r.Result.Assumptions.Deposit)

		single, err := New(nil, Options{}).Run(variants[i].Label, variants[i].Assumptions)
		require.NoError(t, err)
		assert.Equal(t, single.Comparison, r.Result.Comparison)
	}
}

func TestEncodeSeriesCSV(t *testing.T) {
	a := baseline()
	a.HorizonMonths = 3
	res, err := New(nil, Options{}).Run("short", a)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeSeriesCSV(&buf, res))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "month", rows[0][0])
	assert.Equal(t, "3", rows[3][0])
	assert.Equal(t, string(res.Comparison.Deltas[2].Leader), rows[3][7])
}

func TestEncodeSweepCSV(t *testing.T) {
	a := baseline()
	a.HorizonMonths = 2
	bad := a
	bad.HorizonMonths = 0
	out := New(nil, Options{}).RunBatch([]Variant{
		{Label: "A", Assumptions: a},
		{Label: "B", Assumptions: bad},
	})

	var buf bytes.Buffer
	require.NoError(t, EncodeSweepCSV(&buf, out))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"month", "A property_real", "A fund_real"}, rows[0])
	cmp := out[0].Result.Comparison
	assert.Equal(t, fmtFloat(cmp.Property.Points[1].Real), rows[2][1])
	assert.Equal(t, fmtFloat(cmp.Fund.Points[1].Real), rows[2][2])
}

func TestWriteScheduleCSV(t *testing.T) {
	res, err := New(nil, Options{}).Run("s", baseline())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, WriteScheduleCSV(path, res.Schedule))
	require.NoError(t, WriteSeriesCSV(filepath.Join(t.TempDir(), "series.csv"), res))
}
