package report

import (
	"fmt"
	"strings"

	"property-forecast/internal/analysis"
	"property-forecast/internal/forecast"
	"property-forecast/internal/model"
)

// Forecast renders a single comparison as markdown.
func Forecast(res *forecast.Result, f Formatter) string {
	var b strings.Builder
	cmp := res.Comparison
	s := cmp.Summary
	stats := analysis.ComputeStats(res)

	fmt.Fprintf(&b, "# %s\n\n", res.Label)
	fmt.Fprintf(&b, "Horizon: %d months.\n\n", res.Assumptions.HorizonMonths)

	b.WriteString("## Final values\n\n")
	b.WriteString("| Scenario | Nominal | Real |\n|---|---:|---:|\n")
	fmt.Fprintf(&b, "| Property | %s | %s |\n", f.Money(s.FinalProperty.Nominal), f.Money(s.FinalProperty.Real))
	fmt.Fprintf(&b, "| Index fund | %s | %s |\n", f.Money(s.FinalFund.Nominal), f.Money(s.FinalFund.Real))
	fmt.Fprintf(&b, "| Difference | %s | %s |\n\n", f.SignedMoney(s.FinalNominalDelta), f.SignedMoney(s.FinalRealDelta))

	b.WriteString(Verdict(s))
	b.WriteString("\n\n")

	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "- Property ahead in %d of %d months\n", stats.MonthsPropertyAhead, stats.Months)
	fmt.Fprintf(&b, "- Widest property lead: %s (month %d)\n", f.SignedMoney(stats.MaxNominalDelta), stats.MaxNominalDeltaMonth)
	fmt.Fprintf(&b, "- Widest fund lead: %s (month %d)\n", f.SignedMoney(stats.MinNominalDelta), stats.MinNominalDeltaMonth)
	fmt.Fprintf(&b, "- Bond instalment: %s, interest paid: %s, balance at horizon: %s\n",
		f.Money(stats.BondPayment), f.Money(stats.BondInterestPaid), f.Money(stats.BondBalanceAtEnd))
	fmt.Fprintf(&b, "- Property cash flow: total %s, worst month %s (month %d), %d negative months\n\n",
		f.SignedMoney(stats.TotalCashFlow), f.SignedMoney(stats.WorstCashFlow), stats.WorstCashFlowMonth, stats.NegativeCashFlowMonths)

	b.WriteString("## Assumptions\n\n")
	b.WriteString(Assumptions(res.Assumptions.Assumptions, f))
	return b.String()
}

// Verdict is a one-line reading of the summary.
func Verdict(s forecast.Summary) string {
	var lead string
	switch s.Leader {
	case model.PositionProperty:
		lead = fmt.Sprintf("The property finishes ahead by %.2f%%.", s.LeadPct)
	case model.PositionFund:
		lead = fmt.Sprintf("The index fund finishes ahead by %.2f%%.", s.LeadPct)
	default:
		lead = "Both scenarios finish level."
	}
	if s.CrossoverMonth != nil {
		return fmt.Sprintf("%s The lead changes hands in month %d.", lead, *s.CrossoverMonth)
	}
	return lead + " The lead never changes hands."
}

// Assumptions renders every parameter as a markdown table.
func Assumptions(a model.Assumptions, f Formatter) string {
	var b strings.Builder
	b.WriteString("| Assumption | Value |\n|---|---:|\n")
	for _, p := range model.Params() {
		fmt.Fprintf(&b, "| %s | %s |\n", p.Name, f.Value(p.Kind, p.Get(a)))
	}
	return b.String()
}

// Sweep renders the ranking of a sweep's variants and any failures.
func Sweep(title string, results []forecast.BatchResult, f Formatter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	ranked := analysis.RankByFinalRealDelta(results)
	if len(ranked) > 0 {
		b.WriteString("| Rank | Variant | Property (real) | Fund (real) | Difference | Crossover |\n")
		b.WriteString("|---:|---|---:|---:|---:|---:|\n")
		for i, r := range ranked {
			cross := "-"
			if r.CrossoverMonth != nil {
				cross = fmt.Sprintf("%d", *r.CrossoverMonth)
			}
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
				i+1, r.Label, f.Money(r.FinalPropertyReal), f.Money(r.FinalFundReal), f.SignedMoney(r.FinalRealDelta), cross)
		}
		b.WriteString("\n")
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&b, "- **%s** skipped: %v\n", r.Variant.Label, r.Err)
		}
	}
	return b.String()
}
