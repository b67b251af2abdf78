package analysis

import (
	"sort"

	"property-forecast/internal/forecast"
)

type Ranked struct {
	Label             string  `json:"label"`
	FinalRealDelta    float64 `json:"final_real_delta"`
	FinalPropertyReal float64 `json:"final_property_real"`
	FinalFundReal     float64 `json:"final_fund_real"`
	CrossoverMonth    *int    `json:"crossover_month,omitempty"`
}

// RankByFinalRealDelta orders successful variants from most to least
// favourable to the property, measured in time-zero money. Ties keep input order.
func RankByFinalRealDelta(results []forecast.BatchResult) []Ranked {
	out := make([]Ranked, 0, len(results))
	for _, r := range results {
		if r.Err != nil || r.Result == nil {
			continue
		}
		s := r.Result.Comparison.Summary
		out = append(out, Ranked{
			Label:             r.Variant.Label,
			FinalRealDelta:    s.FinalRealDelta,
			FinalPropertyReal: s.FinalProperty.Real,
			FinalFundReal:     s.FinalFund.Real,
			CrossoverMonth:    s.CrossoverMonth,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinalRealDelta > out[j].FinalRealDelta
	})
	return out
}
