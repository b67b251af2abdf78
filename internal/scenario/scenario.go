// Package scenario simulates the two investment strategies month by month.
// Simulations are pure: the same AssumptionSet always yields the same series.
package scenario

import "property-forecast/internal/model"

const (
	NameProperty  = "property"
	NameIndexFund = "index_fund"
)

type Scenario interface {
	Name() string
	Simulate(a model.AssumptionSet) model.ValueSeries
}

// escalated applies an annual escalation that steps up at months 13, 25, ...
func escalated(base, rate float64, month int) float64 {
	v := base
	for y := 0; y < (month-1)/12; y++ {
		v *= 1 + rate
	}
	return v
}

// anniversary reports whether month opens a new year of ownership (1, 13, 25, ...).
func anniversary(month int) bool {
	return month%12 == 1
}
