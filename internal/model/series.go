package model

// ValuePoint is the state of one scenario at the end of a month.
// Month 0 is the acquisition month; simulated months run 1..HorizonMonths.
type ValuePoint struct {
	Month   int     `json:"month"`
	Nominal float64 `json:"nominal"`
	Real    float64 `json:"real"`

	// CashFlow is the month's rent minus fees, expenses and bond payment.
	// Only the property scenario fills it; it is reported, never reinvested.
	CashFlow float64 `json:"cash_flow,omitempty"`
}

// ValueSeries is the monthly output of one scenario simulation.
type ValueSeries struct {
	Scenario string       `json:"scenario"`
	Opening  ValuePoint   `json:"opening"`
	Points   []ValuePoint `json:"points"`
}

func (s ValueSeries) Len() int { return len(s.Points) }

// Final returns the last simulated point, or the opening point for an empty series.
func (s ValueSeries) Final() ValuePoint {
	if len(s.Points) == 0 {
		return s.Opening
	}
	return s.Points[len(s.Points)-1]
}

// RealValues returns the inflation-adjusted values indexed by point position.
func (s ValueSeries) RealValues() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Real
	}
	return out
}
