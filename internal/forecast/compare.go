package forecast

import (
	"errors"
	"fmt"

	"property-forecast/internal/model"
)

// ErrMisalignedSeries means the two series do not cover the same months.
// Series produced from one AssumptionSet are always aligned.
var ErrMisalignedSeries = errors.New("misaligned series")

// MonthDelta is property minus fund for one month.
type MonthDelta struct {
	Month   int            `json:"month"`
	Nominal float64        `json:"nominal"`
	Real    float64        `json:"real"`
	Leader  model.Position `json:"leader"`
}

type Summary struct {
	FinalProperty     model.ValuePoint `json:"final_property"`
	FinalFund         model.ValuePoint `json:"final_fund"`
	FinalNominalDelta float64          `json:"final_nominal_delta"`
	FinalRealDelta    float64          `json:"final_real_delta"`
	// CrossoverMonth is the first month whose leader differs from the
	// first month's leader; nil when neither scenario overtakes the other.
	CrossoverMonth *int           `json:"crossover_month,omitempty"`
	Leader         model.Position `json:"leader"`
	// LeadPct is the final lead as a percentage of the trailing scenario's
	// final nominal value (0 when that value is not positive).
	LeadPct float64 `json:"lead_pct"`
}

// ComparisonResult holds both series side by side, ordered by month.
type ComparisonResult struct {
	Property model.ValueSeries `json:"property"`
	Fund     model.ValueSeries `json:"fund"`
	Deltas   []MonthDelta      `json:"deltas"`
	Summary  Summary           `json:"summary"`
}

// Compare aligns the property and fund series month by month. Both opening
// points must be month 0. Deltas, leaders and the crossover cover the
// simulated months only: the crossover is measured against month 1's leader,
// never against the opening values.
func Compare(property, fund model.ValueSeries) (*ComparisonResult, error) {
	if property.Opening.Month != 0 || fund.Opening.Month != 0 {
		return nil, fmt.Errorf("%w: opening months are %d for property and %d for fund, want 0", ErrMisalignedSeries, property.Opening.Month, fund.Opening.Month)
	}
	if property.Len() != fund.Len() {
		return nil, fmt.Errorf("%w: property has %d months, fund has %d", ErrMisalignedSeries, property.Len(), fund.Len())
	}

	deltas := make([]MonthDelta, property.Len())
	var crossover *int
	for i := range property.Points {
		p, f := property.Points[i], fund.Points[i]
		if p.Month != f.Month {
			return nil, fmt.Errorf("%w: point %d is month %d for property and %d for fund", ErrMisalignedSeries, i, p.Month, f.Month)
		}
		d := p.Nominal - f.Nominal
		deltas[i] = MonthDelta{
			Month:   p.Month,
			Nominal: d,
			Real:    p.Real - f.Real,
			Leader:  model.PositionFromDelta(d),
		}
		if crossover == nil && i > 0 && deltas[i].Leader != deltas[0].Leader {
			m := p.Month
			crossover = &m
		}
	}

	finalP, finalF := property.Final(), fund.Final()
	s := Summary{
		FinalProperty:     finalP,
		FinalFund:         finalF,
		FinalNominalDelta: finalP.Nominal - finalF.Nominal,
		FinalRealDelta:    finalP.Real - finalF.Real,
		CrossoverMonth:    crossover,
		Leader:            model.PositionFromDelta(finalP.Nominal - finalF.Nominal),
	}
	switch s.Leader {
	case model.PositionProperty:
		s.LeadPct = leadPct(finalP.Nominal, finalF.Nominal)
	case model.PositionFund:
		s.LeadPct = leadPct(finalF.Nominal, finalP.Nominal)
	}

	return &ComparisonResult{
		Property: property,
		Fund:     fund,
		Deltas:   deltas,
		Summary:  s,
	}, nil
}

func leadPct(ahead, behind float64) float64 {
	if behind <= 0 {
		return 0
	}
	return (ahead - behind) / behind * 100
}
