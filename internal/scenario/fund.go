package scenario

import "property-forecast/internal/model"

// IndexFund simulates investing the monthly income surplus in an index fund.
type IndexFund struct {
	// SeedWithDeposit starts the fund with the cash the buyer would have
	// spent at acquisition (deposit plus closing costs) instead of zero.
	SeedWithDeposit bool
}

func NewIndexFund(seedWithDeposit bool) *IndexFund {
	return &IndexFund{SeedWithDeposit: seedWithDeposit}
}

func (f *IndexFund) Name() string { return NameIndexFund }

// Seed is the fund value at month 0.
func (f *IndexFund) Seed(a model.AssumptionSet) float64 {
	if !f.SeedWithDeposit {
		return 0
	}
	return a.Deposit + a.ClosingCosts()
}

func (f *IndexFund) Simulate(a model.AssumptionSet) model.ValueSeries {
	growth := 1 + model.MonthlyRate(a.InvestmentRate)
	seed := f.Seed(a)

	s := model.ValueSeries{
		Scenario: f.Name(),
		Opening:  model.ValuePoint{Month: 0, Nominal: seed, Real: seed},
		Points:   make([]model.ValuePoint, a.HorizonMonths),
	}
	value := seed
	for i := range s.Points {
		m := i + 1
		value = value*growth + a.IncomeSurplus
		s.Points[i] = model.ValuePoint{
			Month:   m,
			Nominal: value,
			Real:    model.Deflate(value, a.InflationRate, m),
		}
	}
	return s
}
