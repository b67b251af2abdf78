package analysis

import (
	"math"

	"property-forecast/internal/forecast"
	"property-forecast/internal/model"
)

// Stats summarises how the two scenarios evolve relative to each other.
type Stats struct {
	Months int `json:"months"`

	// Best and worst property-minus-fund gaps and when they occur.
	MaxNominalDelta      float64 `json:"max_nominal_delta"`
	MaxNominalDeltaMonth int     `json:"max_nominal_delta_month"`
	MinNominalDelta      float64 `json:"min_nominal_delta"`
	MinNominalDeltaMonth int     `json:"min_nominal_delta_month"`
	MaxRealDelta         float64 `json:"max_real_delta"`
	MinRealDelta         float64 `json:"min_real_delta"`

	MonthsPropertyAhead int `json:"months_property_ahead"`
	MonthsFundAhead     int `json:"months_fund_ahead"`

	// Property cash flow (reported, never reinvested).
	TotalCashFlow          float64 `json:"total_cash_flow"`
	WorstCashFlow          float64 `json:"worst_cash_flow"`
	WorstCashFlowMonth     int     `json:"worst_cash_flow_month"`
	NegativeCashFlowMonths int     `json:"negative_cash_flow_months"`

	BondPayment      float64 `json:"bond_payment"`
	BondInterestPaid float64 `json:"bond_interest_paid"`
	BondBalanceAtEnd float64 `json:"bond_balance_at_end"`
}

func ComputeStats(res *forecast.Result) Stats {
	s := Stats{}
	if res == nil || res.Comparison == nil || len(res.Comparison.Deltas) == 0 {
		return s
	}
	deltas := res.Comparison.Deltas
	s.Months = len(deltas)

	s.MaxNominalDelta, s.MinNominalDelta = math.Inf(-1), math.Inf(1)
	s.MaxRealDelta, s.MinRealDelta = math.Inf(-1), math.Inf(1)
	for _, d := range deltas {
		if d.Nominal > s.MaxNominalDelta {
			s.MaxNominalDelta, s.MaxNominalDeltaMonth = d.Nominal, d.Month
		}
		if d.Nominal < s.MinNominalDelta {
			s.MinNominalDelta, s.MinNominalDeltaMonth = d.Nominal, d.Month
		}
		s.MaxRealDelta = math.Max(s.MaxRealDelta, d.Real)
		s.MinRealDelta = math.Min(s.MinRealDelta, d.Real)
		switch d.Leader {
		case model.PositionProperty:
			s.MonthsPropertyAhead++
		case model.PositionFund:
			s.MonthsFundAhead++
		}
	}

	s.WorstCashFlow = math.Inf(1)
	for _, p := range res.Comparison.Property.Points {
		s.TotalCashFlow += p.CashFlow
		if p.CashFlow < s.WorstCashFlow {
			s.WorstCashFlow, s.WorstCashFlowMonth = p.CashFlow, p.Month
		}
		if p.CashFlow < 0 {
			s.NegativeCashFlowMonths++
		}
	}

	s.BondPayment = res.Schedule.Payment
	s.BondInterestPaid = res.Schedule.TotalInterest()
	s.BondBalanceAtEnd = res.Schedule.BalanceAt(s.Months)
	return s
}
