package scenario

import (
	"property-forecast/internal/bond"
	"property-forecast/internal/model"
)

// PropertyMonth is one row of the property ledger.
type PropertyMonth struct {
	Month         int
	PropertyValue float64
	BondBalance   float64
	Commission    float64
	NetEquity     float64

	RentalIncome  float64
	ManagementFee float64
	Expenses      float64
	BondPayment   float64
	CashFlow      float64
	CumCashFlow   float64
}

// Property simulates owning a bonded property. Its value is market price
// net of the outstanding bond and a notional sale commission. Monthly cash
// flow is reported but not reinvested; the cash side of the comparison is
// the index fund fed by the same income surplus.
type Property struct{}

func NewProperty() *Property { return &Property{} }

func (p *Property) Name() string { return NameProperty }

// PropertyRun is everything one property simulation produces.
type PropertyRun struct {
	Schedule bond.Schedule
	Ledger   []PropertyMonth
	Series   model.ValueSeries
}

func (p *Property) Simulate(a model.AssumptionSet) model.ValueSeries {
	return p.Run(a).Series
}

// Run amortizes the bond once, walks the ledger once and derives the value
// series from it.
func (p *Property) Run(a model.AssumptionSet) PropertyRun {
	sched := p.Schedule(a)
	opening, rows := ledger(a, sched)
	s := model.ValueSeries{
		Scenario: p.Name(),
		Opening:  model.ValuePoint{Month: 0, Nominal: opening, Real: opening},
		Points:   make([]model.ValuePoint, len(rows)),
	}
	for i, r := range rows {
		s.Points[i] = model.ValuePoint{
			Month:    r.Month,
			Nominal:  r.NetEquity,
			Real:     model.Deflate(r.NetEquity, a.InflationRate, r.Month),
			CashFlow: r.CashFlow,
		}
	}
	return PropertyRun{Schedule: sched, Ledger: rows, Series: s}
}

// Schedule amortizes the financed part of the purchase over the horizon.
func (p *Property) Schedule(a model.AssumptionSet) bond.Schedule {
	return bond.NewSchedule(a.Principal(), a.BondRate, a.BondTerm, a.HorizonMonths)
}

// Ledger returns the acquisition-month value and one row per simulated month.
func (p *Property) Ledger(a model.AssumptionSet) (float64, []PropertyMonth) {
	return ledger(a, p.Schedule(a))
}

func ledger(a model.AssumptionSet, sched bond.Schedule) (float64, []PropertyMonth) {
	growth := 1 + model.MonthlyRate(a.PropertyAppreciationRate)

	opening := a.PropertyValuation - a.ClosingCosts() - sched.BalanceAt(0)

	rows := make([]PropertyMonth, a.HorizonMonths)
	value := a.PropertyValuation
	cum := 0.0
	for i := range rows {
		m := i + 1
		value *= growth

		rent := escalated(a.MonthlyRentalIncome, a.RentalEscalationRate, m)
		fee := 0.0
		if a.RentalManagementFeePct > 0 && anniversary(m) {
			fee = a.RentalManagementFeePct * rent * 12
		}
		expenses := escalated(a.MonthlyExpenses(), a.PropertyExpensesEscalationRate, m)
		payment := sched.PaymentAt(m)
		cash := rent - fee - expenses - payment
		cum += cash

		balance := sched.BalanceAt(m)
		commission := a.PropertySaleCommissionRate * value
		rows[i] = PropertyMonth{
			Month:         m,
			PropertyValue: value,
			BondBalance:   balance,
			Commission:    commission,
			NetEquity:     value - balance - commission,
			RentalIncome:  rent,
			ManagementFee: fee,
			Expenses:      expenses,
			BondPayment:   payment,
			CashFlow:      cash,
			CumCashFlow:   cum,
		}
	}
	return opening, rows
}
