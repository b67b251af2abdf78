package model

import (
	"fmt"
	"math"
	"sort"
)

// ParamKind tells collaborators how to format a parameter value.
type ParamKind string

const (
	KindMoney  ParamKind = "money"
	KindRate   ParamKind = "rate"
	KindYears  ParamKind = "years"
	KindMonths ParamKind = "months"
)

// Param describes one assumption field that can be varied by a sweep.
type Param struct {
	Name        string
	Kind        ParamKind
	Description string

	get func(a *Assumptions) float64
	set func(a *Assumptions, v float64)
}

func (p Param) Get(a Assumptions) float64 { return p.get(&a) }

var params = []Param{
	moneyParam("income_surplus", "Monthly income surplus available for investment",
		func(a *Assumptions) *float64 { return &a.IncomeSurplus }),
	rateParam("investment_rate", "Expected annual index fund return",
		func(a *Assumptions) *float64 { return &a.InvestmentRate }),
	moneyParam("property_valuation", "Purchase price of the property",
		func(a *Assumptions) *float64 { return &a.PropertyValuation }),
	rateParam("bond_rate", "Annual interest rate of the bond",
		func(a *Assumptions) *float64 { return &a.BondRate }),
	intParam("bond_term", KindYears, "Term of the bond in years",
		func(a *Assumptions) *int { return &a.BondTerm }),
	moneyParam("monthly_insurance", "Monthly home owner's insurance",
		func(a *Assumptions) *float64 { return &a.MonthlyInsurance }),
	moneyParam("monthly_taxes", "Monthly property taxes",
		func(a *Assumptions) *float64 { return &a.MonthlyTaxes }),
	moneyParam("monthly_levies", "Monthly levies",
		func(a *Assumptions) *float64 { return &a.MonthlyLevies }),
	moneyParam("transfer_duty", "One-time transfer duty",
		func(a *Assumptions) *float64 { return &a.TransferDuty }),
	moneyParam("lawyer_fees", "One-time conveyancing fees",
		func(a *Assumptions) *float64 { return &a.LawyerFees }),
	rateParam("property_appreciation_rate", "Expected annual property appreciation",
		func(a *Assumptions) *float64 { return &a.PropertyAppreciationRate }),
	moneyParam("deposit", "Deposit paid towards the property",
		func(a *Assumptions) *float64 { return &a.Deposit }),
	moneyParam("monthly_rental_income", "Monthly rental income",
		func(a *Assumptions) *float64 { return &a.MonthlyRentalIncome }),
	rateParam("property_sale_commission_rate", "Agent commission on sale",
		func(a *Assumptions) *float64 { return &a.PropertySaleCommissionRate }),
	rateParam("rental_escalation_rate", "Annual rental escalation",
		func(a *Assumptions) *float64 { return &a.RentalEscalationRate }),
	rateParam("property_expenses_escalation_rate", "Annual escalation of insurance, taxes and levies",
		func(a *Assumptions) *float64 { return &a.PropertyExpensesEscalationRate }),
	rateParam("inflation_rate", "Annual inflation used for real values",
		func(a *Assumptions) *float64 { return &a.InflationRate }),
	rateParam("rental_management_fee_pct", "Agent fee as a share of the coming year's rent",
		func(a *Assumptions) *float64 { return &a.RentalManagementFeePct }),
	intParam("horizon_months", KindMonths, "Number of months simulated",
		func(a *Assumptions) *int { return &a.HorizonMonths }),
}

var paramsByName = func() map[string]Param {
	m := make(map[string]Param, len(params))
	for _, p := range params {
		m[p.Name] = p
	}
	return m
}()

// Params returns the catalogue of sweepable parameters sorted by name.
func Params() []Param {
	out := append([]Param(nil), params...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func LookupParam(name string) (Param, bool) {
	p, ok := paramsByName[name]
	return p, ok
}

// With returns a copy of a with the named parameter replaced by v.
// Integer parameters must receive whole numbers.
func (a Assumptions) With(name string, v float64) (Assumptions, error) {
	p, ok := paramsByName[name]
	if !ok {
		return a, fmt.Errorf("unknown parameter %q", name)
	}
	if (p.Kind == KindYears || p.Kind == KindMonths) && v != math.Trunc(v) {
		return a, fmt.Errorf("parameter %q needs a whole number, got %v", name, v)
	}
	p.set(&a, v)
	return a, nil
}

func moneyParam(name, desc string, field func(*Assumptions) *float64) Param {
	return floatParam(name, KindMoney, desc, field)
}

func rateParam(name, desc string, field func(*Assumptions) *float64) Param {
	return floatParam(name, KindRate, desc, field)
}

func floatParam(name string, kind ParamKind, desc string, field func(*Assumptions) *float64) Param {
	return Param{
		Name:        name,
		Kind:        kind,
		Description: desc,
		get:         func(a *Assumptions) float64 { return *field(a) },
		set:         func(a *Assumptions, v float64) { *field(a) = v },
	}
}

func intParam(name string, kind ParamKind, desc string, field func(*Assumptions) *int) Param {
	return Param{
		Name:        name,
		Kind:        kind,
		Description: desc,
		get:         func(a *Assumptions) float64 { return float64(*field(a)) },
		set:         func(a *Assumptions, v float64) { *field(a) = int(v) },
	}
}
