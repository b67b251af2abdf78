package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAssumption is wrapped by every validation failure of an assumption set.
var ErrInvalidAssumption = errors.New("invalid assumption")

// Rates outside this range are almost always percentages typed as whole
// numbers (10 instead of 0.10).
const (
	MinRate = -1.0
	MaxRate = 5.0
)

// Upper bounds on the time grid. They keep month arithmetic far from int
// overflow and the per-month ledgers a bounded size.
const (
	MaxBondTerm      = 100  // years
	MaxHorizonMonths = 1200 // 100 years
)

// Assumptions defines the economic inputs of one comparison run.
// Units:
// - currency fields: one unit of the configured currency
// - *_rate fields: annual nominal fractions (0.05 = 5%)
// - BondTerm: years
// - HorizonMonths: months simulated
type Assumptions struct {
	IncomeSurplus                  float64 `yaml:"income_surplus" json:"income_surplus"`
	InvestmentRate                 float64 `yaml:"investment_rate" json:"investment_rate"`
	PropertyValuation              float64 `yaml:"property_valuation" json:"property_valuation"`
	BondRate                       float64 `yaml:"bond_rate" json:"bond_rate"`
	BondTerm                       int     `yaml:"bond_term" json:"bond_term"`
	MonthlyInsurance               float64 `yaml:"monthly_insurance" json:"monthly_insurance"`
	MonthlyTaxes                   float64 `yaml:"monthly_taxes" json:"monthly_taxes"`
	MonthlyLevies                  float64 `yaml:"monthly_levies" json:"monthly_levies"`
	TransferDuty                   float64 `yaml:"transfer_duty" json:"transfer_duty"`
	LawyerFees                     float64 `yaml:"lawyer_fees" json:"lawyer_fees"`
	PropertyAppreciationRate       float64 `yaml:"property_appreciation_rate" json:"property_appreciation_rate"`
	Deposit                        float64 `yaml:"deposit" json:"deposit"`
	MonthlyRentalIncome            float64 `yaml:"monthly_rental_income" json:"monthly_rental_income"`
	PropertySaleCommissionRate     float64 `yaml:"property_sale_commission_rate" json:"property_sale_commission_rate"`
	RentalEscalationRate           float64 `yaml:"rental_escalation_rate" json:"rental_escalation_rate"`
	PropertyExpensesEscalationRate float64 `yaml:"property_expenses_escalation_rate" json:"property_expenses_escalation_rate"`
	InflationRate                  float64 `yaml:"inflation_rate" json:"inflation_rate"`
	RentalManagementFeePct         float64 `yaml:"rental_management_fee_pct,omitempty" json:"rental_management_fee_pct,omitempty"`
	HorizonMonths                  int     `yaml:"horizon_months" json:"horizon_months"`
}

// AssumptionSet is a validated Assumptions value. It is only produced by
// NewAssumptionSet and is passed by value, so simulations can never write
// back into the caller's copy.
type AssumptionSet struct {
	Assumptions
}

func NewAssumptionSet(a Assumptions) (AssumptionSet, error) {
	if err := a.Validate(); err != nil {
		return AssumptionSet{}, err
	}
	return AssumptionSet{Assumptions: a}, nil
}

// Validate reports every violated constraint at once.
func (a Assumptions) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidAssumption}, args...)...))
	}

	for _, r := range a.rates() {
		if math.IsNaN(r.value) || r.value < MinRate || r.value > MaxRate {
			fail("%s=%v must be within [%v, %v]", r.name, r.value, MinRate, MaxRate)
		}
	}
	if a.PropertySaleCommissionRate < 0 || a.PropertySaleCommissionRate > 1 {
		fail("property_sale_commission_rate=%v must be within [0, 1]", a.PropertySaleCommissionRate)
	}
	if a.Deposit < 0 {
		fail("deposit=%v must be >= 0", a.Deposit)
	}
	if a.Deposit > a.PropertyValuation {
		fail("deposit=%v exceeds property_valuation=%v", a.Deposit, a.PropertyValuation)
	}
	if a.MonthlyRentalIncome < 0 {
		fail("monthly_rental_income=%v must be >= 0", a.MonthlyRentalIncome)
	}
	if a.HorizonMonths < 1 || a.HorizonMonths > MaxHorizonMonths {
		fail("horizon_months=%d must be within [1, %d]", a.HorizonMonths, MaxHorizonMonths)
	}
	if a.BondTerm < 1 || a.BondTerm > MaxBondTerm {
		fail("bond_term=%d must be within [1, %d]", a.BondTerm, MaxBondTerm)
	}
	return errors.Join(errs...)
}

type namedRate struct {
	name  string
	value float64
}

func (a Assumptions) rates() []namedRate {
	return []namedRate{
		{"investment_rate", a.InvestmentRate},
		{"bond_rate", a.BondRate},
		{"property_appreciation_rate", a.PropertyAppreciationRate},
		{"property_sale_commission_rate", a.PropertySaleCommissionRate},
		{"rental_escalation_rate", a.RentalEscalationRate},
		{"property_expenses_escalation_rate", a.PropertyExpensesEscalationRate},
		{"inflation_rate", a.InflationRate},
		{"rental_management_fee_pct", a.RentalManagementFeePct},
	}
}

// Principal is the amount financed by the bond.
func (a Assumptions) Principal() float64 {
	return a.PropertyValuation - a.Deposit
}

// ClosingCosts are the one-time acquisition costs.
func (a Assumptions) ClosingCosts() float64 {
	return a.TransferDuty + a.LawyerFees
}

// MonthlyExpenses is the unescalated recurring cost of holding the property.
func (a Assumptions) MonthlyExpenses() float64 {
	return a.MonthlyInsurance + a.MonthlyTaxes + a.MonthlyLevies
}

// MonthlyRate converts an annual nominal rate into the equivalent monthly
// compounding rate, so twelve monthly steps reproduce the annual rate exactly.
func MonthlyRate(annual float64) float64 {
	return math.Pow(1+annual, 1.0/12) - 1
}

// Deflate converts a nominal value at the end of month into time-zero money.
func Deflate(nominal, inflationRate float64, month int) float64 {
	return nominal / math.Pow(1+inflationRate, float64(month)/12)
}
