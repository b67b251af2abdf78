package config

import "property-forecast/internal/model"

const DefaultCurrency = "ZAR"

// Baseline is the reference scenario: a R3m property with a 10% deposit,
// let out at R15k a month, against investing R30k a month.
func Baseline() model.Assumptions {
	return model.Assumptions{
		IncomeSurplus:                  30000,
		InvestmentRate:                 0.085,
		PropertyValuation:              3_000_000,
		BondRate:                       0.096,
		BondTerm:                       20,
		MonthlyInsurance:               500,
		MonthlyTaxes:                   1500,
		MonthlyLevies:                  2000,
		TransferDuty:                   70000,
		LawyerFees:                     70000,
		PropertyAppreciationRate:       0.1,
		Deposit:                        300_000,
		MonthlyRentalIncome:            15000,
		PropertySaleCommissionRate:     0.05,
		RentalEscalationRate:           0.05,
		PropertyExpensesEscalationRate: 0.05,
		InflationRate:                  0.06,
		RentalManagementFeePct:         0.1,
		HorizonMonths:                  120,
	}
}

// Default returns a fresh baseline config with the standard sweeps.
func Default() *Config {
	return &Config{
		Label:       "Baseline",
		Assumptions: Baseline(),
		Report:      ReportConfig{Currency: DefaultCurrency},
		Sweeps: []SweepConfig{
			{
				Name:  "varying_deposit",
				Title: "Varying Deposit Amount",
				Param: "deposit",
				Range: &RangeConfig{Start: 0, Stop: 1_000_000, Step: 250_000},
			},
			{
				Name:  "varying_bond_rate_lower",
				Title: "Varying Bond Rate (lower)",
				Param: "bond_rate",
				Range: &RangeConfig{Start: 0.001, Stop: 0.1, Step: 0.025},
			},
			{
				Name:  "varying_bond_rate_higher",
				Title: "Varying Bond Rate (higher)",
				Param: "bond_rate",
				Range: &RangeConfig{Start: 0.1, Stop: 0.2, Step: 0.025},
			},
			{
				Name:  "varying_rental_income",
				Title: "Varying Rental Income",
				Param: "monthly_rental_income",
				Range: &RangeConfig{Start: 14000, Stop: 22000, Step: 2000},
			},
			{
				Name:  "varying_property_appreciation_rate",
				Title: "Varying Property Appreciation Rate",
				Param: "property_appreciation_rate",
				Range: &RangeConfig{Start: 0.04, Stop: 0.12, Step: 0.02},
			},
		},
	}
}
