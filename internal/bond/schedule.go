// Package bond amortizes a fixed-rate bond (mortgage) month by month.
package bond

import (
	"math"

	"github.com/shopspring/decimal"

	"property-forecast/internal/model"
)

// Epsilon is the tolerance used for "rate is zero" and "balance is zero".
const Epsilon = 1e-9

// Row is one month of a bond schedule. Month is 1-based.
type Row struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// Schedule is the amortization of a bond, truncated at the forecast horizon.
type Schedule struct {
	Principal   float64 `json:"principal"`
	MonthlyRate float64 `json:"monthly_rate"`
	TermMonths  int     `json:"term_months"`
	Payment     float64 `json:"payment"`
	Rows        []Row   `json:"rows"`
}

// Payment returns the fixed monthly instalment rounded to cents.
func Payment(principal, monthlyRate float64, termMonths int) float64 {
	if principal == 0 || termMonths <= 0 {
		return 0
	}
	var p float64
	if math.Abs(monthlyRate) < Epsilon {
		p = principal / float64(termMonths)
	} else {
		p = principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(termMonths)))
	}
	return roundCents(p)
}

// NewSchedule amortizes principal at annualRate over termYears, stopping
// after min(termYears*12, horizonMonths) rows. The final scheduled month
// pays the remaining balance plus interest, so the balance ends at exactly 0.
// Callers bound termYears and horizonMonths (model.MaxBondTerm,
// model.MaxHorizonMonths); larger values are clamped to those limits.
func NewSchedule(principal, annualRate float64, termYears, horizonMonths int) Schedule {
	termYears = min(termYears, model.MaxBondTerm)
	horizonMonths = min(horizonMonths, model.MaxHorizonMonths)
	n := termYears * 12
	length := n
	if horizonMonths < length {
		length = horizonMonths
	}
	if length < 0 {
		length = 0
	}

	r := model.MonthlyRate(annualRate)
	s := Schedule{
		Principal:   principal,
		MonthlyRate: r,
		TermMonths:  n,
		Payment:     Payment(principal, r, n),
		Rows:        make([]Row, length),
	}
	if principal == 0 {
		for i := range s.Rows {
			s.Rows[i] = Row{Month: i + 1}
		}
		return s
	}

	balance := principal
	for i := 0; i < length; i++ {
		m := i + 1
		interest := balance * r
		payment := s.Payment
		if m == n || payment > balance+interest {
			payment = balance + interest
		}
		principalPart := payment - interest
		balance -= principalPart
		if m == n || math.Abs(balance) < Epsilon {
			balance = 0
		}
		s.Rows[i] = Row{
			Month:     m,
			Payment:   payment,
			Interest:  interest,
			Principal: principalPart,
			Balance:   balance,
		}
	}
	return s
}

// BalanceAt returns the outstanding balance after the given month.
// Month 0 is the full principal; months past the schedule are paid off.
func (s Schedule) BalanceAt(month int) float64 {
	switch {
	case month <= 0:
		return s.Principal
	case month <= len(s.Rows):
		return s.Rows[month-1].Balance
	case month >= s.TermMonths:
		return 0
	case len(s.Rows) == 0:
		return s.Principal
	default:
		// past the horizon but before the term ends
		return s.Rows[len(s.Rows)-1].Balance
	}
}

// PaymentAt returns the instalment due in month, or 0 once the bond is settled.
func (s Schedule) PaymentAt(month int) float64 {
	if month < 1 || month > len(s.Rows) {
		return 0
	}
	return s.Rows[month-1].Payment
}

// TotalInterest sums the interest paid over the scheduled rows.
func (s Schedule) TotalInterest() float64 {
	total := decimal.Zero
	for _, r := range s.Rows {
		total = total.Add(decimal.NewFromFloat(r.Interest))
	}
	return total.InexactFloat64()
}

func roundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
