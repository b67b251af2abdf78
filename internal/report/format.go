// Package report turns forecast results into human-readable text.
package report

import (
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"property-forecast/internal/model"
)

// Formatter renders amounts in one currency, rounded to whole units.
type Formatter struct {
	cur *money.Formatter
}

// NewFormatter fails for currency codes go-money does not know.
func NewFormatter(currency string) (Formatter, error) {
	c := money.GetCurrency(currency)
	if c == nil {
		return Formatter{}, fmt.Errorf("unknown currency %q", currency)
	}
	return Formatter{cur: money.NewFormatter(0, c.Decimal, c.Thousand, c.Grapheme, c.Template)}, nil
}

// Money formats v in whole currency units, e.g. "R3 100 000".
func (f Formatter) Money(v float64) string {
	return f.cur.Format(decimal.NewFromFloat(v).Round(0).IntPart())
}

// SignedMoney prefixes positive amounts with "+".
func (f Formatter) SignedMoney(v float64) string {
	if v > 0 {
		return "+" + f.Money(v)
	}
	return f.Money(v)
}

// Rate formats an annual fraction as a percentage, e.g. 0.12345 -> "12.35%".
func Rate(v float64) string {
	return fmt.Sprintf("%.2f%%", 100*v)
}

// Value formats v according to kind; it doubles as a sweep label function.
func (f Formatter) Value(kind model.ParamKind, v float64) string {
	switch kind {
	case model.KindMoney:
		return f.Money(v)
	case model.KindRate:
		return Rate(v)
	case model.KindYears:
		return strconv.Itoa(int(v)) + " years"
	case model.KindMonths:
		return strconv.Itoa(int(v)) + " months"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}
