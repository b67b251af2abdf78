package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-forecast/internal/config"
	"property-forecast/internal/forecast"
	"property-forecast/internal/model"
)

func usd(t *testing.T) Formatter {
	t.Helper()
	f, err := NewFormatter("USD")
	require.NoError(t, err)
	return f
}

func TestMoney(t *testing.T) {
	f := usd(t)
	assert.Equal(t, "$3,100,000", f.Money(3_100_000))
	assert.Equal(t, "$1,235", f.Money(1234.5))
	assert.Equal(t, "-$250", f.Money(-250.2))
	assert.Equal(t, "+$10", f.SignedMoney(10))
	assert.Equal(t, "$0", f.SignedMoney(0))
}

func TestNewFormatter_UnknownCurrency(t *testing.T) {
	_, err := NewFormatter("XYZ")
	assert.Error(t, err)
}

func TestRate(t *testing.T) {
	assert.Equal(t, "2.50%", Rate(0.025))
	assert.Equal(t, "-1.00%", Rate(-0.01))
}

func TestValue(t *testing.T) {
	f := usd(t)
	assert.Equal(t, "$500,000", f.Value(model.KindMoney, 500_000))
	assert.Equal(t, "9.00%", f.Value(model.KindRate, 0.09))
	assert.Equal(t, "20 years", f.Value(model.KindYears, 20))
	assert.Equal(t, "120 months", f.Value(model.KindMonths, 120))
}

func TestVerdict(t *testing.T) {
	month := 7
	s := forecast.Summary{Leader: model.PositionFund, LeadPct: 12.5, CrossoverMonth: &month}
	assert.Equal(t, "The index fund finishes ahead by 12.50%. The lead changes hands in month 7.", Verdict(s))

	s = forecast.Summary{Leader: model.PositionEven}
	assert.Equal(t, "Both scenarios finish level. The lead never changes hands.", Verdict(s))
}

func TestForecastReport(t *testing.T) {
	res, err := forecast.New(nil, forecast.Options{}).Run("Baseline", config.Baseline())
	require.NoError(t, err)

	md := Forecast(res, usd(t))
	assert.Contains(t, md, "# Baseline")
	assert.Contains(t, md, "| Property |")
	assert.Contains(t, md, "| bond_rate | 9.60% |")
	assert.Contains(t, md, "| horizon_months | 120 months |")
}

func TestSweepReport(t *testing.T) {
	base := config.Baseline()
	bad := base
	bad.Deposit = -1
	results := forecast.New(nil, forecast.Options{}).RunBatch([]forecast.Variant{
		{Label: "good", Assumptions: base},
		{Label: "broken", Assumptions: bad},
	})

	md := Sweep("Deposit", results, usd(t))
	assert.Contains(t, md, "# Deposit")
	assert.Contains(t, md, "| 1 | good |")
	assert.Contains(t, md, "**broken** skipped")
}

func TestRender(t *testing.T) {
	out, err := Render("# Title\n\nbody", 80)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}
