package analysis

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-forecast/internal/forecast"
	"property-forecast/internal/model"
)

func assumptions() model.Assumptions {
	return model.Assumptions{
		IncomeSurplus:              10000,
		InvestmentRate:             0.08,
		PropertyValuation:          2_000_000,
		BondRate:                   0.1,
		BondTerm:                   20,
		MonthlyInsurance:           500,
		MonthlyTaxes:               500,
		MonthlyLevies:              1000,
		PropertyAppreciationRate:   0.07,
		Deposit:                    200_000,
		MonthlyRentalIncome:        12000,
		PropertySaleCommissionRate: 0.05,
		RentalEscalationRate:       0.06,
		InflationRate:              0.05,
		HorizonMonths:              60,
	}
}

func TestComputeStats(t *testing.T) {
	res, err := forecast.New(nil, forecast.Options{}).Run("stats", assumptions())
	require.NoError(t, err)
	s := ComputeStats(res)

	assert.Equal(t, 60, s.Months)
	assert.Equal(t, 60, s.MonthsPropertyAhead+s.MonthsFundAhead+countEven(res))
	assert.GreaterOrEqual(t, s.MaxNominalDelta, s.MinNominalDelta)
	assert.GreaterOrEqual(t, s.MaxRealDelta, s.MinRealDelta)
	assert.Equal(t, res.Comparison.Deltas[s.MaxNominalDeltaMonth-1].Nominal, s.MaxNominalDelta)
	assert.Equal(t, res.Comparison.Deltas[s.MinNominalDeltaMonth-1].Nominal, s.MinNominalDelta)

	total := 0.0
	for _, row := range res.Ledger {
		total += row.CashFlow
	}
	assert.InDelta(t, total, s.TotalCashFlow, 1e-6)
	assert.InDelta(t, res.Ledger[59].CumCashFlow, s.TotalCashFlow, 1e-6)
	assert.Equal(t, res.Schedule.Payment, s.BondPayment)
	assert.Equal(t, res.Schedule.BalanceAt(60), s.BondBalanceAtEnd)
	assert.Greater(t, s.BondInterestPaid, 0.0)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
	assert.Equal(t, Stats{}, ComputeStats(&forecast.Result{}))
}

func countEven(res *forecast.Result) int {
	n := 0
	for _, d := range res.Comparison.Deltas {
		if d.Leader == model.PositionEven {
			n++
		}
	}
	return n
}

func TestRankByFinalRealDelta(t *testing.T) {
	var variants []forecast.Variant
	for _, rate := range []float64{0.04, 0.12, 0.08} {
		a, err := assumptions().With("property_appreciation_rate", rate)
		require.NoError(t, err)
		variants = append(variants, forecast.Variant{Label: fmt.Sprintf("appreciation %.2f", rate), Assumptions: a})
	}
	results := forecast.New(nil, forecast.Options{}).RunBatch(variants)
	results = append(results, forecast.BatchResult{Variant: forecast.Variant{Label: "broken"}, Err: errors.New("boom")})

	ranked := RankByFinalRealDelta(results)
	require.Len(t, ranked, 3)
	assert.Equal(t, variants[1].Label, ranked[0].Label)
	assert.Equal(t, variants[2].Label, ranked[1].Label)
	assert.Equal(t, variants[0].Label, ranked[2].Label)
	assert.Greater(t, ranked[0].FinalRealDelta, ranked[1].FinalRealDelta)
	assert.InDelta(t, ranked[0].FinalPropertyReal-ranked[0].FinalFundReal, ranked[0].FinalRealDelta, 1e-6)
}
