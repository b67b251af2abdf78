package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const baseAssumptions = `
assumptions:
  income_surplus: 30000
  investment_rate: 0.085
  property_valuation: 3000000
  bond_rate: 0.096
  bond_term: 20
  monthly_insurance: 500
  monthly_taxes: 1500
  monthly_levies: 2000
  transfer_duty: 70000
  lawyer_fees: 70000
  property_appreciation_rate: 0.1
  deposit: 300000
  n_years: 10
  monthly_rental_income: 15000
  property_sale_commission_rate: 0.05
  rental_escalation_rate: 0.05
  property_expenses_escalation_rate: 0.05
  inflation_rate: 0.06
  rental_management_fee_pct: 0.1
`

func TestLoad_InlineAssumptions(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c.yaml", baseAssumptions)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Baseline(), c.Assumptions)
	assert.Equal(t, "Baseline", c.Label)
	assert.Equal(t, DefaultCurrency, c.Report.Currency)
	assert.False(t, c.Options.SeedFundWithDeposit)
}

func TestLoad_AssumptionsFileWithOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", baseAssumptions)
	path := writeFile(t, dir, "c.yaml", `
assumptions_file: base.yaml
label: Cheap deposit
assumptions:
  deposit: 0
  transfer_duty: 0
  horizon_months: 36
options:
  seed_fund_with_deposit: true
report:
  currency: USD
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Cheap deposit", c.Label)
	assert.Equal(t, 0.0, c.Assumptions.Deposit)
	assert.Equal(t, 0.0, c.Assumptions.TransferDuty)
	assert.Equal(t, 70000.0, c.Assumptions.LawyerFees)
	assert.Equal(t, 36, c.Assumptions.HorizonMonths)
	assert.True(t, c.Options.SeedFundWithDeposit)
	assert.Equal(t, "USD", c.Report.Currency)
}

func TestLoad_NYearsOverrideReplacesHorizon(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", baseAssumptions)
	path := writeFile(t, dir, "c.yaml", "assumptions_file: base.yaml\nassumptions:\n  n_years: 3\n")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 36, c.Assumptions.HorizonMonths)
}

func TestLoad_CurrencyFromEnv(t *testing.T) {
	t.Setenv("FORECAST_CURRENCY", "EUR")
	path := writeFile(t, t.TempDir(), "c.yaml", baseAssumptions)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "EUR", c.Report.Currency)
}

func TestLoad_UnknownCurrency(t *testing.T) {
	t.Setenv("FORECAST_CURRENCY", "XXQ")
	path := writeFile(t, t.TempDir(), "c.yaml", baseAssumptions)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report.currency")
}

func TestLoad_InvalidAssumptions(t *testing.T) {
	path := writeFile(t, t.TempDir(), "c.yaml", strings.Replace(baseAssumptions, "bond_rate: 0.096", "bond_rate: 9.6", 1))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bond_rate")

	c, err := LoadUnchecked(path)
	require.NoError(t, err)
	assert.Equal(t, 9.6, c.Assumptions.BondRate)
}

func TestLoad_MissingFiles(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	path := writeFile(t, t.TempDir(), "c.yaml", "assumptions_file: missing.yaml\n")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoad_Sweeps(t *testing.T) {
	path := writeFile(t, t.TempDir(), "c.yaml", baseAssumptions+`
sweeps:
  - name: deposit
    title: Varying Deposit
    param: deposit
    range: {start: 0, stop: 1000000, step: 250000}
  - name: rent
    param: monthly_rental_income
    values: [14000, 16000]
    label: plain
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Sweeps, 2)

	s, err := c.Sweep("deposit")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 250000, 500000, 750000}, s.Values)
	assert.Equal(t, "Varying Deposit", s.Title)

	s, err = c.Sweep("rent")
	require.NoError(t, err)
	assert.Equal(t, "rent", s.Title)
	assert.Equal(t, "plain", s.Label)

	_, err = c.Sweep("missing")
	assert.Error(t, err)
}

func TestValidate_BadSweeps(t *testing.T) {
	tests := map[string]SweepConfig{
		"unknown param": {Name: "x", Param: "nope", Values: []float64{1}},
		"no values":     {Name: "x", Param: "deposit"},
		"both":          {Name: "x", Param: "deposit", Values: []float64{1}, Range: &RangeConfig{Start: 0, Stop: 2, Step: 1}},
		"zero step":     {Name: "x", Param: "deposit", Range: &RangeConfig{Start: 0, Stop: 2, Step: 0}},
		"no name":       {Param: "deposit", Values: []float64{1}},
	}
	for name, sc := range tests {
		t.Run(name, func(t *testing.T) {
			c := Default()
			c.Sweeps = []SweepConfig{sc}
			assert.Error(t, c.Validate())
		})
	}

	c := Default()
	c.Sweeps = append(c.Sweeps, c.Sweeps[0])
	assert.Error(t, c.Validate())
}

func TestDefault_IsValidAndFresh(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	c.Assumptions.Deposit = 1
	assert.Equal(t, 300_000.0, Default().Assumptions.Deposit)
}

func TestEncode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf))

	path := writeFile(t, t.TempDir(), "c.yaml", buf.String())
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Baseline(), c.Assumptions)
	assert.Len(t, c.Sweeps, 5)
}

func TestLoad_ExampleConfig(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "examples", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Cape Town flat", c.Label)
	assert.Equal(t, 450000.0, c.Assumptions.Deposit)
	assert.Equal(t, 180, c.Assumptions.HorizonMonths)
	assert.Equal(t, 0.096, c.Assumptions.BondRate)
	assert.True(t, c.Options.SeedFundWithDeposit)
	require.Len(t, c.Sweeps, 2)

	s, err := c.Sweep("appreciation")
	require.NoError(t, err)
	assert.Len(t, s.Values, 4)
}
