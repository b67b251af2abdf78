package models

import (
	"property-forecast/internal/config"
	"property-forecast/internal/forecast"
	"property-forecast/internal/model"
)

// ForecastRequest represents the request body for a single comparison.
// Assumptions default to the baseline when omitted; Overrides are applied
// on top by parameter name (see GET /api/v1/assumptions/params).
type ForecastRequest struct {
	Label         string             `json:"label,omitempty"`
	Assumptions   *model.Assumptions `json:"assumptions,omitempty"`
	Overrides     map[string]float64 `json:"overrides,omitempty"`
	Options       forecast.Options   `json:"options,omitempty"`
	IncludeSeries bool               `json:"include_series,omitempty"` // default: false
	Currency      string             `json:"currency,omitempty"`       // for the markdown report
	IncludeReport bool               `json:"include_report,omitempty"`
}

// SweepRequest varies one parameter over a base set of assumptions.
type SweepRequest struct {
	Base      *model.Assumptions `json:"base,omitempty"`
	Overrides map[string]float64 `json:"overrides,omitempty"`
	Options   forecast.Options   `json:"options,omitempty"`
	Sweep     config.SweepConfig `json:"sweep"`
	Currency  string             `json:"currency,omitempty"` // for variant labels
}

// ScheduleRequest describes a bond to amortize. The limits match
// model.MaxBondTerm and model.MaxHorizonMonths.
type ScheduleRequest struct {
	Principal     float64 `json:"principal" binding:"gte=0"`
	AnnualRate    float64 `json:"annual_rate"`
	TermYears     int     `json:"term_years" binding:"required,gte=1,lte=100"`
	HorizonMonths int     `json:"horizon_months,omitempty" binding:"gte=0,lte=1200"` // 0 = full term
}

// RunsRequest pages through recorded runs.
type RunsRequest struct {
	Limit int `form:"limit,omitempty"` // default: 20
}
