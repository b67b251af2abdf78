package models

import (
	"property-forecast/internal/analysis"
	"property-forecast/internal/bond"
	"property-forecast/internal/forecast"
	"property-forecast/internal/model"
	"property-forecast/internal/recorder"
)

// ForecastResponse represents the response from a comparison run
type ForecastResponse struct {
	RunID       int64             `json:"run_id,omitempty"`
	Label       string            `json:"label"`
	Assumptions model.Assumptions `json:"assumptions"`
	Options     forecast.Options  `json:"options"`
	Summary     forecast.Summary  `json:"summary"`
	Stats       analysis.Stats    `json:"stats"`
	Series      []SeriesRow       `json:"series,omitempty"`
	Report      string            `json:"report,omitempty"`
}

// SeriesRow is one month of both scenarios side by side
type SeriesRow struct {
	Month           int            `json:"month"`
	PropertyNominal float64        `json:"property_nominal"`
	PropertyReal    float64        `json:"property_real"`
	FundNominal     float64        `json:"fund_nominal"`
	FundReal        float64        `json:"fund_real"`
	NominalDelta    float64        `json:"nominal_delta"`
	RealDelta       float64        `json:"real_delta"`
	Leader          model.Position `json:"leader"`
	CashFlow        float64        `json:"property_cash_flow"`
	BondBalance     float64        `json:"bond_balance"`
}

// SweepResponse lists the variants in request order plus a ranking of the
// successful ones
type SweepResponse struct {
	Name    string            `json:"name"`
	Title   string            `json:"title"`
	Param   string            `json:"param"`
	Results []SweepItem       `json:"results"`
	Ranking []analysis.Ranked `json:"ranking"`
}

// SweepItem is the outcome of one variant; exactly one of Summary and Error is set
type SweepItem struct {
	Label   string            `json:"label"`
	Value   float64           `json:"value"`
	Summary *forecast.Summary `json:"summary,omitempty"`
	Error   *ErrorDetail      `json:"error,omitempty"`
}

// ScheduleResponse is an amortization schedule
type ScheduleResponse struct {
	Schedule      bond.Schedule `json:"schedule"`
	TotalInterest float64       `json:"total_interest"`
}

// DefaultsResponse carries the baseline assumptions and standard sweeps
type DefaultsResponse struct {
	Assumptions model.Assumptions `json:"assumptions"`
	Options     forecast.Options  `json:"options"`
	Currency    string            `json:"currency"`
	Sweeps      []SweepInfo       `json:"sweeps"`
}

// SweepInfo describes a predefined sweep
type SweepInfo struct {
	Name   string    `json:"name"`
	Title  string    `json:"title"`
	Param  string    `json:"param"`
	Values []float64 `json:"values"`
}

// ParameterInfo describes a sweepable assumption
type ParameterInfo struct {
	Name        string          `json:"name"`
	Kind        model.ParamKind `json:"kind"` // "money", "rate", "years", "months"
	Description string          `json:"description"`
	Default     float64         `json:"default"`
}

// RunsResponse lists recorded runs, newest first
type RunsResponse struct {
	Runs []recorder.RunSummary `json:"runs"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
