package recorder

import (
	"time"

	"property-forecast/internal/forecast"
)

// RunSummary is one stored forecast run.
type RunSummary struct {
	ID                int64     `json:"id"`
	RecordedAt        time.Time `json:"recorded_at"`
	Label             string    `json:"label"`
	HorizonMonths     int       `json:"horizon_months"`
	FinalPropertyReal float64   `json:"final_property_real"`
	FinalFundReal     float64   `json:"final_fund_real"`
	FinalRealDelta    float64   `json:"final_real_delta"`
	Leader            string    `json:"leader"`
	CrossoverMonth    *int      `json:"crossover_month,omitempty"`
}

// Recorder persists forecast runs for later comparison.
type Recorder interface {
	RecordRun(res *forecast.Result) (int64, error)
	RecentRuns(limit int) ([]RunSummary, error)
	Close() error
}
