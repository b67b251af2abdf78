package recorder

import "property-forecast/internal/forecast"

// NoopRecorder is used when no database path is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *forecast.Result) (int64, error) { return 0, nil }
func (n *NoopRecorder) RecentRuns(_ int) ([]RunSummary, error)     { return nil, nil }
func (n *NoopRecorder) Close() error                               { return nil }
