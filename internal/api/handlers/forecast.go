package handlers

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"property-forecast/internal/analysis"
	"property-forecast/internal/api/models"
	"property-forecast/internal/config"
	"property-forecast/internal/forecast"
	"property-forecast/internal/model"
	"property-forecast/internal/recorder"
	"property-forecast/internal/report"
)

// ForecastHandler runs comparisons and sweeps
type ForecastHandler struct {
	log logrus.FieldLogger
	rec recorder.Recorder
}

// NewForecastHandler creates a new forecast handler. rec may be nil.
func NewForecastHandler(log logrus.FieldLogger, rec recorder.Recorder) *ForecastHandler {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &ForecastHandler{log: log, rec: rec}
}

// RunForecast handles POST /api/v1/forecast
func (h *ForecastHandler) RunForecast(c *gin.Context) {
	var req models.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	a, err := buildAssumptions(req.Assumptions, req.Overrides)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	var f report.Formatter
	if req.IncludeReport {
		if f, err = formatter(req.Currency); err != nil {
			abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
			return
		}
	}
	label := req.Label
	if label == "" {
		label = "Baseline"
	}

	res, err := forecast.New(h.log, req.Options).Run(label, a)
	if err != nil {
		abortWithForecastError(c, err)
		return
	}

	runID, err := h.rec.RecordRun(res)
	if err != nil {
		h.log.WithError(err).Warn("failed to record forecast run")
	}

	resp := models.ForecastResponse{
		RunID:       runID,
		Label:       res.Label,
		Assumptions: res.Assumptions.Assumptions,
		Options:     req.Options,
		Summary:     res.Comparison.Summary,
		Stats:       analysis.ComputeStats(res),
	}
	if req.IncludeSeries {
		resp.Series = buildSeries(res)
	}
	if req.IncludeReport {
		resp.Report = report.Forecast(res, f)
	}
	c.JSON(http.StatusOK, resp)
}

// RunSweep handles POST /api/v1/forecast/sweep
func (h *ForecastHandler) RunSweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	base, err := buildAssumptions(req.Base, req.Overrides)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	f, err := formatter(req.Currency)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	if req.Sweep.Name == "" {
		req.Sweep.Name = req.Sweep.Param
	}
	sweep, err := req.Sweep.ToSweep()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_SWEEP", err)
		return
	}
	variants, err := sweep.Variants(base, f.Value)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_SWEEP", err)
		return
	}

	results := forecast.New(h.log, req.Options).RunBatch(variants)

	resp := models.SweepResponse{
		Name:    sweep.Name,
		Title:   sweep.Title,
		Param:   sweep.Param,
		Results: make([]models.SweepItem, len(results)),
		Ranking: analysis.RankByFinalRealDelta(results),
	}
	for i, r := range results {
		item := models.SweepItem{Label: r.Variant.Label, Value: sweep.Values[i]}
		if r.Err != nil {
			_, detail := forecastError(r.Err)
			item.Error = &detail
		} else {
			summary := r.Result.Comparison.Summary
			item.Summary = &summary
		}
		resp.Results[i] = item
	}
	c.JSON(http.StatusOK, resp)
}

// ListRuns handles GET /api/v1/runs
func (h *ForecastHandler) ListRuns(c *gin.Context) {
	var req models.RunsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	runs, err := h.rec.RecentRuns(req.Limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "STORAGE_ERROR", err)
		return
	}
	if runs == nil {
		runs = []recorder.RunSummary{}
	}
	c.JSON(http.StatusOK, models.RunsResponse{Runs: runs})
}

// Helper methods

// buildAssumptions starts from base (or the baseline) and applies overrides
// in name order so errors are reported deterministically.
func buildAssumptions(base *model.Assumptions, overrides map[string]float64) (model.Assumptions, error) {
	a := config.Baseline()
	if base != nil {
		a = *base
	}
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		var err error
		if a, err = a.With(name, overrides[name]); err != nil {
			return a, fmt.Errorf("overrides: %w", err)
		}
	}
	return a, nil
}

func formatter(currency string) (report.Formatter, error) {
	if currency == "" {
		currency = config.DefaultCurrency
	}
	return report.NewFormatter(currency)
}

func buildSeries(res *forecast.Result) []models.SeriesRow {
	cmp := res.Comparison
	rows := make([]models.SeriesRow, len(cmp.Deltas))
	for i, d := range cmp.Deltas {
		p, f := cmp.Property.Points[i], cmp.Fund.Points[i]
		rows[i] = models.SeriesRow{
			Month:           d.Month,
			PropertyNominal: p.Nominal,
			PropertyReal:    p.Real,
			FundNominal:     f.Nominal,
			FundReal:        f.Real,
			NominalDelta:    d.Nominal,
			RealDelta:       d.Real,
			Leader:          d.Leader,
			CashFlow:        p.CashFlow,
			BondBalance:     res.Schedule.BalanceAt(d.Month),
		}
	}
	return rows
}
