package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-forecast/internal/api/models"
	"property-forecast/internal/config"
	"property-forecast/internal/model"
)

// AssumptionsHandler serves the baseline and the parameter catalogue
type AssumptionsHandler struct{}

func NewAssumptionsHandler() *AssumptionsHandler {
	return &AssumptionsHandler{}
}

// Defaults handles GET /api/v1/assumptions/defaults
func (h *AssumptionsHandler) Defaults(c *gin.Context) {
	cfg := config.Default()
	resp := models.DefaultsResponse{
		Assumptions: cfg.Assumptions,
		Options:     cfg.Options,
		Currency:    cfg.Report.Currency,
		Sweeps:      make([]models.SweepInfo, 0, len(cfg.Sweeps)),
	}
	for _, sc := range cfg.Sweeps {
		s, err := sc.ToSweep()
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "INVALID_SWEEP", err)
			return
		}
		resp.Sweeps = append(resp.Sweeps, models.SweepInfo{
			Name:   s.Name,
			Title:  s.Title,
			Param:  s.Param,
			Values: s.Values,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Params handles GET /api/v1/assumptions/params
func (h *AssumptionsHandler) Params(c *gin.Context) {
	base := config.Baseline()
	params := model.Params()
	out := make([]models.ParameterInfo, 0, len(params))
	for _, p := range params {
		out = append(out, models.ParameterInfo{
			Name:        p.Name,
			Kind:        p.Kind,
			Description: p.Description,
			Default:     p.Get(base),
		})
	}
	c.JSON(http.StatusOK, gin.H{"params": out})
}
