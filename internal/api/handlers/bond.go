package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-forecast/internal/api/models"
	"property-forecast/internal/bond"
	"property-forecast/internal/model"
)

// BondHandler serves amortization schedules
type BondHandler struct{}

func NewBondHandler() *BondHandler {
	return &BondHandler{}
}

// Schedule handles POST /api/v1/bond/schedule
func (h *BondHandler) Schedule(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	if req.AnnualRate < model.MinRate || req.AnnualRate > model.MaxRate {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_ASSUMPTION",
				Message: "annual_rate must be a fraction (0.09 = 9%)",
				Details: map[string]interface{}{"min": model.MinRate, "max": model.MaxRate},
			},
		})
		return
	}

	horizon := req.HorizonMonths
	if horizon <= 0 {
		horizon = req.TermYears * 12
	}
	s := bond.NewSchedule(req.Principal, req.AnnualRate, req.TermYears, horizon)
	c.JSON(http.StatusOK, models.ScheduleResponse{
		Schedule:      s,
		TotalInterest: s.TotalInterest(),
	})
}
