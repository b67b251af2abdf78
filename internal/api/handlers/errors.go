package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"property-forecast/internal/api/models"
	"property-forecast/internal/model"
)

func abortWithError(c *gin.Context, status int, code string, err error) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

// forecastError maps a run error onto the API error shape.
func forecastError(err error) (int, models.ErrorDetail) {
	if errors.Is(err, model.ErrInvalidAssumption) {
		return http.StatusBadRequest, models.ErrorDetail{
			Code:    "INVALID_ASSUMPTION",
			Message: err.Error(),
			Details: map[string]interface{}{"violations": violations(err)},
		}
	}
	return http.StatusInternalServerError, models.ErrorDetail{
		Code:    "FORECAST_ERROR",
		Message: err.Error(),
	}
}

// violations splits a joined validation error into its messages.
func violations(err error) []string {
	var out []string
	for _, line := range strings.Split(err.Error(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func abortWithForecastError(c *gin.Context, err error) {
	status, detail := forecastError(err)
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: detail})
}
