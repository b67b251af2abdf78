// Package api wires the HTTP handlers into a gin router.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"property-forecast/internal/api/handlers"
	"property-forecast/internal/api/middleware"
	"property-forecast/internal/recorder"
)

type Options struct {
	Log            logrus.FieldLogger
	Recorder       recorder.Recorder
	AllowedOrigins []string
}

func NewRouter(opts Options) *gin.Engine {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.Logger(log))

	forecastHandler := handlers.NewForecastHandler(log, opts.Recorder)
	assumptionsHandler := handlers.NewAssumptionsHandler()
	bondHandler := handlers.NewBondHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/assumptions/defaults", assumptionsHandler.Defaults)
		api.GET("/assumptions/params", assumptionsHandler.Params)

		api.POST("/forecast", forecastHandler.RunForecast)
		api.POST("/forecast/sweep", forecastHandler.RunSweep)
		api.GET("/runs", forecastHandler.ListRuns)

		api.POST("/bond/schedule", bondHandler.Schedule)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})
	return router
}
