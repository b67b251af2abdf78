package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"property-forecast/internal/api"
	"property-forecast/internal/recorder"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if path := os.Getenv("SQLITE_PATH"); path != "" {
		sqlite, err := recorder.NewSQLiteRecorder(path, log)
		if err != nil {
			log.WithError(err).Fatal("failed to open run recorder")
		}
		rec = sqlite
	}
	defer rec.Close()

	var origins []string
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	router := api.NewRouter(api.Options{
		Log:            log,
		Recorder:       rec,
		AllowedOrigins: origins,
	})

	addr := fmt.Sprintf(":%s", port)
	log.WithField("addr", addr).Info("starting API server")
	if err := router.Run(addr); err != nil {
		log.WithError(err).Error("server stopped")
		rec.Close()
		os.Exit(1)
	}
}
