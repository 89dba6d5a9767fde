package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"faunadash/internal/config"
	"faunadash/internal/container"
	"faunadash/internal/logging"

	"github.com/joho/godotenv"
)

// Serves only the JSON API, without the HTML dashboard.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, flush := logging.Setup(appConfig.Logging.Level, appConfig.Logging.SeqURL)
	defer flush()

	appContainer, err := container.New(appConfig, logger)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer appContainer.Shutdown(context.Background())

	srv := &http.Server{
		Addr:              ":" + appConfig.Server.APIPort,
		Handler:           appContainer.APIHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting API server", "port", appConfig.Server.APIPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("API server failed", "error", err)
	}
}
