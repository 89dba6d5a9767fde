package main

import (
	"context"
	"log"

	"faunadash/internal/config"
	"faunadash/internal/container"
	"faunadash/internal/logging"
	"faunadash/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, flush := logging.Setup(appConfig.Logging.Level, appConfig.Logging.SeqURL)
	defer flush()

	gin.SetMode(appConfig.Server.GinMode)

	appContainer, err := container.New(appConfig, logger)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer appContainer.Shutdown(context.Background())

	server, err := ui.NewServer(appContainer.Dashboard, appContainer.Excel, appContainer.APIHandler(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	logger.Info("Starting fauna dashboard", "port", appConfig.Server.Port)
	if err := server.Start(":" + appConfig.Server.Port); err != nil {
		logger.Error("Server stopped", "error", err)
	}
}
