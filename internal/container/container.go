package container

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"faunadash/adapters/excel"
	"faunadash/internal/api"
	"faunadash/internal/config"
	"faunadash/internal/dashboard"
	"faunadash/internal/dataset"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Dataset loading
	Excel  excel.ExcelConfig
	Reader *excel.DataReader
	Store  *dataset.Store

	// Dashboard
	Dashboard *dashboard.Service
	API       *api.Handler
}

// New creates a new dependency injection container
func New(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	c.initDatasets()
	if err := c.initDashboard(); err != nil {
		return nil, err
	}

	logger.Info("[Container] initialized",
		"max_upload_mb", cfg.Upload.MaxFileSizeMB,
		"preview_rows", cfg.Dashboard.PreviewRows,
		"view_cache_max_cost", cfg.Cache.ViewMaxCost)
	return c, nil
}

func (c *Container) initDatasets() {
	c.Excel = excel.DefaultExcelConfig()
	c.Excel.MaxFileSize = c.Config.Upload.MaxFileSize()

	c.Reader = excel.NewDataReader(c.Logger)
	c.Store = dataset.NewStore(c.Reader.ReadBytes, c.Logger)
}

func (c *Container) initDashboard() error {
	service, err := dashboard.NewService(c.Store, dashboard.OptionsFromConfig(c.Config), c.Config.Cache.ViewMaxCost, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create dashboard service: %w", err)
	}
	c.Dashboard = service
	c.API = api.NewHandler(service, c.Excel, c.Logger)
	return nil
}

// APIHandler returns the JSON API router
func (c *Container) APIHandler() http.Handler {
	return c.API.Router()
}

// Shutdown gracefully shuts down all components
func (c *Container) Shutdown(ctx context.Context) error {
	if c.Dashboard != nil {
		c.Dashboard.Close()
	}
	c.Logger.Debug("[Container] shut down")
	return nil
}
