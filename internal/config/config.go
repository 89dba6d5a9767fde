package config

import (
	"os"
	"strconv"

	"faunadash/internal/errors"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Upload    UploadConfig    `yaml:"upload"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Columns   ColumnsConfig   `yaml:"columns"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string `yaml:"port"`
	APIPort string `yaml:"api_port"`
	GinMode string `yaml:"gin_mode"`
}

// UploadConfig holds upload limits
type UploadConfig struct {
	MaxFileSizeMB int `yaml:"max_file_size_mb"`
}

// DashboardConfig holds the defaults of the dashboard page
type DashboardConfig struct {
	PreviewRows           int    `yaml:"preview_rows"`
	PreferredMunicipality string `yaml:"preferred_municipality"`
	MaltreatmentPattern   string `yaml:"maltreatment_pattern"`
	TraffickingPattern    string `yaml:"trafficking_pattern"`
}

// ColumnsConfig names the spreadsheet columns the dashboard recognises
type ColumnsConfig struct {
	Year         string `yaml:"year"`
	Municipality string `yaml:"municipality"`
	DeliveryType string `yaml:"delivery_type"`
	Class        string `yaml:"class"`
}

// CacheConfig sizes the rendered-view cache
type CacheConfig struct {
	ViewMaxCost int64 `yaml:"view_max_cost"`
}

// LoggingConfig holds log level and the optional Seq sink
type LoggingConfig struct {
	Level  string `yaml:"level"`
	SeqURL string `yaml:"seq_url"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    "8080",
			APIPort: "8081",
			GinMode: "release",
		},
		Upload: UploadConfig{MaxFileSizeMB: 50},
		Dashboard: DashboardConfig{
			PreviewRows:           50,
			PreferredMunicipality: "MEDELLIN",
			MaltreatmentPattern:   "MALTRATO",
			TraffickingPattern:    "TRAF",
		},
		Columns: ColumnsConfig{
			Year:         "AÑOREMISION",
			Municipality: "MUNICIPIO PROCEDENCIA",
			DeliveryType: "TIPO ENTREGA",
			Class:        "CLASE",
		},
		Cache:   CacheConfig{ViewMaxCost: 256},
		Logging: LoggingConfig{Level: "INFO"},
	}
}

// Load reads defaults, then the YAML file named by CONFIG_FILE, then
// environment variables, and validates the result
func Load() (*Config, error) {
	config := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(config, path); err != nil {
			return nil, errors.Wrapf(err, "failed to load configuration file %s", path)
		}
	}

	loadServerConfig(&config.Server)
	loadUploadConfig(&config.Upload)
	loadDashboardConfig(&config.Dashboard)
	loadColumnsConfig(&config.Columns)
	loadCacheConfig(&config.Cache)
	loadLoggingConfig(&config.Logging)

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

func loadServerConfig(c *ServerConfig) {
	c.Port = getEnvOrDefault("PORT", c.Port)
	c.APIPort = getEnvOrDefault("API_PORT", c.APIPort)
	c.GinMode = getEnvOrDefault("GIN_MODE", c.GinMode)
}

func loadUploadConfig(c *UploadConfig) {
	c.MaxFileSizeMB = getEnvIntOrDefault("MAX_UPLOAD_MB", c.MaxFileSizeMB)
}

func loadDashboardConfig(c *DashboardConfig) {
	c.PreviewRows = getEnvIntOrDefault("PREVIEW_ROWS", c.PreviewRows)
	c.PreferredMunicipality = getEnvOrDefault("PREFERRED_MUNICIPALITY", c.PreferredMunicipality)
	c.MaltreatmentPattern = getEnvOrDefault("MALTREATMENT_PATTERN", c.MaltreatmentPattern)
	c.TraffickingPattern = getEnvOrDefault("TRAFFICKING_PATTERN", c.TraffickingPattern)
}

func loadColumnsConfig(c *ColumnsConfig) {
	c.Year = getEnvOrDefault("COLUMN_YEAR", c.Year)
	c.Municipality = getEnvOrDefault("COLUMN_MUNICIPALITY", c.Municipality)
	c.DeliveryType = getEnvOrDefault("COLUMN_DELIVERY_TYPE", c.DeliveryType)
	c.Class = getEnvOrDefault("COLUMN_CLASS", c.Class)
}

func loadCacheConfig(c *CacheConfig) {
	c.ViewMaxCost = int64(getEnvIntOrDefault("VIEW_CACHE_MAX_COST", int(c.ViewMaxCost)))
}

func loadLoggingConfig(c *LoggingConfig) {
	c.Level = getEnvOrDefault("LOG_LEVEL", c.Level)
	c.SeqURL = getEnvOrDefault("SEQ_URL", c.SeqURL)
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Upload.MaxFileSizeMB <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	if config.Dashboard.PreviewRows <= 0 {
		return errors.ConfigInvalid("PREVIEW_ROWS must be positive")
	}
	if config.Dashboard.MaltreatmentPattern == "" || config.Dashboard.TraffickingPattern == "" {
		return errors.ConfigInvalid("case type patterns are required")
	}
	cols := config.Columns
	if cols.Year == "" || cols.Municipality == "" || cols.DeliveryType == "" || cols.Class == "" {
		return errors.ConfigInvalid("all recognised column names are required")
	}
	if config.Cache.ViewMaxCost <= 0 {
		return errors.ConfigInvalid("VIEW_CACHE_MAX_COST must be positive")
	}
	return nil
}

// MaxFileSize returns the upload limit in bytes
func (c UploadConfig) MaxFileSize() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
