package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jacksmith/pt/internal/model"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".ptconfig.yaml"
	// envFile is loaded into the environment when present.
	envFile = ".env"

	// Default configuration values
	DefaultDataFile    = "patisserie.txt"
	DefaultLogLevel    = "error"
	DefaultLogEncoding = "console"
)

// Environment variables that override the config file.
const (
	EnvDataFile    = "PT_DATA_FILE"
	EnvLogLevel    = "PT_LOG_LEVEL"
	EnvLogEncoding = "PT_LOG_ENCODING"
	EnvMaxProducts = "PT_MAX_PRODUCTS"
	EnvMaxClients  = "PT_MAX_CLIENTS"
	EnvMaxOrders   = "PT_MAX_ORDERS"
)

// LogConfig controls the logger built by internal/logging.
type LogConfig struct {
	Level       string `yaml:"level"`
	Encoding    string `yaml:"encoding"`
	Development bool   `yaml:"development"`
}

// Config represents user configuration from .ptconfig.yaml.
// This file is user-managed and never written by pt.
type Config struct {
	// DataFile is the snapshot file, relative to the working directory unless absolute.
	DataFile string `yaml:"data_file"`

	MaxProducts int `yaml:"max_products"`
	MaxClients  int `yaml:"max_clients"`
	MaxOrders   int `yaml:"max_orders"`

	// LowStockThreshold marks products at or below this stock as low.
	LowStockThreshold int `yaml:"low_stock_threshold"`

	// AllowEmptyClientName accepts clients without a name.
	AllowEmptyClientName bool `yaml:"allow_empty_client_name"`

	Log LogConfig `yaml:"log"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile:          DefaultDataFile,
		MaxProducts:       model.DefaultMaxProducts,
		MaxClients:        model.DefaultMaxClients,
		MaxOrders:         model.DefaultMaxOrders,
		LowStockThreshold: model.DefaultLowStockThreshold,
		Log: LogConfig{
			Level:    DefaultLogLevel,
			Encoding: DefaultLogEncoding,
		},
	}
}

// Limits returns the collection capacities.
func (c *Config) Limits() model.Limits {
	return model.Limits{
		MaxProducts: c.MaxProducts,
		MaxClients:  c.MaxClients,
		MaxOrders:   c.MaxOrders,
	}
}

// LoadConfig loads .ptconfig.yaml from dir if it exists, otherwise defaults.
// Partial config files are merged with defaults. A .env file in dir is
// loaded into the environment first, then PT_* variables override the file.
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, userConfigFile))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// No config file - keep defaults
	default:
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	if err := godotenv.Load(filepath.Join(dir, envFile)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	applyEnv(cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.DataFile = getEnv(EnvDataFile, cfg.DataFile)
	cfg.Log.Level = getEnv(EnvLogLevel, cfg.Log.Level)
	cfg.Log.Encoding = getEnv(EnvLogEncoding, cfg.Log.Encoding)
	cfg.MaxProducts = getEnvInt(EnvMaxProducts, cfg.MaxProducts)
	cfg.MaxClients = getEnvInt(EnvMaxClients, cfg.MaxClients)
	cfg.MaxOrders = getEnvInt(EnvMaxOrders, cfg.MaxOrders)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
