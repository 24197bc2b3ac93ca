// Package logging builds the zap logger used by pt.
package logging

import (
	"fmt"

	"github.com/jacksmith/pt/internal/storage"
	"go.uber.org/zap"
)

// New builds a logger writing to stderr.
// Development mode selects zap's development defaults (console, caller info).
func New(cfg storage.LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
		zc.Sampling = nil
		zc.DisableStacktrace = true
	}

	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		zc.Level = level
	}

	switch cfg.Encoding {
	case "":
	case "console", "json":
		zc.Encoding = cfg.Encoding
	default:
		return nil, fmt.Errorf("invalid log encoding %q: must be console or json", cfg.Encoding)
	}

	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
