package cmd

import (
	"fmt"

	"demo-server/core/config"
	"demo-server/core/logger"
	"demo-server/core/server"

	"go.uber.org/zap"
)

// commandEnv bundles what every command needs before doing real work.
type commandEnv struct {
	cfg     *config.Config
	logger  *zap.Logger
	baseDir string
}

// loadEnv loads configuration from the working directory, builds the
// logger and resolves the directory to serve.
func loadEnv() (*commandEnv, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Server.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	baseDir, err := server.ResolveBaseDir(cfg.Server.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory: %w", err)
	}

	return &commandEnv{cfg: cfg, logger: logg, baseDir: baseDir}, nil
}
