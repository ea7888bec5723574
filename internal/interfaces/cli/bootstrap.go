// Package cli holds the setup shared by the togetherly subcommands.
package cli

import (
	"fmt"
	"os"

	"togetherly/internal/infrastructure/config"
	"togetherly/internal/shared/logger"
)

// Bootstrap loads configuration for env and installs the process logger.
// The ENV environment variable overrides the --env flag.
func Bootstrap(env string) (*config.Config, logger.Interface, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	err = logger.Init(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
		Verbose:    cfg.Logger.Verbose,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger().With("env", env), nil
}

// GinMode maps a deployment environment name to a gin mode.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
