package app

import (
	"context"

	"github.com/oshokin/restlog/internal/config"
	"github.com/oshokin/restlog/internal/logger"
)

// ExecuteConfigInitCommand writes the default configuration file to path.
func ExecuteConfigInitCommand(ctx context.Context, path string) {
	if path == "" {
		path = config.DefaultConfigFilename
	}

	if err := config.WriteDefaultConfig(path); err != nil {
		logger.Fatalf(ctx, "Failed to write configuration: %v", err)
	}

	logger.Infof(ctx, "Default configuration written to %s", path)
}
