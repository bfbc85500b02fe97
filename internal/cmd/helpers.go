package cmd

import (
	"fmt"

	"flowdeck/internal/config"
	"flowdeck/internal/flowservice"
	"flowdeck/internal/logging"
)

// loadConfig loads and validates the effective configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newService builds the flow service client from config.
func newService(cfg *config.Config, logger *logging.Logger) flowservice.Service {
	opts := []flowservice.ClientOption{
		flowservice.WithTimeout(cfg.Server.Timeout),
		flowservice.WithLogger(logger.WithServer(cfg.Server.URL)),
	}
	if cfg.Server.Token != "" {
		opts = append(opts, flowservice.WithToken(cfg.Server.Token))
	}
	return flowservice.NewClient(cfg.Server.URL, opts...)
}

// newFileLogger builds the file-backed logger used while the TUI owns the
// terminal.
func newFileLogger(cfg *config.Config) (*logging.Logger, error) {
	return logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
}

// newStderrLogger builds a stderr logger for one-shot commands.
func newStderrLogger(cfg *config.Config) (*logging.Logger, error) {
	return logging.NewLogger("", cfg.Logging.Level)
}
