package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"wordfreq/internal/config"
	"wordfreq/internal/logging"
	"wordfreq/internal/services"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	runID     string
	logger    *slog.Logger
	logCloser io.Closer
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "load", "", err)
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = services.Wrap(services.ErrConfiguration, "config", "apply --log-level", "", err)
				return
			}
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger(cmd *cobra.Command, cfg *config.Config) error {
	if c.logger != nil {
		return nil
	}
	opts := logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if cfg.Logging.Output == config.LogOutputStderr {
		opts.Writer = cmd.ErrOrStderr()
	}
	logger, closer, err := logging.New(opts)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "logging", "init", "", err)
	}
	c.runID = uuid.NewString()
	c.logger = logger
	c.logCloser = closer
	return nil
}

// closeLog releases the log file opened for [logging] output, if any.
func (c *commandContext) closeLog() error {
	if c.logCloser == nil {
		return nil
	}
	closer := c.logCloser
	c.logCloser = nil
	if err := closer.Close(); err != nil {
		return services.Wrap(services.ErrIO, "logging", "close", "", err)
	}
	return nil
}

// componentLogger returns the run logger tagged with run_id and component.
func (c *commandContext) componentLogger(ctx context.Context, component string) *slog.Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = services.WithRunID(ctx, c.runID)
	ctx = services.WithComponent(ctx, component)
	return logging.WithContext(ctx, c.logger)
}

// commandConfig returns a copy of the loaded config so flag overrides stay
// local to one command.
func (c *commandContext) commandConfig() (config.Config, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
