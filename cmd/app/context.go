package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"adcreative-analyzer/internal/clients/gemini"
	"adcreative-analyzer/internal/config"
	"adcreative-analyzer/internal/logging"
	"adcreative-analyzer/internal/metrics"
	"adcreative-analyzer/internal/services"
	"adcreative-analyzer/internal/storage/filesystem"
)

// oracle is a video oracle holding a connection that must be closed.
type oracle interface {
	services.VideoOracle
	Close() error
}

type oracleFactory func(ctx context.Context, cfg config.GeminiClientConfig, logger *zap.Logger) (oracle, error)

func newGeminiOracle(ctx context.Context, cfg config.GeminiClientConfig, logger *zap.Logger) (oracle, error) {
	return gemini.NewClient(ctx, cfg, logger)
}

type commandContext struct {
	configPath *string
	configName *string
	newOracle  oracleFactory

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *zap.Logger
	loggerErr  error
}

func newCommandContext(configPath, configName *string, newOracle oracleFactory) *commandContext {
	return &commandContext{
		configPath: configPath,
		configName: configName,
		newOracle:  newOracle,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path, name := defaultConfigPath, defaultConfigName
		if c.configPath != nil {
			path = strings.TrimSpace(*c.configPath)
		}
		if c.configName != nil && strings.TrimSpace(*c.configName) != "" {
			name = strings.TrimSpace(*c.configName)
		}
		cfg, err := config.Load(path, name)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*zap.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.New(cfg.Log)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger.With(zap.String("app", cfg.AppName))
		if cfg.SourceFile != "" {
			c.logger.Debug("configuration loaded", zap.String("file", cfg.SourceFile))
		}
	})
	return c.logger, c.loggerErr
}

// pipeline is the analysis stack shared by the serve, batch and analyze commands.
type pipeline struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Manager
	oracle  oracle
	extract *services.ExtractService
}

func (c *commandContext) pipeline(ctx context.Context) (*pipeline, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	o, err := c.newOracle(ctx, cfg.GeminiClient, logger)
	if err != nil {
		return nil, err
	}
	m := metrics.NewManager()
	extract, err := services.NewExtractService(cfg, o, logger, services.WithMetrics(m))
	if err != nil {
		o.Close()
		return nil, err
	}
	return &pipeline{cfg: cfg, logger: logger, metrics: m, oracle: o, extract: extract}, nil
}

func (p *pipeline) batch() (*services.BatchService, error) {
	source, err := filesystem.NewFileSystemStorage(p.cfg.Batch.InputDir, p.logger)
	if err != nil {
		return nil, fmt.Errorf("open input directory: %w", err)
	}
	return services.NewBatchService(p.cfg, p.extract, source, p.logger, services.WithBatchMetrics(p.metrics))
}

func (p *pipeline) Close() {
	if err := p.oracle.Close(); err != nil {
		p.logger.Warn("failed to close model client", zap.Error(err))
	}
	_ = p.logger.Sync()
}
