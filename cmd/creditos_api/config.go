package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/creditos/internal/audit"
	"github.com/DjordjeVuckovic/creditos/internal/storage/factory"
	"github.com/DjordjeVuckovic/creditos/internal/validation"
	"github.com/DjordjeVuckovic/creditos/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CreditosApiConfig struct {
	StorageConfig    *factory.StorageConfig
	AuditConfig      *audit.Config
	ValidationConfig validation.Config
	TestFeatures     bool
	LogLevel         slog.Level
}

func (as *AppConfig) Load() (*CreditosApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/creditos_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	auditCfg, err := audit.LoadEnv()
	if err != nil {
		slog.Error("Failed to load audit configuration from environment", "error", err)
		return nil, err
	}

	validationCfg := validation.DefaultConfig()
	if path := env.GetOr("VALIDATION_CONFIG_PATH", ""); path != "" {
		validationCfg, err = validation.LoadConfigFile(path)
		if err != nil {
			slog.Error("Failed to load validation configuration", "path", path, "error", err)
			return nil, err
		}
	}

	testFeatures, err := env.GetBool("TEST_FEATURES_ENABLED", false)
	if err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(env.GetOr("LOG_LEVEL", "INFO"))); err != nil {
		slog.Warn("Invalid LOG_LEVEL, using INFO", "error", err)
		level = slog.LevelInfo
	}

	return &CreditosApiConfig{
		StorageConfig:    storageCfg,
		AuditConfig:      auditCfg,
		ValidationConfig: validationCfg,
		TestFeatures:     testFeatures,
		LogLevel:         level,
	}, nil
}
