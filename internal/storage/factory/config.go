package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/creditos/internal/storage"
	"github.com/DjordjeVuckovic/creditos/internal/storage/pg"
)

type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
}

// LoadEnv reads STORAGE_TYPE and the backend specific variables.
// PG_MAX_CONNS and PG_CONNECT_TIMEOUT are optional.
func LoadEnv() (*StorageConfig, error) {
	raw := os.Getenv("STORAGE_TYPE")
	if raw == "" {
		slog.Error("STORAGE_TYPE environment variable is not set")
		return nil, fmt.Errorf("STORAGE_TYPE environment variable is not set")
	}
	storageType, err := storage.ParseType(raw)
	if err != nil {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", raw)
		return nil, fmt.Errorf("invalid STORAGE_TYPE environment variable value: %w", err)
	}

	var pgCfg *pg.PoolConfig
	if storageType == storage.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}

		if v := os.Getenv("PG_MAX_CONNS"); v != "" {
			n, err := strconv.ParseInt(v, 10, 32)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS value: %s", v)
			}
			pgCfg.MaxConns = int32(n)
		}
		if v := os.Getenv("PG_CONNECT_TIMEOUT"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return nil, fmt.Errorf("invalid PG_CONNECT_TIMEOUT value: %w", err)
			}
			pgCfg.ConnectTimeout = d
		}
	}

	return &StorageConfig{
		Type: storageType,
		Pg:   pgCfg,
	}, nil
}
