package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/creditos/internal/storage"
	"github.com/DjordjeVuckovic/creditos/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/creditos/internal/storage/pg"
	"github.com/DjordjeVuckovic/creditos/pkg/server"
)

// Backend is a constructed repository plus the resources it owns
type Backend struct {
	Repository    storage.Repository
	HealthChecker server.HealthChecker
	close         func()
}

// Close releases the backend's connections
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// NewBackend creates the repository selected by cfg.Type
func NewBackend(ctx context.Context, cfg *StorageConfig) (*Backend, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("invalid config for PostgreSQL storage: pool config is missing")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		repo, err := pg.NewRepository(pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to create PostgreSQL repository: %w", err)
		}

		return &Backend{
			Repository:    repo,
			HealthChecker: pg.NewHealthChecker(pool),
			close:         pool.Close,
		}, nil

	case storage.InMem:
		return &Backend{
			Repository:    in_mem.NewRepository(),
			HealthChecker: server.NewOkHealthChecker(),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", storage.ErrUnsupportedType, cfg.Type)
	}
}
