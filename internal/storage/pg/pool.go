package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PoolConfig struct {
	ConnStr  string
	MaxConns int32
	// ConnectTimeout bounds the initial ping; zero means no extra bound
	ConnectTimeout time.Duration
}

// ConnectionPool owns the pgx pool shared by the reader and the storer.
type ConnectionPool struct {
	db *pgxpool.Pool
}

func NewConnectionPool(ctx context.Context, cfg PoolConfig) (*ConnectionPool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	db, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	p := &ConnectionPool{db: db}
	pingCtx, cancel := withOptionalTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := p.Ping(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return p, nil
}

func (p *ConnectionPool) Close() {
	p.db.Close()
}

// Ping acquires a pooled connection so a saturated pool is reported as well as a dead server.
func (p *ConnectionPool) Ping(ctx context.Context) error {
	c, err := p.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer c.Release()
	return c.Ping(ctx)
}

// Stats returns acquired and total connection counts.
func (p *ConnectionPool) Stats() (acquired, total int32) {
	s := p.db.Stat()
	return s.AcquiredConns(), s.TotalConns()
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
