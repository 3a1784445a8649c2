package pg

import (
	"context"
	"log/slog"
	"time"
)

const DefaultHealthTimeout = 2 * time.Second

// HealthChecker reports the database as healthy while a pooled connection answers a ping
// within the timeout.
type HealthChecker struct {
	pool    *ConnectionPool
	timeout time.Duration
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{pool: pool, timeout: DefaultHealthTimeout}
}

// WithTimeout overrides the ping bound; zero disables it.
func (hc *HealthChecker) WithTimeout(d time.Duration) *HealthChecker {
	hc.timeout = d
	return hc
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.pool == nil {
		return false
	}

	ctx, cancel := withOptionalTimeout(ctx, hc.timeout)
	defer cancel()

	if err := hc.pool.Ping(ctx); err != nil {
		acquired, total := hc.pool.Stats()
		slog.Warn("Postgres ping failed",
			"error", err,
			"timeout", hc.timeout,
			"acquiredConns", acquired,
			"totalConns", total)
		return false
	}
	return true
}
