package pg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithOptionalTimeout(t *testing.T) {
	ctx, cancel := withOptionalTimeout(context.Background(), 0)
	defer cancel()
	_, ok := ctx.Deadline()
	assert.False(t, ok)

	ctx, cancel = withOptionalTimeout(context.Background(), time.Minute)
	defer cancel()
	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestNewConnectionPool_BadConnString(t *testing.T) {
	_, err := NewConnectionPool(context.Background(), PoolConfig{ConnStr: "postgres://%zz"})
	assert.ErrorContains(t, err, "failed to parse connection string")
}

func TestHealthChecker_NilPool(t *testing.T) {
	hc := NewHealthChecker(nil)
	assert.Equal(t, DefaultHealthTimeout, hc.timeout)
	assert.False(t, hc.WithTimeout(time.Second).Healthy(context.Background()))
}
