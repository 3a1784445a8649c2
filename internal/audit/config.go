package audit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

type Sink string

const (
	SinkLog   Sink = "log"
	SinkRedis Sink = "redis"
	SinkNoop  Sink = "noop"
)

const DefaultStream = "creditos:audit"

type Config struct {
	Sink          Sink
	RedisAddr     string
	RedisPassword string
	Stream        string
	MaxLen        int64
}

// LoadEnv reads AUDIT_SINK (default log) and, for the redis sink, REDIS_ADDR,
// REDIS_PASSWORD, AUDIT_STREAM and AUDIT_STREAM_MAXLEN.
func LoadEnv() (*Config, error) {
	cfg := &Config{
		Sink:   Sink(strings.ToLower(strings.TrimSpace(os.Getenv("AUDIT_SINK")))),
		Stream: DefaultStream,
	}
	if cfg.Sink == "" {
		cfg.Sink = SinkLog
	}

	switch cfg.Sink {
	case SinkLog, SinkNoop:
		return cfg, nil
	case SinkRedis:
	default:
		return nil, fmt.Errorf("invalid AUDIT_SINK value: %s, expected one of %v", cfg.Sink, []Sink{SinkLog, SinkRedis, SinkNoop})
	}

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR environment variable is not set")
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if s := os.Getenv("AUDIT_STREAM"); s != "" {
		cfg.Stream = s
	}
	if v := os.Getenv("AUDIT_STREAM_MAXLEN"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid AUDIT_STREAM_MAXLEN value: %s", v)
		}
		cfg.MaxLen = n
	}

	return cfg, nil
}

// NewPublisher builds the publisher for cfg.Sink. The redis sink is pinged before use.
func NewPublisher(ctx context.Context, cfg *Config) (Publisher, error) {
	switch cfg.Sink {
	case SinkLog, "":
		return NewLogPublisher(slog.Default()), nil
	case SinkNoop:
		return NewNoopPublisher(), nil
	case SinkRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.RedisAddr, err)
		}
		slog.Info("Publishing audit events to redis stream", "addr", cfg.RedisAddr, "stream", cfg.Stream)
		return NewRedisPublisher(rdb, WithStream(cfg.Stream), WithMaxLen(cfg.MaxLen)), nil
	default:
		return nil, fmt.Errorf("unsupported audit sink: %s", cfg.Sink)
	}
}
