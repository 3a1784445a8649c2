package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// streamClient is the subset of *redis.Client the publisher needs
type streamClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisPublisher appends events to a Redis stream. Each entry carries the event type,
// id and the JSON encoded event.
type RedisPublisher struct {
	rdb    streamClient
	stream string
	maxLen int64
}

type RedisOption func(*RedisPublisher)

func WithStream(stream string) RedisOption {
	return func(p *RedisPublisher) {
		if s := strings.TrimSpace(stream); s != "" {
			p.stream = s
		}
	}
}

// WithMaxLen caps the stream approximately at n entries; zero keeps every entry
func WithMaxLen(n int64) RedisOption {
	return func(p *RedisPublisher) { p.maxLen = n }
}

func NewRedisPublisher(rdb *redis.Client, opts ...RedisOption) *RedisPublisher {
	return newRedisPublisher(rdb, opts...)
}

func newRedisPublisher(rdb streamClient, opts ...RedisOption) *RedisPublisher {
	p := &RedisPublisher{
		rdb:    rdb,
		stream: DefaultStream,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode audit event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"eventId":   ev.ID.String(),
			"eventType": ev.Type,
			"payload":   string(payload),
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if err := p.rdb.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("failed to publish audit event to stream %s: %w", p.stream, err)
	}
	return nil
}

// Healthy reports whether the stream's Redis answers a ping
func (p *RedisPublisher) Healthy(ctx context.Context) bool {
	return p.rdb.Ping(ctx).Err() == nil
}

func (p *RedisPublisher) Close() error {
	return p.rdb.Close()
}
