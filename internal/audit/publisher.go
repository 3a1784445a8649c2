package audit

import (
	"context"
	"log/slog"
)

// Publisher delivers audit events to a sink. Publish must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// LogPublisher writes events as structured log records
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, ev Event) error {
	level := slog.LevelInfo
	if !ev.Success {
		level = slog.LevelWarn
	}

	p.logger.LogAttrs(ctx, level, "AUDIT",
		slog.String("eventId", ev.ID.String()),
		slog.String("eventType", ev.Type),
		slog.String("method", ev.Method),
		slog.String("endpoint", ev.Endpoint),
		slog.Any("params", ev.Params),
		slog.Int("status", ev.Status),
		slog.Int64("durationMs", ev.DurationMs),
		slog.Int("resultCount", ev.ResultCount),
		slog.Bool("success", ev.Success),
		slog.String("error", ev.Error),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}

type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) Publish(context.Context, Event) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
