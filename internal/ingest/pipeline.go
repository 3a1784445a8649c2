package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/creditos/internal/domain"
	"github.com/DjordjeVuckovic/creditos/internal/storage"
)

const DefaultBatchSize = 1000

// Stats summarizes a pipeline run
type Stats struct {
	Imported int
	Rejected int
	Batches  int
	Duration time.Duration
}

// Pipeline moves collected creditos into a storer in batches.
// Rejected rows are logged and counted; a failed batch stops the run.
type Pipeline struct {
	name      string
	collector Collector[domain.Credito]
	storer    storage.Storer
	batchSize int
	maxErrors int
}

type PipelineOption func(*Pipeline)

func WithBatchSize(size int) PipelineOption {
	return func(p *Pipeline) {
		if size > 0 {
			p.batchSize = size
		}
	}
}

// WithMaxRejected aborts the run once more than n rows are rejected; zero means no limit
func WithMaxRejected(n int) PipelineOption {
	return func(p *Pipeline) { p.maxErrors = n }
}

func WithName(name string) PipelineOption {
	return func(p *Pipeline) { p.name = name }
}

func NewPipeline(c Collector[domain.Credito], storer storage.Storer, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		name:      "credito-import",
		collector: c,
		storer:    storer,
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	start := time.Now()
	slog.Info("Starting pipeline run", "pipeline", p.name, "batchSize", p.batchSize)

	// Stops the collector when the run ends early
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results, err := p.collector.Collect(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to start collection: %w", err)
	}

	runErr := p.process(ctx, results, &stats)
	stats.Duration = time.Since(start)

	slog.Info("Pipeline run completed",
		"pipeline", p.name,
		"imported", stats.Imported,
		"rejected", stats.Rejected,
		"batches", stats.Batches,
		"duration", stats.Duration,
		"error", runErr,
	)
	return stats, runErr
}

func (p *Pipeline) process(ctx context.Context, results <-chan Result[domain.Credito], stats *Stats) error {
	batch := make([]domain.Credito, 0, p.batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := p.storer.SaveBulk(ctx, batch)
		if err != nil {
			return fmt.Errorf("failed to save batch %d: %w", stats.Batches+1, err)
		}
		stats.Imported += n
		stats.Batches++
		slog.Debug("Batch saved", "pipeline", p.name, "batch", stats.Batches, "count", n)
		batch = batch[:0]
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				return flush()
			}
			if res.Err != nil {
				stats.Rejected++
				slog.Warn("Rejected row", "pipeline", p.name, "error", res.Err)
				if p.maxErrors > 0 && stats.Rejected > p.maxErrors {
					return fmt.Errorf("aborted after %d rejected rows", stats.Rejected)
				}
				continue
			}

			batch = append(batch, res.Result)
			if len(batch) >= p.batchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
	}
}
