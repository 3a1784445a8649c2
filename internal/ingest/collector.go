package ingest

import (
	"context"

	"github.com/DjordjeVuckovic/creditos/internal/domain"
)

type Result[T any] struct {
	Result T
	Err    error
}

type Collector[T any] interface {
	Collect(ctx context.Context) (<-chan Result[T], error)
}

const defaultWorkers = 4

// CreditoCollector reads rows in parallel and maps each one to a credito
type CreditoCollector struct {
	reader  *CSVReader
	mapper  *CreditoMapper
	workers int
}

func NewCreditoCollector(r *CSVReader, mapper *CreditoMapper, workers int) *CreditoCollector {
	if workers < 1 {
		workers = defaultWorkers
	}
	return &CreditoCollector{
		reader:  r,
		mapper:  mapper,
		workers: workers,
	}
}

func (cc *CreditoCollector) Collect(ctx context.Context) (<-chan Result[domain.Credito], error) {
	rows, err := cc.reader.ReadParallel(ctx, cc.workers)
	if err != nil {
		return nil, err
	}

	out := make(chan Result[domain.Credito])
	go func() {
		defer close(out)

		for res := range rows {
			var next Result[domain.Credito]
			if res.Err != nil {
				next.Err = &RowError{Line: res.Row.Line, Err: res.Err}
			} else {
				next.Result, next.Err = cc.mapper.Map(res.Row)
			}

			select {
			case out <- next:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
