package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Row is one CSV record keyed by header, with its 1-based line in the source
type Row struct {
	Line   int
	Record map[string]string
}

type RowResult struct {
	Row Row
	Err error
}

type CSVReader struct {
	reader    io.Reader
	separator rune
}

type CSVOption func(*CSVReader)

func WithSeparator(r rune) CSVOption {
	return func(cr *CSVReader) { cr.separator = r }
}

func NewCSVReader(reader io.Reader, opts ...CSVOption) *CSVReader {
	cr := &CSVReader{
		reader:    reader,
		separator: ',',
	}
	for _, opt := range opts {
		opt(cr)
	}
	return cr
}

func (cr *CSVReader) newReader() (*csv.Reader, []string, error) {
	r := csv.NewReader(cr.reader)
	r.Comma = cr.separator
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = 0

	headers, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("csv has no header row")
		}
		return nil, nil, err
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	return r, headers, nil
}

// ReadParallel streams the rows through workerCount goroutines. Row order is not preserved.
// Malformed rows are reported as errors and do not stop the stream.
func (cr *CSVReader) ReadParallel(ctx context.Context, workerCount int) (<-chan RowResult, error) {
	if workerCount < 1 {
		workerCount = 1
	}

	csvReader, headers, err := cr.newReader()
	if err != nil {
		return nil, err
	}

	type job struct {
		line   int
		fields []string
	}

	out := make(chan RowResult)
	jobs := make(chan job, workerCount*2)
	var wg sync.WaitGroup

	send := func(res RowResult) bool {
		select {
		case out <- res:
			return true
		case <-ctx.Done():
			return false
		}
	}

	wg.Add(workerCount + 1)
	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				record := make(map[string]string, len(headers))
				for i, h := range headers {
					record[h] = strings.TrimSpace(j.fields[i])
				}
				if !send(RowResult{Row: Row{Line: j.line, Record: record}}) {
					return
				}
			}
		}()
	}

	go func() {
		defer wg.Done()
		defer close(jobs)

		for {
			fields, err := csvReader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				var pe *csv.ParseError
				if !errors.As(err, &pe) {
					send(RowResult{Err: err})
					return
				}
				if !send(RowResult{Row: Row{Line: pe.Line}, Err: err}) {
					return
				}
				continue
			}
			line, _ := csvReader.FieldPos(0)

			select {
			case jobs <- job{line: line, fields: fields}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	return out, nil
}
