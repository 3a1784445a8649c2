package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/creditos/internal/domain"
	"github.com/DjordjeVuckovic/creditos/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "numeroCredito,numeroNfse,dataConstituicao,valorIssqn,tipoCredito,simplesNacional,aliquota,valorFaturado,valorDeducao,baseCalculo\n"

func csvRows(n int) string {
	var b strings.Builder
	b.WriteString(header)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "C%05d,NF%03d,2024-02-25,,ISSQN,true,5,1000,100,\n", i, i%3)
	}
	return b.String()
}

func newTestCollector(t *testing.T, data string) *CreditoCollector {
	t.Helper()
	return NewCreditoCollector(NewCSVReader(strings.NewReader(data)), newTestMapper(t, DefaultMapping()), 3)
}

type failingStorer struct{}

func (failingStorer) SaveBulk(context.Context, []domain.Credito) (int, error) {
	return 0, errors.New("copy failed")
}

func (failingStorer) DeleteTestRecords(context.Context) (int64, error) { return 0, nil }

func TestPipeline_Run(t *testing.T) {
	repo := in_mem.NewRepository()
	p := NewPipeline(newTestCollector(t, csvRows(25)), repo, WithBatchSize(10))

	stats, err := p.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 25, stats.Imported)
	assert.Equal(t, 0, stats.Rejected)
	assert.Equal(t, 3, stats.Batches)

	c, err := repo.FindByNumeroCredito(context.Background(), "C00007")
	require.NoError(t, err)
	assert.Equal(t, 900.0, c.BaseCalculo)
	assert.Equal(t, 45.0, c.ValorIssqn)
}

func TestPipeline_CountsRejectedRows(t *testing.T) {
	data := csvRows(4) + ",NF001,2024-02-25,,ISSQN,true,5,1000,0,\nC9,NF001,2024-02-25,,ISSQN,true,5,1000,2000,\n"
	repo := in_mem.NewRepository()

	stats, err := NewPipeline(newTestCollector(t, data), repo).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, stats.Imported)
	assert.Equal(t, 2, stats.Rejected)
	assert.Equal(t, 1, stats.Batches)
}

func TestPipeline_MaxRejected(t *testing.T) {
	data := header + strings.Repeat(",NF001,2024-02-25,,ISSQN,true,5,1000,0,\n", 5)

	stats, err := NewPipeline(newTestCollector(t, data), in_mem.NewRepository(), WithMaxRejected(2)).Run(context.Background())

	assert.ErrorContains(t, err, "aborted after 3 rejected rows")
	assert.Equal(t, 0, stats.Imported)
}

func TestPipeline_SaveFailure(t *testing.T) {
	_, err := NewPipeline(newTestCollector(t, csvRows(3)), failingStorer{}).Run(context.Background())

	assert.ErrorContains(t, err, "copy failed")
}

func TestPipeline_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPipeline(newTestCollector(t, csvRows(50)), in_mem.NewRepository()).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
