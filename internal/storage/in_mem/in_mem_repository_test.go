package in_mem

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/creditos/internal/domain"
	"github.com/DjordjeVuckovic/creditos/internal/storage"
	"github.com/DjordjeVuckovic/creditos/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, r *Repository) {
	t.Helper()

	var creditos []domain.Credito
	for i := 1; i <= 5; i++ {
		creditos = append(creditos, domain.Credito{
			NumeroCredito:    fmt.Sprintf("C%02d", i),
			NumeroNfse:       "7891011",
			DataConstituicao: domain.NewDate(2024, time.January, 6-i),
			ValorIssqn:       float64(i * 100),
			TipoCredito:      "ISSQN",
		})
	}
	creditos = append(creditos,
		domain.Credito{NumeroCredito: "TESTE000001", NumeroNfse: "TESTE_NFSE001"},
		domain.Credito{NumeroCredito: "OTHER", NumeroNfse: "1122334"},
	)

	n, err := r.SaveBulk(context.Background(), creditos)
	require.NoError(t, err)
	require.Equal(t, len(creditos), n)
}

func TestRepository_FindByNumeroCredito(t *testing.T) {
	r := NewRepository()
	seed(t, r)

	c, err := r.FindByNumeroCredito(context.Background(), "C03")
	require.NoError(t, err)
	assert.Equal(t, "7891011", c.NumeroNfse)
	assert.NotZero(t, c.ID)

	_, err = r.FindByNumeroCredito(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRepository_FindByNumeroNfse(t *testing.T) {
	r := NewRepository()
	seed(t, r)

	got, err := r.FindByNumeroNfse(context.Background(), "7891011")
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].ID, got[i].ID)
	}

	got, err = r.FindByNumeroNfse(context.Background(), "none")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_FindPageByNumeroNfse(t *testing.T) {
	r := NewRepository()
	seed(t, r)
	ctx := context.Background()

	t.Run("first page sorted descending", func(t *testing.T) {
		page, err := r.FindPageByNumeroNfse(ctx, "7891011", pagination.Pageable{Page: 0, Size: 2, SortField: "valorIssqn", SortDirection: pagination.DESC})

		require.NoError(t, err)
		require.Len(t, page.Content, 2)
		assert.Equal(t, "C05", page.Content[0].NumeroCredito)
		assert.Equal(t, "C04", page.Content[1].NumeroCredito)
		assert.Equal(t, int64(5), page.TotalElements)
		assert.Equal(t, 3, page.TotalPages)
		assert.True(t, page.HasNext)
	})

	t.Run("last partial page", func(t *testing.T) {
		page, err := r.FindPageByNumeroNfse(ctx, "7891011", pagination.Pageable{Page: 2, Size: 2, SortField: "dataConstituicao", SortDirection: pagination.ASC})

		require.NoError(t, err)
		require.Len(t, page.Content, 1)
		assert.Equal(t, "C01", page.Content[0].NumeroCredito)
		assert.True(t, page.Last)
	})

	t.Run("page past the end", func(t *testing.T) {
		page, err := r.FindPageByNumeroNfse(ctx, "7891011", pagination.Pageable{Page: 9, Size: 10, SortField: "id", SortDirection: pagination.ASC})

		require.NoError(t, err)
		assert.Empty(t, page.Content)
		assert.Equal(t, int64(5), page.TotalElements)
	})

	t.Run("page whose offset exceeds the int range", func(t *testing.T) {
		page, err := r.FindPageByNumeroNfse(ctx, "7891011", pagination.Pageable{Page: 922337203685477590, Size: 10, SortField: "id", SortDirection: pagination.ASC})

		require.NoError(t, err)
		assert.Empty(t, page.Content)
		assert.False(t, page.HasNext)
	})

	t.Run("unknown sort field", func(t *testing.T) {
		_, err := r.FindPageByNumeroNfse(ctx, "7891011", pagination.Pageable{Page: 0, Size: 10, SortField: "senha", SortDirection: pagination.ASC})

		assert.Error(t, err)
	})
}

func TestRepository_DeleteTestRecords(t *testing.T) {
	r := NewRepository()
	seed(t, r)

	deleted, err := r.DeleteTestRecords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = r.FindByNumeroCredito(context.Background(), "TESTE000001")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = r.FindByNumeroCredito(context.Background(), "OTHER")
	assert.NoError(t, err)
}

func TestRepository_SortableFields(t *testing.T) {
	for _, f := range []string{"id", "numeroCredito", "numeroNfse", "dataConstituicao", "valorIssqn", "tipoCredito",
		"simplesNacional", "aliquota", "valorFaturado", "valorDeducao", "baseCalculo"} {
		_, err := comparator(f)
		assert.NoError(t, err, f)
	}
}
