package credito

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/creditos/internal/apperr"
	"github.com/DjordjeVuckovic/creditos/internal/domain"
	"github.com/DjordjeVuckovic/creditos/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/creditos/internal/validation"
	"github.com/DjordjeVuckovic/creditos/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *in_mem.Repository) {
	t.Helper()

	chain, err := validation.NewDefaultChain(validation.DefaultConfig())
	require.NoError(t, err)

	repo := in_mem.NewRepository()
	_, err = repo.SaveBulk(context.Background(), []domain.Credito{
		{NumeroCredito: "123456", NumeroNfse: "7891011", DataConstituicao: domain.NewDate(2024, time.February, 25), ValorIssqn: 1500.75, TipoCredito: "ISSQN"},
		{NumeroCredito: "789012", NumeroNfse: "7891011", DataConstituicao: domain.NewDate(2024, time.February, 26), ValorIssqn: 1200.50, TipoCredito: "ISSQN"},
		{NumeroCredito: "654321", NumeroNfse: "1122334", DataConstituicao: domain.NewDate(2024, time.January, 15), ValorIssqn: 800.50, TipoCredito: "Outros"},
	})
	require.NoError(t, err)

	gen := NewGenerator(WithSeed(42), WithClock(func() time.Time {
		return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	}))
	return NewService(repo, chain, gen), repo
}

func TestService_GetByNumeroCredito(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	c, err := s.GetByNumeroCredito(ctx, " 123456 ")
	require.NoError(t, err)
	assert.Equal(t, "7891011", c.NumeroNfse)

	_, err = s.GetByNumeroCredito(ctx, "000000")
	var nfe *apperr.NotFoundError
	assert.True(t, errors.As(err, &nfe))

	_, err = s.GetByNumeroCredito(ctx, "   ")
	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "numeroCredito", ve.Field)
}

func TestService_ListByNumeroNfse(t *testing.T) {
	s, _ := newTestService(t)

	list, err := s.ListByNumeroNfse(context.Background(), "7891011")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = s.ListByNumeroNfse(context.Background(), "0000")
	var nfe *apperr.NotFoundError
	assert.True(t, errors.As(err, &nfe))
}

func TestService_PageByNumeroNfse(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	t.Run("lenient corrects input", func(t *testing.T) {
		page, err := s.PageByNumeroNfse(ctx, "7891011", PageQuery{Page: "-1", Size: "0", SortBy: "invalidField", SortDirection: "sideways"})

		require.NoError(t, err)
		assert.Equal(t, 0, page.Page)
		assert.Equal(t, pagination.DefaultPageSize, page.Size)
		assert.Len(t, page.Content, 2)
		assert.NotEmpty(t, page.Warnings)
	})

	t.Run("lenient sorts", func(t *testing.T) {
		page, err := s.PageByNumeroNfse(ctx, "7891011", PageQuery{Size: "1", SortBy: "valorIssqn", SortDirection: "asc"})

		require.NoError(t, err)
		require.Len(t, page.Content, 1)
		assert.Equal(t, "789012", page.Content[0].NumeroCredito)
		assert.Equal(t, int64(2), page.TotalElements)
		assert.True(t, page.HasNext)
	})

	t.Run("strict rejects", func(t *testing.T) {
		_, err := s.PageByNumeroNfse(ctx, "7891011", PageQuery{Size: "101", Strict: true})

		var ve *apperr.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "size", ve.Field)
	})

	t.Run("unknown nfse", func(t *testing.T) {
		_, err := s.PageByNumeroNfse(ctx, "nope", PageQuery{})

		var nfe *apperr.NotFoundError
		assert.True(t, errors.As(err, &nfe))
	})
}

func TestService_TestData(t *testing.T) {
	s, repo := newTestService(t)
	ctx := context.Background()

	n, err := s.GenerateTestData(ctx, GenerateOptions{NfseCount: 2, CreditsPerNfse: 3})
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	list, err := repo.FindByNumeroNfse(ctx, "TESTE_NFSE002")
	require.NoError(t, err)
	assert.Len(t, list, 3)

	n, err = s.GenerateTestData(ctx, GenerateOptions{NfseCount: 1, CreditsPerNfse: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	deleted, err := s.DeleteTestData(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = s.GetByNumeroCredito(ctx, "123456")
	assert.NoError(t, err)
}

func TestService_GenerateTestData_Bounds(t *testing.T) {
	s, _ := newTestService(t)

	for _, opts := range []GenerateOptions{{NfseCount: 0, CreditsPerNfse: 1}, {NfseCount: 1, CreditsPerNfse: 101}} {
		_, err := s.GenerateTestData(context.Background(), opts)

		var ve *apperr.ValidationError
		assert.True(t, errors.As(err, &ve), "%+v", opts)
	}
}
