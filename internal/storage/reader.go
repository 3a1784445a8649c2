package storage

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/creditos/internal/domain"
	"github.com/DjordjeVuckovic/creditos/pkg/pagination"
)

var ErrNotFound = errors.New("credito not found")

type Reader interface {
	// FindByNumeroCredito returns ErrNotFound when no credito has the number
	FindByNumeroCredito(ctx context.Context, numeroCredito string) (*domain.Credito, error)
	// FindByNumeroNfse returns every credito of the NFS-e ordered by id; empty when none match
	FindByNumeroNfse(ctx context.Context, numeroNfse string) ([]domain.Credito, error)
	// FindPageByNumeroNfse returns one page of the creditos of the NFS-e.
	// p must already be normalized: its sort field is one of the sortable credito fields.
	FindPageByNumeroNfse(ctx context.Context, numeroNfse string, p pagination.Pageable) (*pagination.PageResult[domain.Credito], error)
}

type Repository interface {
	Reader
	Storer
}
