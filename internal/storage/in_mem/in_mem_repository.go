package in_mem

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/creditos/internal/domain"
	"github.com/DjordjeVuckovic/creditos/internal/storage"
	"github.com/DjordjeVuckovic/creditos/pkg/pagination"
)

type Repository struct {
	storageLock sync.RWMutex
	storage     map[int64]domain.Credito
	nextID      int64
}

func NewRepository() *Repository {
	return &Repository{
		storage: make(map[int64]domain.Credito),
	}
}

func (r *Repository) FindByNumeroCredito(_ context.Context, numeroCredito string) (*domain.Credito, error) {
	r.storageLock.RLock()
	defer r.storageLock.RUnlock()

	for _, c := range r.storage {
		if c.NumeroCredito == numeroCredito {
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *Repository) FindByNumeroNfse(_ context.Context, numeroNfse string) ([]domain.Credito, error) {
	matches := r.byNfse(numeroNfse)
	slices.SortFunc(matches, func(a, b domain.Credito) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return matches, nil
}

func (r *Repository) FindPageByNumeroNfse(_ context.Context, numeroNfse string, p pagination.Pageable) (*pagination.PageResult[domain.Credito], error) {
	compare, err := comparator(p.SortField)
	if err != nil {
		return nil, err
	}

	matches := r.byNfse(numeroNfse)
	slices.SortStableFunc(matches, func(a, b domain.Credito) int {
		c := compare(a, b)
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if p.SortDirection == pagination.DESC {
			return -c
		}
		return c
	})

	total := int64(len(matches))
	start := min(p.Offset(), len(matches))
	end := start + min(max(p.Size, 0), len(matches)-start)

	return pagination.NewPageResult(matches[start:end], total, p), nil
}

func (r *Repository) byNfse(numeroNfse string) []domain.Credito {
	r.storageLock.RLock()
	defer r.storageLock.RUnlock()

	matches := make([]domain.Credito, 0)
	for _, c := range r.storage {
		if c.NumeroNfse == numeroNfse {
			matches = append(matches, c)
		}
	}
	return matches
}

func (r *Repository) SaveBulk(_ context.Context, creditos []domain.Credito) (int, error) {
	r.storageLock.Lock()
	defer r.storageLock.Unlock()

	for _, c := range creditos {
		if c.ID == 0 {
			r.nextID++
			c.ID = r.nextID
		} else if c.ID > r.nextID {
			r.nextID = c.ID
		}
		r.storage[c.ID] = c
	}
	slog.Debug("Saved creditos to in-memory storage", "count", len(creditos))

	return len(creditos), nil
}

func (r *Repository) DeleteTestRecords(_ context.Context) (int64, error) {
	r.storageLock.Lock()
	defer r.storageLock.Unlock()

	var deleted int64
	for id, c := range r.storage {
		if c.IsTestRecord() {
			delete(r.storage, id)
			deleted++
		}
	}
	return deleted, nil
}

func comparator(field string) (func(a, b domain.Credito) int, error) {
	switch field {
	case "", "id":
		return func(a, b domain.Credito) int { return cmp.Compare(a.ID, b.ID) }, nil
	case "numeroCredito":
		return func(a, b domain.Credito) int { return strings.Compare(a.NumeroCredito, b.NumeroCredito) }, nil
	case "numeroNfse":
		return func(a, b domain.Credito) int { return strings.Compare(a.NumeroNfse, b.NumeroNfse) }, nil
	case "dataConstituicao":
		return func(a, b domain.Credito) int { return a.DataConstituicao.Compare(b.DataConstituicao.Time) }, nil
	case "valorIssqn":
		return func(a, b domain.Credito) int { return cmp.Compare(a.ValorIssqn, b.ValorIssqn) }, nil
	case "tipoCredito":
		return func(a, b domain.Credito) int { return strings.Compare(a.TipoCredito, b.TipoCredito) }, nil
	case "simplesNacional":
		return func(a, b domain.Credito) int { return compareBool(a.SimplesNacional, b.SimplesNacional) }, nil
	case "aliquota":
		return func(a, b domain.Credito) int { return cmp.Compare(a.Aliquota, b.Aliquota) }, nil
	case "valorFaturado":
		return func(a, b domain.Credito) int { return cmp.Compare(a.ValorFaturado, b.ValorFaturado) }, nil
	case "valorDeducao":
		return func(a, b domain.Credito) int { return cmp.Compare(a.ValorDeducao, b.ValorDeducao) }, nil
	case "baseCalculo":
		return func(a, b domain.Credito) int { return cmp.Compare(a.BaseCalculo, b.BaseCalculo) }, nil
	default:
		return nil, fmt.Errorf("unsupported sort field: %s", field)
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
