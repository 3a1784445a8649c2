package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/creditos/internal/domain"
	"github.com/DjordjeVuckovic/creditos/internal/storage"
	"github.com/DjordjeVuckovic/creditos/pkg/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) (*Reader, error) {
	return &Reader{db: pool.db}, nil
}

var selectCredito = "SELECT " + strings.Join(creditoColumns, ", ") + " FROM " + creditoTable

func (r *Reader) FindByNumeroCredito(ctx context.Context, numeroCredito string) (*domain.Credito, error) {
	row := r.db.QueryRow(ctx, selectCredito+" WHERE numero_credito = $1 ORDER BY id LIMIT 1", numeroCredito)

	c, err := scanCredito(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find credito %s: %w", numeroCredito, err)
	}
	return &c, nil
}

func (r *Reader) FindByNumeroNfse(ctx context.Context, numeroNfse string) ([]domain.Credito, error) {
	rows, err := r.db.Query(ctx, selectCredito+" WHERE numero_nfse = $1 ORDER BY id", numeroNfse)
	if err != nil {
		return nil, fmt.Errorf("failed to query creditos: %w", err)
	}
	return collectCreditos(rows)
}

func (r *Reader) FindPageByNumeroNfse(ctx context.Context, numeroNfse string, p pagination.Pageable) (*pagination.PageResult[domain.Credito], error) {
	order, err := orderBy(p)
	if err != nil {
		return nil, err
	}
	slog.Debug("Executing pg paginated query", "numeroNfse", numeroNfse, "pageable", p.String())

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM "+creditoTable+" WHERE numero_nfse = $1", numeroNfse).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count creditos: %w", err)
	}

	rows, err := r.db.Query(ctx,
		selectCredito+" WHERE numero_nfse = $1 "+order+" LIMIT $2 OFFSET $3",
		numeroNfse, p.Size, p.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query creditos page: %w", err)
	}

	creditos, err := collectCreditos(rows)
	if err != nil {
		return nil, err
	}
	return pagination.NewPageResult(creditos, total, p), nil
}
