package pg

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/creditos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	return &Storer{db: pool.db}, nil
}

// SaveBulk copies creditos into the table; ids are assigned by the database
func (s *Storer) SaveBulk(ctx context.Context, creditos []domain.Credito) (int, error) {
	rows := make([][]any, len(creditos))
	for i, c := range creditos {
		rows[i] = []any{
			c.NumeroCredito,
			c.NumeroNfse,
			c.DataConstituicao.Time,
			c.ValorIssqn,
			c.TipoCredito,
			c.SimplesNacional,
			c.Aliquota,
			c.ValorFaturado,
			c.ValorDeducao,
			c.BaseCalculo,
		}
	}

	n, err := s.db.CopyFrom(
		ctx,
		pgx.Identifier{creditoTable},
		creditoColumns[1:],
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert creditos: %w", err)
	}
	return int(n), nil
}

func (s *Storer) DeleteTestRecords(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx,
		"DELETE FROM "+creditoTable+" WHERE numero_credito LIKE $1 OR numero_nfse LIKE $2",
		domain.TestCreditoPrefix+"%", domain.TestNfsePrefix+"%",
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete test creditos: %w", err)
	}
	return tag.RowsAffected(), nil
}
