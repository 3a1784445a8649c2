package pg

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/creditos/internal/domain"
	"github.com/DjordjeVuckovic/creditos/pkg/pagination"
	"github.com/jackc/pgx/v5"
)

const creditoTable = "credito"

// creditoColumns is the column order used by every select and by CopyFrom (minus id)
var creditoColumns = []string{
	"id",
	"numero_credito",
	"numero_nfse",
	"data_constituicao",
	"valor_issqn",
	"tipo_credito",
	"simples_nacional",
	"aliquota",
	"valor_faturado",
	"valor_deducao",
	"base_calculo",
}

// sortColumns maps the JSON field names clients sort by to table columns
var sortColumns = map[string]string{
	"id":               "id",
	"numeroCredito":    "numero_credito",
	"numeroNfse":       "numero_nfse",
	"dataConstituicao": "data_constituicao",
	"valorIssqn":       "valor_issqn",
	"tipoCredito":      "tipo_credito",
	"simplesNacional":  "simples_nacional",
	"aliquota":         "aliquota",
	"valorFaturado":    "valor_faturado",
	"valorDeducao":     "valor_deducao",
	"baseCalculo":      "base_calculo",
}

// orderBy builds a safe ORDER BY clause; only mapped columns and the two directions reach the SQL text
func orderBy(p pagination.Pageable) (string, error) {
	field := p.SortField
	if field == "" {
		field = pagination.DefaultSortField
	}
	col, ok := sortColumns[field]
	if !ok {
		return "", fmt.Errorf("unsupported sort field: %s", field)
	}

	dir := p.SortDirection
	if dir == "" {
		dir = pagination.ASC
	}
	if !dir.IsValid() {
		return "", fmt.Errorf("unsupported sort direction: %s", dir)
	}

	if col == "id" {
		return fmt.Sprintf("ORDER BY id %s", dir), nil
	}
	return fmt.Sprintf("ORDER BY %s %s, id %s", col, dir, dir), nil
}

func scanCredito(row pgx.Row) (domain.Credito, error) {
	var c domain.Credito
	var data time.Time

	if err := row.Scan(
		&c.ID,
		&c.NumeroCredito,
		&c.NumeroNfse,
		&data,
		&c.ValorIssqn,
		&c.TipoCredito,
		&c.SimplesNacional,
		&c.Aliquota,
		&c.ValorFaturado,
		&c.ValorDeducao,
		&c.BaseCalculo,
	); err != nil {
		return domain.Credito{}, err
	}
	c.DataConstituicao = domain.DateOf(data)

	return c, nil
}

func collectCreditos(rows pgx.Rows) ([]domain.Credito, error) {
	defer rows.Close()

	creditos := make([]domain.Credito, 0)
	for rows.Next() {
		c, err := scanCredito(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credito: %w", err)
		}
		creditos = append(creditos, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return creditos, nil
}
