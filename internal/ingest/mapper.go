package ingest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/creditos/internal/domain"
	"github.com/DjordjeVuckovic/creditos/internal/validation"
)

// RowError reports why a row could not be turned into a credito
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// CreditoMapper builds creditos from rows through a Mapping.
// Values are checked with the validation chain before the credito is built.
type CreditoMapper struct {
	mapping *Mapping
	sources map[string]string
	chain   *validation.Chain
}

func NewCreditoMapper(m *Mapping, chain *validation.Chain) (*CreditoMapper, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &CreditoMapper{
		mapping: m,
		sources: m.sources(),
		chain:   chain,
	}, nil
}

func (m *CreditoMapper) Map(row Row) (domain.Credito, error) {
	c, err := m.mapRecord(row.Record)
	if err != nil {
		return domain.Credito{}, &RowError{Line: row.Line, Err: err}
	}
	return c, nil
}

func (m *CreditoMapper) mapRecord(record map[string]string) (domain.Credito, error) {
	var errs []error
	str := func(field string) string {
		res := m.chain.ValidateStringNotEmpty(m.raw(record, field), field)
		if !res.Valid() {
			errs = append(errs, res.Err())
			return ""
		}
		v, _ := validation.ValueAs[string](res)
		return v
	}
	positive := func(field string) float64 {
		res := m.chain.ValidatePositiveNumber(m.raw(record, field), field)
		if !res.Valid() {
			errs = append(errs, res.Err())
			return 0
		}
		v, _ := validation.ValueAs[float64](res)
		return v
	}

	numeroCredito := str(FieldNumeroCredito)
	numeroNfse := str(FieldNumeroNfse)
	tipoCredito := str(FieldTipoCredito)
	aliquota := positive(FieldAliquota)
	faturado := positive(FieldValorFaturado)

	data, err := m.date(record)
	if err != nil {
		errs = append(errs, err)
	}
	simples, err := parseSimplesNacional(m.raw(record, FieldSimplesNacional))
	if err != nil {
		errs = append(errs, err)
	}
	deducao, err := m.optionalAmount(record, FieldValorDeducao)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return domain.Credito{}, errors.Join(errs...)
	}

	c, err := domain.NewCredito(numeroCredito, numeroNfse, data, tipoCredito, simples, aliquota, faturado, deducao)
	if err != nil {
		return domain.Credito{}, err
	}

	// Amounts present in the source are kept as recorded
	for _, amount := range []struct {
		field string
		dst   *float64
	}{
		{FieldBaseCalculo, &c.BaseCalculo},
		{FieldValorIssqn, &c.ValorIssqn},
	} {
		if !m.present(record, amount.field) {
			continue
		}
		v, err := m.optionalAmount(record, amount.field)
		if err != nil {
			return domain.Credito{}, err
		}
		*amount.dst = v
	}
	return c, nil
}

// raw returns the value of the column mapped to field; nil when unmapped or blank
func (m *CreditoMapper) raw(record map[string]string, field string) any {
	if !m.present(record, field) {
		return nil
	}
	return record[m.sources[field]]
}

func (m *CreditoMapper) present(record map[string]string, field string) bool {
	src, ok := m.sources[field]
	if !ok {
		return false
	}
	return strings.TrimSpace(record[src]) != ""
}

func (m *CreditoMapper) date(record map[string]string) (domain.Date, error) {
	raw, _ := m.raw(record, FieldDataConstituicao).(string)
	if raw == "" {
		return domain.Date{}, fmt.Errorf("field '%s' is required", FieldDataConstituicao)
	}
	t, err := time.Parse(m.mapping.DateFormat, raw)
	if err != nil {
		return domain.Date{}, fmt.Errorf("field '%s' must match %s: %w", FieldDataConstituicao, m.mapping.DateFormat, err)
	}
	return domain.DateOf(t), nil
}

func (m *CreditoMapper) optionalAmount(record map[string]string, field string) (float64, error) {
	raw, _ := m.raw(record, field).(string)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("field '%s' must be a finite number", field)
	}
	if v < 0 {
		return 0, fmt.Errorf("field '%s' must not be negative", field)
	}
	return v, nil
}

// parseSimplesNacional accepts the usual boolean spellings plus Sim/Não
func parseSimplesNacional(v any) (bool, error) {
	raw, _ := v.(string)
	switch strings.ToLower(raw) {
	case "sim", "s":
		return true, nil
	case "não", "nao", "n":
		return false, nil
	case "":
		return false, fmt.Errorf("field '%s' is required", FieldSimplesNacional)
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("field '%s' must be a boolean", FieldSimplesNacional)
	}
	return b, nil
}
