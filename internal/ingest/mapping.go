package ingest

import (
	"fmt"
	"io"
	"slices"

	"github.com/DjordjeVuckovic/creditos/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	MappingKind    = "CreditoMapping"
	MappingVersion = "v1"
)

// Credito fields a column can be mapped to
const (
	FieldNumeroCredito    = "numeroCredito"
	FieldNumeroNfse       = "numeroNfse"
	FieldDataConstituicao = "dataConstituicao"
	FieldValorIssqn       = "valorIssqn"
	FieldTipoCredito      = "tipoCredito"
	FieldSimplesNacional  = "simplesNacional"
	FieldAliquota         = "aliquota"
	FieldValorFaturado    = "valorFaturado"
	FieldValorDeducao     = "valorDeducao"
	FieldBaseCalculo      = "baseCalculo"
)

// RequiredFields must be mapped for a credito to be built.
// valorDeducao defaults to zero; baseCalculo and valorIssqn are computed when unmapped.
var RequiredFields = []string{
	FieldNumeroCredito,
	FieldNumeroNfse,
	FieldDataConstituicao,
	FieldTipoCredito,
	FieldSimplesNacional,
	FieldAliquota,
	FieldValorFaturado,
}

var targetFields = append(slices.Clone(RequiredFields), FieldValorDeducao, FieldValorIssqn, FieldBaseCalculo)

// Mapping binds the columns of a source file to credito fields
type Mapping struct {
	Kind          string         `yaml:"kind"`
	Version       string         `yaml:"version"`
	Metadata      Metadata       `yaml:"metadata"`
	Dataset       string         `yaml:"dataset"`
	DateFormat    string         `yaml:"dateFormat,omitempty"`
	FieldMappings []FieldMapping `yaml:"fieldMappings"`
}

type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type FieldMapping struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// DefaultMapping expects the columns to be named after the credito JSON fields
func DefaultMapping() *Mapping {
	m := &Mapping{
		Kind:       MappingKind,
		Version:    MappingVersion,
		Metadata:   Metadata{Name: "default"},
		Dataset:    "creditos",
		DateFormat: domain.DateLayout,
	}
	for _, f := range targetFields {
		m.FieldMappings = append(m.FieldMappings, FieldMapping{Source: f, Target: f})
	}
	return m
}

// LoadMapping decodes and validates a YAML mapping
func LoadMapping(r io.Reader) (*Mapping, error) {
	var m Mapping
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode mapping: %w", err)
	}
	if m.DateFormat == "" {
		m.DateFormat = domain.DateLayout
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Mapping) Validate() error {
	if m.Kind != MappingKind {
		return &MappingError{Message: fmt.Sprintf("kind must be %s, got '%s'", MappingKind, m.Kind)}
	}
	if m.Version != MappingVersion {
		return &MappingError{Message: fmt.Sprintf("unsupported version '%s'", m.Version)}
	}
	if m.Metadata.Name == "" {
		return &MappingError{Message: "metadata.name is required"}
	}
	if len(m.FieldMappings) == 0 {
		return &MappingError{Message: "at least one field mapping is required"}
	}

	seen := make(map[string]bool, len(m.FieldMappings))
	for i, fm := range m.FieldMappings {
		if fm.Source == "" {
			return &MappingError{Message: fmt.Sprintf("fieldMappings[%d] must have source defined", i)}
		}
		if !slices.Contains(targetFields, fm.Target) {
			return &MappingError{Message: fmt.Sprintf("fieldMappings[%d] has unknown target '%s'", i, fm.Target)}
		}
		if seen[fm.Target] {
			return &MappingError{Message: fmt.Sprintf("target '%s' is mapped more than once", fm.Target)}
		}
		seen[fm.Target] = true
	}
	for _, f := range RequiredFields {
		if !seen[f] {
			return &MappingError{Message: fmt.Sprintf("required target '%s' is not mapped", f)}
		}
	}
	return nil
}

// sources returns the column mapped to each target
func (m *Mapping) sources() map[string]string {
	out := make(map[string]string, len(m.FieldMappings))
	for _, fm := range m.FieldMappings {
		out[fm.Target] = fm.Source
	}
	return out
}

type MappingError struct {
	Message string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping error: %s", e.Message)
}
