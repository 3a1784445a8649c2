package validation

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/creditos/pkg/pagination"
	"gopkg.in/yaml.v3"
)

// DefaultSortFields are the credito fields results may be ordered by
var DefaultSortFields = []string{
	"id",
	"numeroCredito",
	"numeroNfse",
	"dataConstituicao",
	"valorIssqn",
	"tipoCredito",
	"simplesNacional",
	"aliquota",
	"valorFaturado",
	"valorDeducao",
	"baseCalculo",
}

// Config holds the allow-list and defaults used by the pagination handler
type Config struct {
	SortFields           []string             `yaml:"sortFields"`
	DefaultSortField     string               `yaml:"defaultSortField"`
	DefaultSortDirection pagination.Direction `yaml:"defaultSortDirection"`
	DefaultPageSize      int                  `yaml:"defaultPageSize"`
	MaxPageSize          int                  `yaml:"maxPageSize"`
	MaxPage              int                  `yaml:"maxPage"`
}

func DefaultConfig() Config {
	return Config{
		SortFields:           slices.Clone(DefaultSortFields),
		DefaultSortField:     pagination.DefaultSortField,
		DefaultSortDirection: pagination.ASC,
		DefaultPageSize:      pagination.DefaultPageSize,
		MaxPageSize:          pagination.MaxPageSize,
		MaxPage:              pagination.MaxPage,
	}
}

// LoadConfig decodes YAML over DefaultConfig; keys missing from the document keep their defaults.
// An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode validation config: %w", err)
	}
	cfg.DefaultSortDirection = pagination.Direction(strings.ToUpper(strings.TrimSpace(string(cfg.DefaultSortDirection))))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open validation config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// Validate checks that the defaults are consistent with the allow-list and size bounds
func (c Config) Validate() error {
	if len(c.SortFields) == 0 {
		return errors.New("validation config: sortFields must not be empty")
	}
	if !c.IsSortable(c.DefaultSortField) {
		return fmt.Errorf("validation config: default sort field %q is not in sortFields", c.DefaultSortField)
	}
	if !c.DefaultSortDirection.IsValid() {
		return fmt.Errorf("validation config: default sort direction %q must be ASC or DESC", c.DefaultSortDirection)
	}
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("validation config: maxPageSize must be positive, got %d", c.MaxPageSize)
	}
	if c.MaxPage <= 0 || c.MaxPage > math.MaxInt/c.MaxPageSize-1 {
		return fmt.Errorf("validation config: maxPage must be between 1 and %d, got %d", math.MaxInt/c.MaxPageSize-1, c.MaxPage)
	}
	if c.DefaultPageSize <= 0 || c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("validation config: defaultPageSize must be between 1 and %d, got %d", c.MaxPageSize, c.DefaultPageSize)
	}
	return nil
}

// IsSortable reports whether field is in the allow-list. Matching is case-sensitive.
func (c Config) IsSortable(field string) bool {
	return slices.Contains(c.SortFields, field)
}

func (c Config) clone() Config {
	c.SortFields = slices.Clone(c.SortFields)
	return c
}
