package validation

import (
	"strings"

	"github.com/DjordjeVuckovic/creditos/pkg/pagination"
)

// Normalizer turns raw, possibly invalid pagination input into a bounded pageable.
// It never fails: absent or invalid input is replaced by configured defaults and
// reported as a warning.
type Normalizer struct {
	cfg Config
}

func NewNormalizer(cfg Config) *Normalizer {
	return &Normalizer{cfg: cfg.clone()}
}

// Default returns the first page with the configured defaults
func (n *Normalizer) Default() pagination.Pageable {
	return pagination.Pageable{
		Page:          0,
		Size:          n.cfg.DefaultPageSize,
		SortField:     n.cfg.DefaultSortField,
		SortDirection: n.cfg.DefaultSortDirection,
	}
}

// Normalize clamps page to [0, maxPage] and size to [1, max], replacing unknown sort fields
// and directions by their defaults.
func (n *Normalizer) Normalize(page, size, sortBy, sortDirection any) (pagination.Pageable, []string) {
	var warnings []string
	warn := func(w string) {
		warnings = append(warnings, w)
	}

	p := n.Default()
	p.Page = n.page(page, warn)
	p.Size = n.size(size, warn)
	p.SortField = n.sortField(sortBy, warn)
	p.SortDirection = n.sortDirection(sortDirection, warn)

	return p, warnings
}

func (n *Normalizer) page(v any, warn func(string)) int {
	if isAbsent(v) {
		warn(msgDefaulted(ParamPage, 0))
		return 0
	}

	page, ok := toInt(v)
	if !ok || page < 0 {
		warn(msgCorrected(ParamPage, v, 0))
		return 0
	}
	if page > n.cfg.MaxPage {
		warn(msgCorrected(ParamPage, v, n.cfg.MaxPage))
		return n.cfg.MaxPage
	}
	return page
}

func (n *Normalizer) size(v any, warn func(string)) int {
	def := n.cfg.DefaultPageSize
	if isAbsent(v) {
		warn(msgDefaulted(ParamSize, def))
		return def
	}

	size, ok := toInt(v)
	if !ok || size <= 0 {
		warn(msgCorrected(ParamSize, v, def))
		return def
	}
	if size > n.cfg.MaxPageSize {
		warn(msgCorrected(ParamSize, v, n.cfg.MaxPageSize))
		return n.cfg.MaxPageSize
	}
	return size
}

func (n *Normalizer) sortField(v any, warn func(string)) string {
	def := n.cfg.DefaultSortField
	if isAbsent(v) {
		warn(msgDefaulted(ParamSortBy, def))
		return def
	}

	s, ok := asString(v)
	if !ok || !n.cfg.IsSortable(strings.TrimSpace(s)) {
		warn(msgCorrected(ParamSortBy, v, def))
		return def
	}
	return strings.TrimSpace(s)
}

func (n *Normalizer) sortDirection(v any, warn func(string)) pagination.Direction {
	def := n.cfg.DefaultSortDirection
	if isAbsent(v) {
		warn(msgDefaulted(ParamSortDirection, def))
		return def
	}

	s, ok := asString(v)
	if !ok {
		warn(msgCorrected(ParamSortDirection, v, def))
		return def
	}
	d, ok := pagination.ParseDirection(s)
	if !ok {
		warn(msgCorrected(ParamSortDirection, v, def))
		return def
	}
	return d
}
