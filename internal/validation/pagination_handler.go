package validation

import (
	"strings"

	"github.com/DjordjeVuckovic/creditos/pkg/pagination"
)

const pageableField = "pageable"

// PaginationHandler validates pagination bundles, sort fields and sort directions.
// The strict pageable kind rejects invalid input; the lenient kind delegates to the Normalizer.
type PaginationHandler struct {
	base
	cfg        Config
	normalizer *Normalizer
}

func NewPaginationHandler(cfg Config) *PaginationHandler {
	cfg = cfg.clone()
	return &PaginationHandler{
		base:       base{name: "PageableValidationHandler", priority: PriorityPagination},
		cfg:        cfg,
		normalizer: NewNormalizer(cfg),
	}
}

func (h *PaginationHandler) CanHandle(req Request) bool {
	switch req.Kind() {
	case KindPageable, KindPageableLenient, KindSortField, KindSortDirection:
		return true
	default:
		return false
	}
}

func (h *PaginationHandler) Validate(req Request) Result {
	switch req.Kind() {
	case KindPageable:
		return h.strict(req)
	case KindPageableLenient:
		return h.lenient(req)
	case KindSortField:
		return h.sortField(req.Value(), req.FieldName())
	case KindSortDirection:
		return h.sortDirection(req.Value(), req.FieldName())
	default:
		return h.unsupported(req)
	}
}

func bundleField(req Request) string {
	if req.FieldName() != "" {
		return req.FieldName()
	}
	return pageableField
}

// strict reports every invalid parameter. The first failing parameter names the result field.
func (h *PaginationHandler) strict(req Request) Result {
	var (
		errs       []string
		warnings   []string
		firstField string
	)
	fail := func(field, msg string) {
		if firstField == "" {
			firstField = field
		}
		errs = append(errs, msg)
	}

	p := h.normalizer.Default()

	if v, _ := req.Param(ParamPage); isAbsent(v) {
		warnings = append(warnings, msgDefaulted(ParamPage, p.Page))
	} else if page, ok := toInt(v); !ok {
		fail(ParamPage, msgMustBeInteger(ParamPage))
	} else if page < 0 {
		fail(ParamPage, msgPageNegative(ParamPage))
	} else if page > h.cfg.MaxPage {
		fail(ParamPage, msgTooLarge(ParamPage, h.cfg.MaxPage))
	} else {
		p.Page = page
	}

	if v, _ := req.Param(ParamSize); isAbsent(v) {
		warnings = append(warnings, msgDefaulted(ParamSize, p.Size))
	} else if size, ok := toInt(v); !ok {
		fail(ParamSize, msgMustBeInteger(ParamSize))
	} else if size <= 0 {
		fail(ParamSize, msgMustBePositive(ParamSize))
	} else if size > h.cfg.MaxPageSize {
		fail(ParamSize, msgTooLarge(ParamSize, h.cfg.MaxPageSize))
	} else {
		p.Size = size
	}

	if v, _ := req.Param(ParamSortBy); isAbsent(v) {
		warnings = append(warnings, msgDefaulted(ParamSortBy, p.SortField))
	} else if s, ok := asString(v); !ok {
		fail(ParamSortBy, msgMustBeString(ParamSortBy))
	} else if field := strings.TrimSpace(s); !h.cfg.IsSortable(field) {
		fail(ParamSortBy, msgInvalidSortField(field, h.cfg.SortFields))
	} else {
		p.SortField = field
	}

	if v, _ := req.Param(ParamSortDirection); isAbsent(v) {
		warnings = append(warnings, msgDefaulted(ParamSortDirection, p.SortDirection))
	} else if s, ok := asString(v); !ok {
		fail(ParamSortDirection, msgMustBeString(ParamSortDirection))
	} else if d, ok := pagination.ParseDirection(s); !ok {
		fail(ParamSortDirection, msgInvalidDirection(ParamSortDirection))
	} else {
		p.SortDirection = d
	}

	if len(errs) > 0 {
		return h.failure(firstField, errs...)
	}
	return h.success(bundleField(req), "pagination parameters are valid", p, warnings...)
}

func (h *PaginationHandler) lenient(req Request) Result {
	page, _ := req.Param(ParamPage)
	size, _ := req.Param(ParamSize)
	sortBy, _ := req.Param(ParamSortBy)
	sortDirection, _ := req.Param(ParamSortDirection)

	p, warnings := h.normalizer.Normalize(page, size, sortBy, sortDirection)
	return h.success(bundleField(req), "pagination parameters normalized", p, warnings...)
}

func (h *PaginationHandler) sortField(value any, field string) Result {
	if isAbsent(value) {
		def := h.cfg.DefaultSortField
		return h.success(field, "sort field is optional", def, msgDefaulted(field, def))
	}

	s, ok := asString(value)
	if !ok {
		return h.failure(field, msgMustBeString(field))
	}

	sortField := strings.TrimSpace(s)
	if !h.cfg.IsSortable(sortField) {
		return h.failure(field, msgInvalidSortField(sortField, h.cfg.SortFields))
	}

	return h.success(field, "sort field is valid", sortField)
}

func (h *PaginationHandler) sortDirection(value any, field string) Result {
	if isAbsent(value) {
		def := h.cfg.DefaultSortDirection
		return h.success(field, "sort direction is optional", def, msgDefaulted(field, def))
	}

	s, ok := asString(value)
	if !ok {
		return h.failure(field, msgMustBeString(field))
	}

	d, ok := pagination.ParseDirection(s)
	if !ok {
		return h.failure(field, msgInvalidDirection(field))
	}

	return h.success(field, "sort direction is valid", d)
}
