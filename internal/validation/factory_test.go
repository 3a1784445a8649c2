package validation

import (
	"testing"

	"github.com/DjordjeVuckovic/creditos/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(t *testing.T) *Factory {
	t.Helper()
	return NewFactory(newTestChain(t))
}

func TestFactory_Create(t *testing.T) {
	f := newTestFactory(t)

	tests := []struct {
		name      string
		params    map[string]any
		wantValid bool
		wantValue any
		wantErr   string
	}{
		{
			name:      "string not empty",
			params:    map[string]any{"type": "STRING_NOT_EMPTY", "value": "  ISS  ", "fieldName": "tipoCredito"},
			wantValid: true, wantValue: "ISS",
		},
		{
			name:      "type is case-insensitive",
			params:    map[string]any{"type": "number_positive", "value": "2.5", "fieldName": "aliquota"},
			wantValid: true, wantValue: 2.5,
		},
		{
			name:      "null value is forwarded",
			params:    map[string]any{"type": "STRING_OPTIONAL", "value": nil, "fieldName": "numeroNfse"},
			wantValid: true, wantValue: nil,
		},
		{
			name:      "range",
			params:    map[string]any{"type": "NUMBER_RANGE", "value": 7, "fieldName": "aliquota", "min": 0, "max": 10},
			wantValid: true, wantValue: 7.0,
		},
		{
			name:    "inverted range",
			params:  map[string]any{"type": "NUMBER_RANGE", "value": 50, "fieldName": "aliquota", "min": 10, "max": 5},
			wantErr: msgInvalidRange,
		},
		{
			name:    "range without bounds",
			params:  map[string]any{"type": "NUMBER_RANGE", "value": 7, "fieldName": "aliquota"},
			wantErr: "parameter 'min' is required",
		},
		{
			name:      "sort direction",
			params:    map[string]any{"type": "SORT_DIRECTION", "value": "desc", "fieldName": "sortDirection"},
			wantValid: true, wantValue: pagination.DESC,
		},
		{
			name:    "sort field",
			params:  map[string]any{"type": "SORT_FIELD", "value": "senha", "fieldName": "sortBy"},
			wantErr: "invalid sort field 'senha'",
		},
		{
			name:    "unknown type fails closed",
			params:  map[string]any{"type": "EMAIL", "value": "a@b.c", "fieldName": "email"},
			wantErr: "unsupported validation type 'EMAIL'",
		},
		{
			name:    "missing type",
			params:  map[string]any{"value": "x", "fieldName": "f"},
			wantErr: "parameter 'type' is required",
		},
		{
			name:    "blank type",
			params:  map[string]any{"type": "", "value": "x", "fieldName": "f"},
			wantErr: "parameter 'type' is required",
		},
		{
			name:    "non-string type",
			params:  map[string]any{"type": 3, "value": "x", "fieldName": "f"},
			wantErr: "parameter 'type' must be a string",
		},
		{
			name:    "missing field name",
			params:  map[string]any{"type": "STRING_NOT_EMPTY", "value": "x"},
			wantErr: "parameter 'fieldName' is required",
		},
		{
			name:    "missing value key",
			params:  map[string]any{"type": "STRING_NOT_EMPTY", "fieldName": "f"},
			wantErr: "parameter 'value' is required",
		},
		{
			name:    "non-string field name",
			params:  map[string]any{"type": "STRING_NOT_EMPTY", "value": "x", "fieldName": 1},
			wantErr: "parameter 'fieldName' must be a string",
		},
		{
			name:    "nil params",
			params:  nil,
			wantErr: "parameters are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := f.Create(tt.params)

			assert.Equal(t, tt.wantValid, res.Valid(), res.Errors())
			if tt.wantValid {
				assert.Equal(t, tt.wantValue, res.Value())
				return
			}
			assert.Contains(t, res.FirstError(), tt.wantErr)
		})
	}
}

func TestFactory_Pageable(t *testing.T) {
	f := newTestFactory(t)

	t.Run("lenient defaults field name", func(t *testing.T) {
		res := f.Create(map[string]any{"type": "PAGEABLE_LENIENT", "page": -1, "size": 0, "sortBy": "invalidField", "sortDirection": "sideways"})

		require.True(t, res.Valid())
		assert.Equal(t, "pageable", res.FieldName())
		assert.Equal(t, pagination.DefaultPageable(), res.Value())
	})

	t.Run("strict rejects", func(t *testing.T) {
		res := f.Create(map[string]any{"type": "PAGEABLE", "size": 101})

		assert.False(t, res.Valid())
		assert.Equal(t, "size", res.FieldName())
	})

	t.Run("strict with custom field name", func(t *testing.T) {
		res := f.Create(map[string]any{"type": "pageable", "fieldName": "listing", "page": "2", "size": "20"})

		require.True(t, res.Valid())
		assert.Equal(t, "listing", res.FieldName())
		assert.Equal(t, pagination.Pageable{Page: 2, Size: 20, SortField: "id", SortDirection: pagination.ASC}, res.Value())
	})
}

func TestSupportedTypes(t *testing.T) {
	types := SupportedTypes()

	assert.Len(t, types, len(Kinds()))
	assert.Contains(t, types, "PAGEABLE_LENIENT")
	assert.Contains(t, types, "STRING_NOT_EMPTY")
}
