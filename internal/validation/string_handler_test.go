package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringHandler_NotEmpty(t *testing.T) {
	h := NewStringHandler()

	tests := []struct {
		name      string
		value     any
		wantValid bool
		wantValue any
		wantErr   string
	}{
		{name: "trims value", value: "  ISS  ", wantValid: true, wantValue: "ISS"},
		{name: "nil is required", value: nil, wantErr: "field 'tipoCredito' is required"},
		{name: "non-string", value: 42, wantErr: "field 'tipoCredito' must be a string"},
		{name: "empty", value: "", wantErr: "field 'tipoCredito' cannot be empty"},
		{name: "whitespace only", value: " \t ", wantErr: "field 'tipoCredito' cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.Validate(NewRequest(KindStringNotEmpty, tt.value, "tipoCredito", nil))

			assert.Equal(t, tt.wantValid, res.Valid())
			assert.Equal(t, tt.wantValue, res.Value())
			assert.Equal(t, "tipoCredito", res.FieldName())
			assert.Equal(t, "StringValidationHandler", res.HandlerName())
			if tt.wantErr != "" {
				assert.Equal(t, []string{tt.wantErr}, res.Errors())
			} else {
				assert.Empty(t, res.Errors())
			}
		})
	}
}

func TestStringHandler_Optional(t *testing.T) {
	h := NewStringHandler()

	tests := []struct {
		name         string
		value        any
		wantValid    bool
		wantValue    any
		wantWarnings bool
	}{
		{name: "nil defaults to nil", value: nil, wantValid: true, wantValue: nil, wantWarnings: true},
		{name: "empty defaults to nil", value: "", wantValid: true, wantValue: nil, wantWarnings: true},
		{name: "blank defaults to nil", value: "   ", wantValid: true, wantValue: nil, wantWarnings: true},
		{name: "trims value", value: " NFS-1 ", wantValid: true, wantValue: "NFS-1"},
		{name: "non-string fails", value: 3.5, wantValid: false, wantValue: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.Validate(NewRequest(KindStringOptional, tt.value, "numeroNfse", nil))

			assert.Equal(t, tt.wantValid, res.Valid())
			assert.Equal(t, tt.wantValue, res.Value())
			assert.Equal(t, tt.wantWarnings, res.HasWarnings())
		})
	}
}

func TestStringHandler_CanHandle(t *testing.T) {
	h := NewStringHandler()

	for _, k := range Kinds() {
		want := k == KindStringNotEmpty || k == KindStringOptional
		assert.Equal(t, want, h.CanHandle(NewRequest(k, nil, "", nil)), k.String())
	}
}

func TestStringHandler_UnsupportedKind(t *testing.T) {
	res := NewStringHandler().Validate(NewRequest(KindSortField, "id", "sortBy", nil))

	assert.False(t, res.Valid())
	assert.Contains(t, res.FirstError(), "SORT_FIELD")
}
