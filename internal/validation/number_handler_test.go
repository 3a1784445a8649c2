package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberHandler_Positive(t *testing.T) {
	h := NewNumberHandler()

	tests := []struct {
		name      string
		value     any
		wantValue any
		wantErr   string
	}{
		{name: "int", value: 5, wantValue: 5.0},
		{name: "float", value: 2.5, wantValue: 2.5},
		{name: "decimal string", value: " 12.75 ", wantValue: 12.75},
		{name: "integer string", value: "7", wantValue: 7.0},
		{name: "json number", value: json.Number("3.2"), wantValue: 3.2},
		{name: "negative", value: -5, wantErr: "field 'aliquota' must be positive"},
		{name: "zero", value: 0, wantErr: "field 'aliquota' must be positive"},
		{name: "nil", value: nil, wantErr: "field 'aliquota' is required"},
		{name: "not a number", value: "abc", wantErr: "field 'aliquota' must be a number"},
		{name: "bool", value: true, wantErr: "field 'aliquota' must be a number"},
		{name: "NaN string", value: "NaN", wantErr: "field 'aliquota' must be a number"},
		{name: "infinity", value: math.Inf(1), wantErr: "field 'aliquota' must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.Validate(NewRequest(KindNumberPositive, tt.value, "aliquota", nil))

			if tt.wantErr != "" {
				assert.False(t, res.Valid())
				assert.Equal(t, tt.wantErr, res.FirstError())
				assert.Nil(t, res.Value())
				return
			}
			assert.True(t, res.Valid())
			assert.Equal(t, tt.wantValue, res.Value())
		})
	}
}

func TestNumberHandler_Range(t *testing.T) {
	h := NewNumberHandler()
	rangeReq := func(v any, min, max any) Request {
		return NewRequest(KindNumberRange, v, "aliquota", map[string]any{ParamMin: min, ParamMax: max})
	}

	t.Run("inside bounds inclusive", func(t *testing.T) {
		for _, v := range []any{10, 7.5, 5, "5"} {
			res := h.Validate(rangeReq(v, 5, 10))
			assert.True(t, res.Valid(), fmt.Sprint(v))
		}
	})

	t.Run("outside bounds", func(t *testing.T) {
		res := h.Validate(rangeReq(11, 5, 10))

		assert.False(t, res.Valid())
		assert.Equal(t, "field 'aliquota' must be between 5 and 10", res.FirstError())
	})

	t.Run("min greater than max has a dedicated message", func(t *testing.T) {
		res := h.Validate(rangeReq(50, 10, 5))

		assert.False(t, res.Valid())
		assert.Equal(t, msgInvalidRange, res.FirstError())
	})

	t.Run("missing bounds", func(t *testing.T) {
		res := h.Validate(NewRequest(KindNumberRange, 5, "aliquota", map[string]any{ParamMin: 1}))

		assert.False(t, res.Valid())
		assert.Contains(t, res.FirstError(), "aliquota")
		assert.Contains(t, res.FirstError(), "'min' and 'max'")
	})

	t.Run("non numeric bound", func(t *testing.T) {
		res := h.Validate(rangeReq(5, "low", 10))

		assert.False(t, res.Valid())
		assert.Equal(t, "parameter 'min' must be a number", res.FirstError())
	})
}

func TestNumberHandler_RangeInvariant(t *testing.T) {
	h := NewNumberHandler()

	for lo := -3; lo <= 3; lo++ {
		for hi := -3; hi <= 3; hi++ {
			for v := -5; v <= 5; v++ {
				res := h.Validate(NewRequest(KindNumberRange, v, "n", map[string]any{ParamMin: lo, ParamMax: hi}))

				want := lo <= hi && lo <= v && v <= hi
				assert.Equal(t, want, res.Valid(), "v=%d min=%d max=%d", v, lo, hi)
				if lo > hi {
					assert.Equal(t, msgInvalidRange, res.FirstError())
				}
			}
		}
	}
}

func TestNumberHandler_Idempotent(t *testing.T) {
	h := NewNumberHandler()

	first := h.Validate(NewRequest(KindNumberPositive, "19.90", "valorFaturado", nil))
	second := h.Validate(NewRequest(KindNumberPositive, first.Value(), "valorFaturado", nil))

	assert.True(t, second.Valid())
	assert.Equal(t, first.Value(), second.Value())
}
