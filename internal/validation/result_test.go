package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/creditos/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	res := Success("h", "tipoCredito", "ok", "ISS", "", "defaulted")

	assert.True(t, res.Valid())
	assert.Empty(t, res.Errors())
	assert.Equal(t, []string{"defaulted"}, res.Warnings())
	assert.Equal(t, "ISS", res.Value())
	assert.Equal(t, "h", res.HandlerName())
	assert.NoError(t, res.Err())
}

func TestFailure(t *testing.T) {
	t.Run("first error becomes message", func(t *testing.T) {
		res := Failure("h", "size", "first", " ", "second")

		assert.False(t, res.Valid())
		assert.Equal(t, "first", res.Message())
		assert.Equal(t, []string{"first", "second"}, res.Errors())
		assert.Nil(t, res.Value())
	})

	t.Run("no errors still fails with a message", func(t *testing.T) {
		res := Failure("h", "size")

		assert.False(t, res.Valid())
		assert.NotEmpty(t, res.Errors())
		assert.Equal(t, "validation failed", res.FirstError())
	})

	t.Run("err is a field validation error", func(t *testing.T) {
		err := Failure("h", "aliquota", "field 'aliquota' must be positive").Err()

		var ve *apperr.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "aliquota", ve.Field)
		assert.Equal(t, "field 'aliquota' must be positive", ve.Message)
	})
}

func TestResult_ErrorsAreCopies(t *testing.T) {
	res := Failure("h", "f", "boom")

	errs := res.Errors()
	errs[0] = "mutated"

	assert.Equal(t, "boom", res.FirstError())
}

func TestResult_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Success("StringValidationHandler", "tipoCredito", "ok", "ISS"))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, true, got["valid"])
	assert.Equal(t, "ISS", got["processedValue"])
	assert.Equal(t, "tipoCredito", got["fieldName"])
	assert.Equal(t, []any{}, got["errors"])
	assert.Equal(t, []any{}, got["warnings"])
}

func TestRequest_ParamsAreImmutable(t *testing.T) {
	params := map[string]any{ParamMin: 1}
	req := NewRequest(KindNumberRange, 5, "aliquota", params)

	params[ParamMin] = 100
	got := req.Params()
	got[ParamMax] = 3

	v, ok := req.Param(ParamMin)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = req.Param(ParamMax)
	assert.False(t, ok)
}

func TestRequest_NilParams(t *testing.T) {
	req := NewRequest(KindStringNotEmpty, "x", "f", nil)

	assert.NotNil(t, req.Params())
	assert.Empty(t, req.Params())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}

	got, ok := ParseKind(" sort_direction ")
	assert.True(t, ok)
	assert.Equal(t, KindSortDirection, got)

	_, ok = ParseKind("DATE_FORMAT")
	assert.False(t, ok)
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
