package apperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/creditos/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	apperr.GlobalErrorHandler()(err, c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestGlobalErrorHandler(t *testing.T) {
	t.Run("validation error maps to 400 with field", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", apperr.NewFieldValidation("aliquota", "field 'aliquota' must be positive"))

		rec, body := serveError(t, err)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "aliquota", body["field"])
		assert.Equal(t, "validation error", body["title"])
		assert.Equal(t, "field 'aliquota' must be positive", body["error"])
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		rec, _ := serveError(t, apperr.NewNotFound("credito not found"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		rec, _ := serveError(t, apperr.NewForbidden("disabled"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("echo http error keeps its code", func(t *testing.T) {
		rec, body := serveError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "nope", body["error"])
	})

	t.Run("unknown error maps to 500", func(t *testing.T) {
		rec, body := serveError(t, errors.New("db down"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal server error", body["error"])
	})
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusOK, apperr.StatusCode(nil))
	assert.Equal(t, http.StatusBadRequest, apperr.StatusCode(fmt.Errorf("wrapped: %w", apperr.NewValidation("bad"))))
	assert.Equal(t, http.StatusNotFound, apperr.StatusCode(apperr.NewNotFound("missing")))
	assert.Equal(t, http.StatusForbidden, apperr.StatusCode(apperr.NewForbidden("disabled")))
	assert.Equal(t, http.StatusTeapot, apperr.StatusCode(echo.NewHTTPError(http.StatusTeapot)))
	assert.Equal(t, http.StatusInternalServerError, apperr.StatusCode(errors.New("boom")))
}
