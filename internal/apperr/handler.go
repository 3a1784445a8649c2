package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Error  string   `json:"error"`
	Title  string   `json:"title,omitempty"`
	Field  string   `json:"field,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// StatusCode returns the HTTP status GlobalErrorHandler answers err with
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var ve *ValidationError
	var nfe *NotFoundError
	var fe *ForbiddenError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &nfe):
		return http.StatusNotFound
	case errors.As(err, &fe):
		return http.StatusForbidden
	case errors.As(err, &he):
		return he.Code
	default:
		return http.StatusInternalServerError
	}
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, errorBody{
				Error:  ve.Message,
				Title:  "validation error",
				Field:  ve.Field,
				Errors: ve.Errors,
			})
			return
		}

		var nfe *NotFoundError
		if errors.As(err, &nfe) {
			_ = c.JSON(http.StatusNotFound, errorBody{Error: nfe.Message, Title: "not found"})
			return
		}

		var fe *ForbiddenError
		if errors.As(err, &fe) {
			_ = c.JSON(http.StatusForbidden, errorBody{Error: fe.Message, Title: "forbidden"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, errorBody{Error: msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}
