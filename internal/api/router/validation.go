package router

import (
	"encoding/json"
	"net/http"

	"github.com/DjordjeVuckovic/creditos/internal/apperr"
	"github.com/DjordjeVuckovic/creditos/internal/validation"
	"github.com/labstack/echo/v4"
)

// ValidationRouter exposes the validation factory over HTTP
type ValidationRouter struct {
	e       *echo.Echo
	factory *validation.Factory
	chain   *validation.Chain
}

func NewValidationRouter(e *echo.Echo, chain *validation.Chain) *ValidationRouter {
	return &ValidationRouter{
		e:       e,
		factory: validation.NewFactory(chain),
		chain:   chain,
	}
}

func (r *ValidationRouter) Bind() {
	r.e.POST("/api/validation", r.validate)
	r.e.GET("/api/validation/types", r.types)
}

// validate godoc
// @Summary Validate a value
// @Description Runs one validation selected by "type" over the parameters of the body.
// @Tags validation
// @Accept json
// @Produce json
// @Param body body map[string]any true "type, value, fieldName and the parameters of the type"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/validation [post]
func (r *ValidationRouter) validate(c echo.Context) error {
	var params map[string]any
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	if err := dec.Decode(&params); err != nil {
		return apperr.NewValidationWrap("invalid JSON body", err)
	}

	res := r.factory.Create(params)
	if !res.Valid() {
		return c.JSON(http.StatusBadRequest, res)
	}
	return c.JSON(http.StatusOK, res)
}

type typesResponse struct {
	Types    []string `json:"types"`
	Handlers []string `json:"handlers"`
}

// types godoc
// @Summary List validation types and the registered handlers
// @Tags validation
// @Produce json
// @Success 200 {object} typesResponse
// @Router /api/validation/types [get]
func (r *ValidationRouter) types(c echo.Context) error {
	return c.JSON(http.StatusOK, typesResponse{
		Types:    validation.SupportedTypes(),
		Handlers: r.chain.Handlers(),
	})
}
