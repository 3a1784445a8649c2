package router

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/creditos/internal/apperr"
	"github.com/DjordjeVuckovic/creditos/internal/audit"
	"github.com/DjordjeVuckovic/creditos/internal/credito"
	"github.com/labstack/echo/v4"
)

// CreditoRouter serves the credito queries and the test data endpoints
type CreditoRouter struct {
	e            *echo.Echo
	svc          *credito.Service
	publisher    audit.Publisher
	testFeatures bool
}

type CreditoRouterOption func(*CreditoRouter)

func WithPublisher(p audit.Publisher) CreditoRouterOption {
	return func(r *CreditoRouter) {
		if p != nil {
			r.publisher = p
		}
	}
}

// WithTestFeatures enables the test data generation and deletion endpoints
func WithTestFeatures(enabled bool) CreditoRouterOption {
	return func(r *CreditoRouter) { r.testFeatures = enabled }
}

func NewCreditoRouter(e *echo.Echo, svc *credito.Service, opts ...CreditoRouterOption) *CreditoRouter {
	r := &CreditoRouter{
		e:         e,
		svc:       svc,
		publisher: audit.NewNoopPublisher(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CreditoRouter) Bind() {
	g := r.e.Group("/api/creditos")
	g.GET("/credito/:numeroCredito", r.getByNumeroCredito)
	g.GET("/paginated/:numeroNfse", r.pageByNumeroNfse)
	g.POST("/teste/gerar", r.generateTestData)
	g.DELETE("/teste/deletar", r.deleteTestData)
	g.GET("/:numeroNfse", r.listByNumeroNfse)
}

// getByNumeroCredito godoc
// @Summary Find a credito by its number
// @Tags creditos
// @Produce json
// @Param numeroCredito path string true "Credito number"
// @Success 200 {object} domain.Credito
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/creditos/credito/{numeroCredito} [get]
func (r *CreditoRouter) getByNumeroCredito(c echo.Context) error {
	start := time.Now()
	numero := c.Param("numeroCredito")

	cr, err := r.svc.GetByNumeroCredito(c.Request().Context(), numero)

	count := 0
	if err == nil {
		count = 1
	}
	r.publish(c, audit.TypeCreditoByNumero, map[string]any{"numeroCredito": numero}, start, count, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cr)
}

// listByNumeroNfse godoc
// @Summary List the creditos of an NFS-e
// @Tags creditos
// @Produce json
// @Param numeroNfse path string true "NFS-e number"
// @Success 200 {array} domain.Credito
// @Failure 404 {object} map[string]any
// @Router /api/creditos/{numeroNfse} [get]
func (r *CreditoRouter) listByNumeroNfse(c echo.Context) error {
	start := time.Now()
	numero := c.Param("numeroNfse")

	list, err := r.svc.ListByNumeroNfse(c.Request().Context(), numero)

	r.publish(c, audit.TypeCreditosByNfse, map[string]any{"numeroNfse": numero}, start, len(list), err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// pageByNumeroNfse godoc
// @Summary Page through the creditos of an NFS-e
// @Description Invalid pagination input is replaced by defaults unless strict=true, which answers 400 instead.
// @Tags creditos
// @Produce json
// @Param numeroNfse path string true "NFS-e number"
// @Param page query int false "Zero-based page" default(0)
// @Param size query int false "Page size, at most 100" default(10)
// @Param sortBy query string false "Sort field" default(id)
// @Param sortDirection query string false "ASC or DESC" default(ASC)
// @Param strict query bool false "Reject invalid pagination input"
// @Success 200 {object} credito.Page
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/creditos/paginated/{numeroNfse} [get]
func (r *CreditoRouter) pageByNumeroNfse(c echo.Context) error {
	start := time.Now()
	numero := c.Param("numeroNfse")
	q := credito.PageQuery{
		Page:          c.QueryParam("page"),
		Size:          c.QueryParam("size"),
		SortBy:        c.QueryParam("sortBy"),
		SortDirection: c.QueryParam("sortDirection"),
		Strict:        c.QueryParam("strict") == "true",
	}

	page, err := r.svc.PageByNumeroNfse(c.Request().Context(), numero, q)

	count := 0
	if page != nil {
		count = len(page.Content)
	}
	r.publish(c, audit.TypeCreditosByNfsePage, map[string]any{
		"numeroNfse":    numero,
		"page":          q.Page,
		"size":          q.Size,
		"sortBy":        q.SortBy,
		"sortDirection": q.SortDirection,
		"strict":        q.Strict,
	}, start, count, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

type generatedResponse struct {
	RegistrosGerados int    `json:"registrosGerados"`
	Mensagem         string `json:"mensagem"`
}

type deletedResponse struct {
	RegistrosDeletados int64  `json:"registrosDeletados"`
	Mensagem           string `json:"mensagem"`
}

// generateTestData godoc
// @Summary Generate test creditos
// @Description Replaces every TESTE record by nfseCount x creditsPerNfse generated creditos.
// @Tags test data
// @Accept json
// @Produce json
// @Param body body credito.GenerateOptions false "Generation sizes, 1 to 100 each"
// @Success 200 {object} generatedResponse
// @Failure 400 {object} map[string]any
// @Failure 403 {object} map[string]any
// @Router /api/creditos/teste/gerar [post]
func (r *CreditoRouter) generateTestData(c echo.Context) error {
	start := time.Now()
	if err := r.requireTestFeatures(); err != nil {
		r.publish(c, audit.TypeTestDataGenerated, nil, start, 0, err)
		return err
	}

	opts := credito.DefaultGenerateOptions()
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&opts); err != nil {
			return apperr.NewValidationWrap("invalid request body", err)
		}
	}
	if err := c.Validate(&opts); err != nil {
		return err
	}

	n, err := r.svc.GenerateTestData(c.Request().Context(), opts)

	r.publish(c, audit.TypeTestDataGenerated, map[string]any{
		"nfseCount":      opts.NfseCount,
		"creditsPerNfse": opts.CreditsPerNfse,
	}, start, n, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, generatedResponse{
		RegistrosGerados: n,
		Mensagem:         fmt.Sprintf("%d test creditos generated across %d NFS-e", n, opts.NfseCount),
	})
}

// deleteTestData godoc
// @Summary Delete test creditos
// @Tags test data
// @Produce json
// @Success 200 {object} deletedResponse
// @Failure 403 {object} map[string]any
// @Router /api/creditos/teste/deletar [delete]
func (r *CreditoRouter) deleteTestData(c echo.Context) error {
	start := time.Now()
	if err := r.requireTestFeatures(); err != nil {
		r.publish(c, audit.TypeTestDataDeleted, nil, start, 0, err)
		return err
	}

	n, err := r.svc.DeleteTestData(c.Request().Context())

	r.publish(c, audit.TypeTestDataDeleted, nil, start, int(n), err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{
		RegistrosDeletados: n,
		Mensagem:           fmt.Sprintf("%d test creditos deleted", n),
	})
}

func (r *CreditoRouter) requireTestFeatures() error {
	if !r.testFeatures {
		return apperr.NewForbidden("test features are disabled")
	}
	return nil
}

// publish records the outcome of a request. Audit failures are logged and never fail the request.
func (r *CreditoRouter) publish(c echo.Context, eventType string, params map[string]any, start time.Time, count int, err error) {
	req := c.Request()
	ev := audit.NewEvent(eventType, req.URL.Path, req.Method).
		WithOutcome(apperr.StatusCode(err), count, time.Since(start), err)
	ev.ClientIP = c.RealIP()
	ev.Params = params

	if perr := r.publisher.Publish(context.WithoutCancel(req.Context()), ev); perr != nil {
		slog.Error("Failed to publish audit event", "eventType", eventType, "error", perr)
	}
}
