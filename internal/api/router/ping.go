package router

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type pingResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// BindPing registers GET /api/ping
func BindPing(e *echo.Echo) {
	e.GET("/api/ping", ping)
}

// ping godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} pingResponse
// @Router /api/ping [get]
func ping(c echo.Context) error {
	return c.JSON(http.StatusOK, pingResponse{Status: "ok", Timestamp: time.Now().UTC()})
}
