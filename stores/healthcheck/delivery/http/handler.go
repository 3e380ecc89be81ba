package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/dasgo/base/ctx"
	hcdomain "github.com/x-xyz/dasgo/domain/healthcheck"
)

// ResponseError represent the reseponse error struct
type ResponseError struct {
	Message string `json:"message"`
	Network string `json:"network"`
}

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
	network     string
}

// New will initialize the healthcheck/ resources, network is reported back
// to the caller
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase, network string) {
	handler := &healthCheckHandler{
		healthCheck: us,
		network:     network,
	}
	g := e.Group("/health")
	g.GET("", handler.check)
}

func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(context); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ResponseError{
			Message: err.Error(),
			Network: h.network,
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"healthy": "ok",
		"network": h.network,
	})
}
