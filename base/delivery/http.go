package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/dasgo/domain"
	"github.com/x-xyz/dasgo/domain/das"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = ErrorStatus(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

// ErrorStatus maps known errors to their http status, anything else keeps
// fallback
func ErrorStatus(err error, fallback int) int {
	var indexerErr *das.IndexerError
	switch {
	case errors.Is(err, das.ErrUnsupportedService),
		errors.Is(err, das.ErrUnsupportedAccount),
		errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrInvalidCoinType):
		return http.StatusBadRequest
	case errors.Is(err, das.ErrUnregisteredAccount),
		errors.Is(err, das.ErrRecordNotFound),
		errors.Is(err, das.ErrEmptyPayload),
		errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &indexerErr),
		errors.Is(err, das.ErrMalformedPayload):
		return http.StatusBadGateway
	}
	return fallback
}
