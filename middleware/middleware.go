package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/dasgo/base/ctx"
	"github.com/x-xyz/dasgo/base/delivery"
	"github.com/x-xyz/dasgo/base/log"
	"github.com/x-xyz/dasgo/base/metrics"
	"github.com/x-xyz/dasgo/base/validator"
	"github.com/x-xyz/dasgo/domain/das"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	met metrics.Service
}

// InitMiddleware initialize the middleware
func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{
		met: metrics.New("http"),
	}
}

// CORS will handle the CORS middleware
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		return next(c)
	}
}

// RequestID keeps the caller's request id or generates one
func (m *GoMiddleware) RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			return next(c)
		}
	}
}

// AddContext adds custom context into echo
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			cont := ctx.WithValue(ctx.From(c.Request().Context()), "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer m.met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"host":       req.Host,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
				"referer":    req.Header.Get("Referer"),
				"ip_country": req.Header.Get("Cf-Ipcountry"),
			}

			n := res.Status
			switch {
			case n >= 400:
				fields["nextErr"] = err
			default:
			}

			cont, ok := c.Get("ctx").(ctx.Ctx)
			if !ok {
				cont = ctx.Background()
			}
			cont.WithFields(fields).Info("response")
			return nil
		}
	}
}

// IsSupportedAccount rejects path params which can not be a .bit account
func IsSupportedAccount(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if !das.IsSupportedAccount(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "unsupported account")
			}
			return next(c)
		}
	}
}

// IsValidAddress checks hex addresses only, as owners of other coin types
// use their own encodings. The coin type is read from the coinType query.
func IsValidAddress(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			coinType := das.CoinType(c.QueryParam("coinType"))
			if coinType != "" && !validator.IsValidCoinType(string(coinType)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid coin type")
			}
			if (coinType == "" || coinType == das.CoinTypeETH) && !validator.IsValidAddress(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid address")
			}
			return next(c)
		}
	}
}
