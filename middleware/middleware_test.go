package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/dasgo/base/ctx"
)

type middlewareSuite struct {
	suite.Suite

	m *GoMiddleware
	e *echo.Echo
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(middlewareSuite))
}

func (s *middlewareSuite) SetupTest() {
	s.m = InitMiddleware()
	s.e = echo.New()
}

func (s *middlewareSuite) TestRequestID() {
	h := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	rec := httptest.NewRecorder()
	c := s.e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(s.m.RequestID()(h)(c))
	s.Len(rec.Header().Get(echo.HeaderXRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec = httptest.NewRecorder()
	c = s.e.NewContext(req, rec)
	s.Require().NoError(s.m.RequestID()(h)(c))
	s.Equal("req-1", rec.Header().Get(echo.HeaderXRequestID))
}

func (s *middlewareSuite) TestAddContext() {
	rec := httptest.NewRecorder()
	c := s.e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

	var got interface{}
	h := func(c echo.Context) error {
		got = c.Get("ctx").(ctx.Ctx).Value("requestID")
		return nil
	}
	s.Require().NoError(s.m.AddContext()(h)(c))
	s.Equal("req-1", got)
}

func (s *middlewareSuite) TestResponseLogger() {
	rec := httptest.NewRecorder()
	c := s.e.NewContext(httptest.NewRequest(http.MethodGet, "/das/account/imac.bit", nil), rec)
	c.Set("ctx", ctx.Background())

	h := func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	}
	s.Require().NoError(s.m.ResponseLogger()(h)(c))
	s.Equal(http.StatusTeapot, rec.Code)
}

func (s *middlewareSuite) TestIsSupportedAccount() {
	h := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	tests := []struct {
		account string
		status  int
	}{
		{"imac.bit", http.StatusOK},
		{"imac#sub.bit", http.StatusOK},
		{"imac", http.StatusBadRequest},
		{"imac.eth", http.StatusBadRequest},
	}
	for _, t := range tests {
		rec := httptest.NewRecorder()
		c := s.e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.SetParamNames("account")
		c.SetParamValues(t.account)
		s.Require().NoError(IsSupportedAccount("account")(h)(c))
		s.Equal(t.status, rec.Code, t.account)
	}
}

func (s *middlewareSuite) TestIsValidAddress() {
	h := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	tests := []struct {
		desc    string
		address string
		query   string
		status  int
	}{
		{"eth default", "0x1d643fac9a463c9d544506006a6348c234da485f", "", http.StatusOK},
		{"eth explicit", "0x1d643fac9a463c9d544506006a6348c234da485f", "?coinType=60", http.StatusOK},
		{"eth invalid", "0x000", "", http.StatusBadRequest},
		{"tron", "TPhEgBBVpNZZ4vpeEvh2jMo9WejuTbb5a2", "?coinType=195", http.StatusOK},
		{"bad coin type", "0x1d643fac9a463c9d544506006a6348c234da485f", "?coinType=eth", http.StatusBadRequest},
	}
	for _, t := range tests {
		rec := httptest.NewRecorder()
		c := s.e.NewContext(httptest.NewRequest(http.MethodGet, "/"+t.query, nil), rec)
		c.SetParamNames("address")
		c.SetParamValues(t.address)
		s.Require().NoError(IsValidAddress("address")(h)(c))
		s.Equal(t.status, rec.Code, t.desc)
	}
}
