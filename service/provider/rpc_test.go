package provider

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/dasgo/base/ctx"
)

type rpcRequest struct {
	Version string            `json:"jsonrpc"`
	Id      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

type rpcSuite struct {
	suite.Suite

	server   *httptest.Server
	mu       sync.Mutex
	requests []rpcRequest
	delay    time.Duration
}

func TestRpcSuite(t *testing.T) {
	suite.Run(t, new(rpcSuite))
}

func (s *rpcSuite) SetupTest() {
	s.requests = nil
	s.delay = 0
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := ioutil.ReadAll(r.Body)
		req := rpcRequest{}
		if err := json.Unmarshal(body, &req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.requests = append(s.requests, req)
		delay := s.delay
		s.mu.Unlock()
		time.Sleep(delay)

		w.Header().Set("Content-Type", "application/json")
		switch req.Method {
		case "das_accountInfo":
			w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.Id) + `,"result":{"errno":0,"errmsg":"","data":{"account_info":{"account":"imac.bit"}}}}`))
		default:
			w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.Id) + `,"error":{"code":-32601,"message":"method not found"}}`))
		}
	}))
}

func (s *rpcSuite) TearDownTest() {
	s.server.Close()
}

func (s *rpcSuite) TestRequest() {
	p, err := NewClient(&ClientCfg{Url: s.server.URL, Timeout: time.Second})
	s.Require().NoError(err)
	defer p.Close()

	res, err := p.Request(bCtx.Background(), "das_accountInfo", map[string]string{"account": "imac.bit"})
	s.Require().NoError(err)
	s.JSONEq(`{"errno":0,"errmsg":"","data":{"account_info":{"account":"imac.bit"}}}`, string(res))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().Len(s.requests, 1)
	s.Equal("2.0", s.requests[0].Version)
	s.Require().Len(s.requests[0].Params, 1)
	s.JSONEq(`{"account":"imac.bit"}`, string(s.requests[0].Params[0]))
	s.Equal(s.server.URL, p.Url())
}

func (s *rpcSuite) TestRequestError() {
	p, err := NewClient(&ClientCfg{Url: s.server.URL})
	s.Require().NoError(err)
	defer p.Close()

	_, err = p.Request(bCtx.Background(), "das_unknown")
	s.Error(err)
}

func (s *rpcSuite) TestRequestTimeout() {
	s.mu.Lock()
	s.delay = 200 * time.Millisecond
	s.mu.Unlock()
	p, err := NewClient(&ClientCfg{Url: s.server.URL, Timeout: 20 * time.Millisecond})
	s.Require().NoError(err)
	defer p.Close()

	_, err = p.Request(bCtx.Background(), "das_accountInfo", map[string]string{"account": "imac.bit"})
	s.Error(err)
}

func (s *rpcSuite) TestFunc() {
	var p Provider = Func(func(ctx bCtx.Ctx, method string, params ...interface{}) (json.RawMessage, error) {
		return json.RawMessage(`"` + method + `"`), nil
	})
	res, err := p.Request(bCtx.Background(), "das_serverInfo")
	s.NoError(err)
	s.Equal(`"das_serverInfo"`, string(res))
}
