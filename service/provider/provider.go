package provider

import (
	"encoding/json"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/dasgo/base/ctx"
	"github.com/x-xyz/dasgo/base/metrics"
)

// Provider sends a JSON-RPC request to the indexer and returns its result
// undecoded. Network and protocol failures are returned as errors.
type Provider interface {
	Request(ctx bCtx.Ctx, method string, params ...interface{}) (json.RawMessage, error)
}

// Func adapts a function to a Provider
type Func func(ctx bCtx.Ctx, method string, params ...interface{}) (json.RawMessage, error)

func (f Func) Request(ctx bCtx.Ctx, method string, params ...interface{}) (json.RawMessage, error) {
	return f(ctx, method, params...)
}

type ClientCfg struct {
	Url        string
	HttpClient *http.Client
	// Timeout bounds every request, 0 means the caller's context only
	Timeout time.Duration
	Metrics metrics.Service
}
