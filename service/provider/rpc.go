package provider

import (
	"encoding/json"
	"net/http"

	"github.com/ethereum/go-ethereum/rpc"
	bCtx "github.com/x-xyz/dasgo/base/ctx"
	"github.com/x-xyz/dasgo/base/log"
	"github.com/x-xyz/dasgo/base/metrics"
	"golang.org/x/xerrors"
)

// RpcClient is the default Provider, speaking JSON-RPC 2.0 over HTTP
type RpcClient struct {
	url     string
	client  *rpc.Client
	cfg     ClientCfg
	metrics metrics.Service
}

// NewClient builds the default JSON-RPC over HTTP provider
func NewClient(cfg *ClientCfg) (*RpcClient, error) {
	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	client, err := rpc.DialHTTPWithClient(cfg.Url, httpClient)
	if err != nil {
		return nil, xerrors.Errorf("failed to dial %s: %w", cfg.Url, err)
	}
	met := cfg.Metrics
	if met == nil {
		met = metrics.New("provider")
	}
	return &RpcClient{
		url:     cfg.Url,
		client:  client,
		cfg:     *cfg,
		metrics: met,
	}, nil
}

func (p *RpcClient) Request(ctx bCtx.Ctx, method string, params ...interface{}) (json.RawMessage, error) {
	defer p.metrics.BumpTime("request.latency", "method", method).End()

	if p.cfg.Timeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	var res json.RawMessage
	if err := p.client.CallContext(ctx, &res, method, params...); err != nil {
		p.metrics.BumpSum("request.err", 1, "method", method)
		ctx.WithFields(log.Fields{
			"err":    err,
			"url":    p.url,
			"method": method,
		}).Error("client.CallContext failed")
		return nil, err
	}
	ctx.WithFields(log.Fields{
		"url":    p.url,
		"method": method,
	}).Debug("indexer responded")
	return res, nil
}

// Url returns the endpoint the provider is bound to
func (p *RpcClient) Url() string {
	return p.url
}

func (p *RpcClient) Close() {
	p.client.Close()
}
