package usecase

import (
	"time"

	"github.com/viney-shih/goroutines"
	bCtx "github.com/x-xyz/dasgo/base/ctx"
	"github.com/x-xyz/dasgo/base/goroutine"
	"github.com/x-xyz/dasgo/base/log"
	"github.com/x-xyz/dasgo/base/metrics"
	"github.com/x-xyz/dasgo/domain/das"
	"github.com/x-xyz/dasgo/service/resolver"
)

const (
	DefaultProbeTimeout = 5 * time.Second

	defaultProbeWorkers = 4
)

// Probe reports whether the usecase bound to an endpoint can reach it
type Probe func(ctx bCtx.Ctx, uc das.Usecase) error

// PingProbe asks the indexer for its server info
func PingProbe(ctx bCtx.Ctx, uc das.Usecase) error {
	return uc.Resolver().Ping(ctx)
}

type AutonetworkCfg struct {
	// UsecaseCfg is applied to every endpoint. Resolver, Network and Url are
	// ignored.
	UsecaseCfg
	// Endpoints in priority order, defaults to das.Endpoints()
	Endpoints    []das.Endpoint
	ProbeTimeout time.Duration
	Probe        Probe
	Workers      int
}

// Autonetwork returns a usecase bound to the first reachable endpoint in
// priority order. Every endpoint is probed at once.
func Autonetwork(c bCtx.Ctx, cfg *AutonetworkCfg) (das.Usecase, error) {
	endpoints := cfg.Endpoints
	if len(endpoints) == 0 {
		endpoints = das.Endpoints()
	}
	probe := cfg.Probe
	if probe == nil {
		probe = PingProbe
	}
	timeout := cfg.ProbeTimeout
	if timeout == 0 {
		timeout = DefaultProbeTimeout
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultProbeWorkers
	}

	candidates := make([]Candidate, 0, len(endpoints))
	for _, e := range endpoints {
		ucCfg := cfg.UsecaseCfg
		ucCfg.Resolver = nil
		ucCfg.Network = e.Name
		ucCfg.Url = e.Url
		uc, err := New(&ucCfg)
		if err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"network": e.Name,
				"url":     e.Url,
			}).Error("usecase.New failed")
			return nil, err
		}
		candidates = append(candidates, Candidate{
			Endpoint: e,
			Probe: func(ctx bCtx.Ctx) error {
				return probe(ctx, uc)
			},
			usecase: uc,
		})
	}

	met := cfg.Metrics
	if met == nil {
		met = metrics.New("autonetwork")
	}

	idx, err := SelectEndpoint(c, candidates, timeout, workers, WithProbeMetrics(met))
	if err != nil {
		return nil, err
	}

	c.WithFields(log.Fields{
		"network": candidates[idx].Endpoint.Name,
		"url":     candidates[idx].Endpoint.Url,
	}).Info("network selected")
	return candidates[idx].usecase, nil
}

// Candidate is an endpoint with the probe deciding whether it is reachable
type Candidate struct {
	Endpoint das.Endpoint
	Probe    func(ctx bCtx.Ctx) error

	usecase das.Usecase
}

type selectOptions struct {
	metrics metrics.Service
}

// SelectOption is functional parameter for SelectEndpoint
type SelectOption func(*selectOptions)

// WithProbeMetrics records probe.latency and probe.panic per network
func WithProbeMetrics(met metrics.Service) SelectOption {
	return func(o *selectOptions) {
		o.metrics = met
	}
}

// SelectEndpoint runs every probe concurrently, each bounded by timeout, and
// returns the index of the first candidate whose probe succeeded. Probes still
// running are canceled on return.
func SelectEndpoint(c bCtx.Ctx, candidates []Candidate, timeout time.Duration, workers int, options ...SelectOption) (int, error) {
	if workers <= 0 {
		workers = defaultProbeWorkers
	}
	o := selectOptions{}
	for _, option := range options {
		option(&o)
	}
	pool := goroutines.NewPool(workers)
	defer pool.Release()

	ctx, cancel := bCtx.WithCancel(c)
	defer cancel()

	results := make([]chan error, len(candidates))
	for i := range candidates {
		results[i] = make(chan error, 1)
		cand, resCh := candidates[i], results[i]
		if err := pool.Schedule(func() {
			probeCtx, probeCancel := bCtx.WithTimeout(ctx, timeout)
			defer probeCancel()
			resCh <- runProbe(probeCtx, cand, o.metrics)
		}); err != nil {
			resCh <- err
		}
	}

	causes := make([]das.ProbeFailure, 0, len(candidates))
	for i, cand := range candidates {
		var err error
		select {
		case err = <-results[i]:
		case <-c.Done():
			return -1, c.Err()
		}
		if err == nil {
			return i, nil
		}
		c.WithFields(log.Fields{
			"err":     err,
			"network": cand.Endpoint.Name,
			"url":     cand.Endpoint.Url,
		}).Warn("network unreachable")
		causes = append(causes, das.ProbeFailure{Network: cand.Endpoint.Name, Err: err})
	}

	return -1, &das.ConfigurationError{
		Code:   das.UnreachableNetwork,
		Method: resolver.ServiceName,
		Causes: causes,
	}
}

// runProbe gives up once the probe context is done, even if the probe itself
// does not watch it. A panicking probe counts as a failed one.
func runProbe(ctx bCtx.Ctx, cand Candidate, met metrics.Service) error {
	opts := []goroutine.RecoverableGoOptionsFunc{goroutine.WithLogger(ctx.Logger)}
	if met != nil {
		var start time.Time
		opts = append(opts,
			goroutine.WithBeforeStart(func() {
				start = time.Now()
			}),
			goroutine.WithAfterEnded(func() {
				met.BumpHistogram("probe.latency", float64(time.Since(start).Milliseconds()), "network", cand.Endpoint.Name)
			}),
			goroutine.WithAfterRecovered(func(p interface{}, stack []byte) {
				met.BumpSum("probe.panic", 1, "network", cand.Endpoint.Name)
			}),
		)
	}

	done := make(chan error, 1)
	panicked := goroutine.RecoverableGo(func() {
		done <- cand.Probe(ctx)
	}, opts...)
	select {
	case err := <-done:
		return err
	case p, ok := <-panicked:
		if ok {
			return p
		}
		return <-done
	case <-ctx.Done():
		return ctx.Err()
	}
}
