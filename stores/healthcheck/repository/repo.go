package repository

import (
	"time"

	"github.com/x-xyz/dasgo/base/ctx"
	"github.com/x-xyz/dasgo/domain/das"
	hcdomain "github.com/x-xyz/dasgo/domain/healthcheck"
)

const defaultPingTimeout = 2 * time.Second

type impl struct {
	resolver das.Resolver
	timeout  time.Duration
}

// New creates new HealthCheckRepo pinging the indexer behind resolver
func New(resolver das.Resolver, timeout time.Duration) hcdomain.HealthCheckRepo {
	if timeout == 0 {
		timeout = defaultPingTimeout
	}
	return &impl{
		resolver: resolver,
		timeout:  timeout,
	}
}

func (im *impl) PingIndexer(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, im.timeout)
	defer cancel()
	if err := im.resolver.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping indexer error")
		return err
	}
	return nil
}
