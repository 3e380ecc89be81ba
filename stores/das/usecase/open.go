package usecase

import (
	"time"

	bCtx "github.com/x-xyz/dasgo/base/ctx"
	"github.com/x-xyz/dasgo/domain/das"
)

// Open builds the usecase of cfg.Network, probing every known network when it
// is das.NetworkAuto. A configured Url disables probing.
func Open(c bCtx.Ctx, cfg *UsecaseCfg, probeTimeout time.Duration) (das.Usecase, error) {
	if cfg.Network != das.NetworkAuto || cfg.Url != "" || cfg.Resolver != nil {
		ucCfg := *cfg
		if ucCfg.Network == das.NetworkAuto {
			ucCfg.Network = ""
		}
		return New(&ucCfg)
	}

	return Autonetwork(c, &AutonetworkCfg{
		UsecaseCfg:   *cfg,
		ProbeTimeout: probeTimeout,
	})
}
