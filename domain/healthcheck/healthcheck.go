package healthcheck

import (
	"github.com/x-xyz/dasgo/base/ctx"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingIndexer(context ctx.Ctx) error
}
