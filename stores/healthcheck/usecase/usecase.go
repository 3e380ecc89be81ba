package usecase

import (
	"github.com/x-xyz/dasgo/base/ctx"
	hcdomain "github.com/x-xyz/dasgo/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	return im.repo.PingIndexer(context)
}
