package business

import (
	"github.com/param211/corpmart/internal/business/repository"
	"github.com/param211/corpmart/internal/business/service"
	"go.uber.org/fx"
)

var Module = fx.Module("business.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
