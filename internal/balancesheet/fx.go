package balancesheet

import (
	"github.com/param211/corpmart/internal/balancesheet/domain"
	"github.com/param211/corpmart/internal/balancesheet/repository"
	"github.com/param211/corpmart/internal/balancesheet/service"
	businessdomain "github.com/param211/corpmart/internal/business/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("balancesheet.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(func(s domain.Service) businessdomain.DocumentLookup { return s }),
)
