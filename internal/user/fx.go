package user

import (
	"github.com/param211/corpmart/internal/user/repository"
	"github.com/param211/corpmart/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
