package content

import (
	"github.com/param211/corpmart/internal/content/repository"
	"github.com/param211/corpmart/internal/content/service"
	"go.uber.org/fx"
)

var Module = fx.Module("content.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
