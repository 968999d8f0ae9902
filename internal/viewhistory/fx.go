package viewhistory

import (
	businessdomain "github.com/param211/corpmart/internal/business/domain"
	"github.com/param211/corpmart/internal/viewhistory/domain"
	"github.com/param211/corpmart/internal/viewhistory/repository"
	"github.com/param211/corpmart/internal/viewhistory/service"
	"go.uber.org/fx"
)

var Module = fx.Module("viewhistory.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(func(s domain.Service) businessdomain.ViewRecorder { return s }),
)
