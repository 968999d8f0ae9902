package contactrequest

import (
	businessdomain "github.com/param211/corpmart/internal/business/domain"
	"github.com/param211/corpmart/internal/contactrequest/domain"
	"github.com/param211/corpmart/internal/contactrequest/repository"
	"github.com/param211/corpmart/internal/contactrequest/service"
	"go.uber.org/fx"
)

var Module = fx.Module("contactrequest.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(func(s domain.Service) businessdomain.ContactChecker { return s }),
)
