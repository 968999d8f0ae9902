package migration

import (
	balancesheetdomain "github.com/param211/corpmart/internal/balancesheet/domain"
	businessdomain "github.com/param211/corpmart/internal/business/domain"
	chatbotdomain "github.com/param211/corpmart/internal/chatbot/domain"
	"github.com/param211/corpmart/internal/config"
	contactdomain "github.com/param211/corpmart/internal/contactrequest/domain"
	contentdomain "github.com/param211/corpmart/internal/content/domain"
	userdomain "github.com/param211/corpmart/internal/user/domain"
	viewhistorydomain "github.com/param211/corpmart/internal/viewhistory/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}

		// sqlite and mysql are dev conveniences; AutoMigrate keeps them in
		// sync without dialect-specific migration files.
		return conn.AutoMigrate(
			&businessdomain.Business{},
			&balancesheetdomain.Balancesheet{},
			&contactdomain.ContactRequest{},
			&viewhistorydomain.ViewHistory{},
			&userdomain.User{},
			&userdomain.OneTimePassword{},
			&userdomain.AuthToken{},
			&chatbotdomain.ChatbotRequest{},
			&chatbotdomain.ChatbotNotification{},
			&contentdomain.Blog{},
			&contentdomain.Testimonial{},
		)
	}),
)
