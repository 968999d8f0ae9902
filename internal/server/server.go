package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/param211/corpmart/internal/balancesheet"
	balancesheetdomain "github.com/param211/corpmart/internal/balancesheet/domain"
	"github.com/param211/corpmart/internal/business"
	businessdomain "github.com/param211/corpmart/internal/business/domain"
	"github.com/param211/corpmart/internal/chatbot"
	chatbotdomain "github.com/param211/corpmart/internal/chatbot/domain"
	"github.com/param211/corpmart/internal/config"
	"github.com/param211/corpmart/internal/contactrequest"
	contactdomain "github.com/param211/corpmart/internal/contactrequest/domain"
	"github.com/param211/corpmart/internal/content"
	contentdomain "github.com/param211/corpmart/internal/content/domain"
	"github.com/param211/corpmart/internal/observability"
	obsmiddleware "github.com/param211/corpmart/internal/observability/logger"
	obsmetrics "github.com/param211/corpmart/internal/observability/metrics"
	obstracing "github.com/param211/corpmart/internal/observability/tracing"
	"github.com/param211/corpmart/internal/user"
	userdomain "github.com/param211/corpmart/internal/user/domain"
	"github.com/param211/corpmart/internal/viewhistory"
	viewhistorydomain "github.com/param211/corpmart/internal/viewhistory/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	business.Module,
	balancesheet.Module,
	contactrequest.Module,
	viewhistory.Module,
	user.Module,
	chatbot.Module,
	content.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	db              *gorm.DB
	businessSvc     businessdomain.Service
	balancesheetSvc balancesheetdomain.Service
	contactSvc      contactdomain.Service
	viewHistorySvc  viewhistorydomain.Service
	userSvc         userdomain.Service
	chatbotSvc      chatbotdomain.Service
	contentSvc      contentdomain.Service
}

type ServerParams struct {
	fx.In

	Engine          *gin.Engine
	Config          config.Config
	DB              *gorm.DB
	BusinessSvc     businessdomain.Service
	BalancesheetSvc balancesheetdomain.Service
	ContactSvc      contactdomain.Service
	ViewHistorySvc  viewhistorydomain.Service
	UserSvc         userdomain.Service
	ChatbotSvc      chatbotdomain.Service
	ContentSvc      contentdomain.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:          p.Engine,
		cfg:             p.Config,
		db:              p.DB,
		businessSvc:     p.BusinessSvc,
		balancesheetSvc: p.BalancesheetSvc,
		contactSvc:      p.ContactSvc,
		viewHistorySvc:  p.ViewHistorySvc,
		userSvc:         p.UserSvc,
		chatbotSvc:      p.ChatbotSvc,
		contentSvc:      p.ContentSvc,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")

	// Public catalog surface. Detail accepts an optional token so signed-in
	// buyers get their view recorded and has_contacted resolved.
	api.GET("/businesses", s.ListBusinesses)
	api.GET("/businesses/detail", s.TokenAuthOptional(), s.GetBusinessDetail)
	api.GET("/businesses/max-values", s.GetBusinessMaxValues)
	api.GET("/blogs", s.ListBlogs)
	api.GET("/testimonials", s.ListTestimonials)
	api.POST("/chatbot-requests", s.CreateChatbotRequest)

	auth := api.Group("/auth")
	auth.POST("/signup", s.Signup)
	auth.POST("/otp", s.RequestOTP)
	auth.POST("/otp/verify", s.VerifyOTP)
	auth.GET("/validate", s.TokenAuthRequired(), s.ValidateToken)

	authed := api.Group("")
	authed.Use(s.TokenAuthRequired())
	authed.POST("/businesses", s.SubmitBusiness)
	authed.GET("/user/businesses", s.ListOwnBusinesses)
	authed.POST("/contact-requests", s.CreateContactRequest)
	authed.GET("/contact-requests", s.ListContactRequests)
	authed.GET("/view-history", s.ListViewHistory)
	authed.GET("/balancesheets/:id", s.GetBalancesheet)
	authed.POST("/businesses/:id/balancesheet", s.AttachBalancesheet)

	admin := s.engine.Group("/admin")
	admin.Use(s.TokenAuthRequired(), s.StaffRequired())
	admin.POST("/businesses/:id/verify", s.VerifyBusiness)
}
