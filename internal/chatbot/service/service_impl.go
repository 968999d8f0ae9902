package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/param211/corpmart/internal/chatbot/domain"
	"github.com/param211/corpmart/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Config   config.Config
	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Notifier domain.Notifier
}

type Service struct {
	cfg      config.Config
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	notifier domain.Notifier
}

func New(p Params) domain.Service {
	return &Service{
		cfg:      p.Config,
		db:       p.DB,
		log:      p.Log.Named("chatbot.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		notifier: p.Notifier,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	if !s.cfg.ChatbotEnabled {
		return nil, domain.ErrDisabled
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	mobile := strings.TrimSpace(req.Mobile)
	if len(mobile) < 7 || len(mobile) > 15 {
		return nil, domain.ErrInvalidMobile
	}

	lead := &domain.ChatbotRequest{
		ID:          s.genID.Generate().Int64(),
		Name:        name,
		Mobile:      mobile,
		LookingFor:  strings.TrimSpace(req.LookingFor),
		RequestedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, s.db, lead); err != nil {
		return nil, err
	}

	// Fan out after commit. Notification failures are logged, never returned;
	// the lead is already stored.
	recipients, err := s.repo.ListActiveRecipients(ctx, s.db)
	if err != nil {
		s.log.Warn("chatbot recipient lookup failed", zap.Error(err))
	}
	for _, recipient := range recipients {
		if err := s.notifier.Notify(ctx, recipient, *lead); err != nil {
			s.log.Warn("chatbot notification failed",
				zap.String("recipient_mobile", recipient.Mobile),
				zap.Error(err),
			)
		}
	}

	return &domain.Response{
		ID:         snowflake.ID(lead.ID).String(),
		Name:       lead.Name,
		Mobile:     lead.Mobile,
		LookingFor: lead.LookingFor,
	}, nil
}
