package chatbot

import (
	"github.com/param211/corpmart/internal/chatbot/repository"
	"github.com/param211/corpmart/internal/chatbot/service"
	"go.uber.org/fx"
)

var Module = fx.Module("chatbot.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewLogNotifier),
	fx.Provide(service.New),
)
