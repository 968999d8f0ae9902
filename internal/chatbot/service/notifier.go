package service

import (
	"context"

	"github.com/param211/corpmart/internal/chatbot/domain"
	"go.uber.org/zap"
)

// logNotifier writes leads to the application log. It stands in for an SMS
// or WhatsApp gateway behind the Notifier port.
type logNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) domain.Notifier {
	return &logNotifier{log: log.Named("chatbot.notifier")}
}

func (n *logNotifier) Notify(_ context.Context, recipient domain.ChatbotNotification, lead domain.ChatbotRequest) error {
	n.log.Info("new chatbot lead",
		zap.String("recipient", recipient.Mobile),
		zap.String("lead_name", lead.Name),
		zap.String("lead_mobile", lead.Mobile),
		zap.String("looking_for", lead.LookingFor),
	)
	return nil
}
