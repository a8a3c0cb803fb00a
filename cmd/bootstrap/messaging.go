package bootstrap

import (
	"log/slog"

	"salon-booking/internal/infra/messaging"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewMessageSender,
	),
)

// NewMessageSender falls back to a sender that reports every message as not
// sent when gateway credentials are missing; the service still starts.
func NewMessageSender(cfg config.Config, logger *slog.Logger) commands.MessageSender {
	if !cfg.WhatsApp.Enabled() {
		logger.Warn("WhatsApp credentials not configured, reminders will not be delivered")
		return messaging.NewNoopSender(logger)
	}
	sender := messaging.NewWhatsAppSender(cfg.WhatsApp)
	logger.Info("WhatsApp sender ready", slog.String("provider", sender.ProviderID()))
	return sender
}
