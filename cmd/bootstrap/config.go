package bootstrap

import (
	"log/slog"
	"time"

	"salon-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewSalonLocation,
	),
)

// NewSalonLocation resolves SALON_TIMEZONE; "today" for reminders is taken in it.
func NewSalonLocation(cfg config.Config, logger *slog.Logger) *time.Location {
	if _, err := time.LoadLocation(cfg.Booking.TimeZone); err != nil {
		logger.Warn("Unknown salon timezone, falling back to UTC-3",
			slog.String("timezone", cfg.Booking.TimeZone),
			slog.String("error", err.Error()),
		)
	}
	return cfg.Booking.Location()
}
