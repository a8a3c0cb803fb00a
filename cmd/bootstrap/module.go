package bootstrap

import (
	"salon-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is everything except the HTTP surface; one-shot CLI commands use it alone.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	MessagingModule,
	components.RepositoryModule,
	components.UseCaseModule,
)

var HTTPModule = fx.Options(
	components.HandlerModule,
)
