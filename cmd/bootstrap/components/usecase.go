package components

import (
	"log/slog"
	"time"

	domappt "salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/phone"
	"salon-booking/internal/infra/upload"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *phone.Normalizer {
		return phone.NewNormalizer(cfg.Booking.PhoneCountryCode)
	},
	func(cfg config.Config, n *phone.Normalizer) domappt.Book {
		return domappt.Book{
			Capacity:  cfg.Booking.SlotCapacity,
			Normalize: n.Normalize,
		}
	},
	fx.Annotate(
		func(cfg config.Config, logger *slog.Logger) *upload.LocalStorage {
			return upload.NewLocalStorage(cfg.Upload.Dir, cfg.Server.PublicBaseURL, logger)
		},
		fx.As(new(commands.UploadStorage)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAppointmentCommands,
		commands.NewCatalogCommands,
		func(
			uow shared.UnitOfWork,
			sender commands.MessageSender,
			n *phone.Normalizer,
			clk clock.Clock,
			loc *time.Location,
			logger *slog.Logger,
		) commands.ReminderCommands {
			return commands.NewReminderCommands(uow, sender, n.Normalize, clk, loc, logger)
		},
		func(
			uow shared.UnitOfWork,
			uploads commands.UploadStorage,
			cfg config.Config,
			clk clock.Clock,
			logger *slog.Logger,
		) commands.GalleryCommands {
			return commands.NewGalleryCommands(uow, uploads, cfg.Upload.MaxBytes, clk, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAppointmentQueries,
		queries.NewCatalogQueries,
		queries.NewGalleryQueries,
	),
)
