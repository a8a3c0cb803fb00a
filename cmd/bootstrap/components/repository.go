package components

import (
	domappt "salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/gallery"
	"salon-booking/internal/infra/repository"
	"salon-booking/internal/infra/uow"
	"salon-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

// Repositories are provided as themselves for the unit of work and as
// read stores for the query side.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(fx.Self()),
			fx.As(new(queries.ReadStore[domappt.Appointment])),
		),
		fx.Annotate(
			repository.NewServiceRepository,
			fx.As(fx.Self()),
			fx.As(new(queries.ReadStore[catalog.Service])),
		),
		fx.Annotate(
			repository.NewStylistRepository,
			fx.As(fx.Self()),
			fx.As(new(queries.ReadStore[catalog.Stylist])),
		),
		fx.Annotate(
			repository.NewGalleryRepository,
			fx.As(fx.Self()),
			fx.As(new(queries.ReadStore[gallery.Item])),
		),
		uow.NewDocumentUoW,
	),
)
