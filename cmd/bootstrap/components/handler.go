package components

import (
	"salon-booking/internal/handler"
	"salon-booking/internal/handler/api"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentHandler,
		api.NewCatalogHandler,
		api.NewGalleryHandler,
		api.NewReminderHandler,
		func(
			a *api.AppointmentHandler,
			c *api.CatalogHandler,
			g *api.GalleryHandler,
			r *api.ReminderHandler,
		) handler.Handlers {
			return handler.Handlers{Appointments: a, Catalog: c, Gallery: g, Reminders: r}
		},
		func() *gin.Engine {
			return gin.New()
		},
	),
	fx.Invoke(handler.NewRouter),
)
