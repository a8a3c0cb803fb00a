package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/infra/upload"
	"salon-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Appointments *api.AppointmentHandler
	Catalog      *api.CatalogHandler
	Gallery      *api.GalleryHandler
	Reminders    *api.ReminderHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/ping", api.Ping)
	engine.Static(upload.PublicPath, cfg.Upload.Dir)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		appointments := apiGroup.Group("/appointments")
		addRoutes(appointments, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Appointments.List},
			{Method: http.MethodPost, Path: "", Handler: h.Appointments.Book},
			{Method: http.MethodPost, Path: "/cleanup", Handler: h.Appointments.Cleanup},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Appointments.UpdateStatus},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/services", Handler: h.Catalog.ListServices},
			{Method: http.MethodPost, Path: "/services", Handler: h.Catalog.ReplaceServices},
			{Method: http.MethodGet, Path: "/stylists", Handler: h.Catalog.ListStylists},
			{Method: http.MethodPost, Path: "/stylists", Handler: h.Catalog.ReplaceStylists},
		})

		gallery := apiGroup.Group("/gallery")
		addRoutes(gallery, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Gallery.List},
			{Method: http.MethodPost, Path: "", Handler: h.Gallery.Save},
			{
				Method:  http.MethodPost,
				Path:    "/upload",
				Handler: h.Gallery.Upload,
				Mw:      []gin.HandlerFunc{middleware.LimitBody(cfg.Upload.MaxBytes)},
			},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/reminders/whatsapp", Handler: h.Reminders.SendWhatsApp},
		})
	}
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// addRoutes registers each route with its own middleware ahead of the handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
