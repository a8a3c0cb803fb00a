package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgArrayRequired = "body must be a JSON array"

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List services
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Service
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.q.ListServices(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// @Summary Replace services
// @Description Replace the whole service list
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body []reqdto.ServiceRequest true "Services"
// @Success 200 {array} catalog.Service
// @Failure 400 {object} httperr.Response
// @Router /services [post]
func (h *CatalogHandler) ReplaceServices(c *gin.Context) {
	var req []reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgArrayRequired, nil)
		return
	}

	services, err := h.cmds.ReplaceServices(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to save services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// @Summary List stylists
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Stylist
// @Router /stylists [get]
func (h *CatalogHandler) ListStylists(c *gin.Context) {
	stylists, err := h.q.ListStylists(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load stylists")
		return
	}
	c.JSON(http.StatusOK, stylists)
}

// @Summary Replace stylists
// @Description Replace the whole stylist list
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body []reqdto.StylistRequest true "Stylists"
// @Success 200 {array} catalog.Stylist
// @Failure 400 {object} httperr.Response
// @Router /stylists [post]
func (h *CatalogHandler) ReplaceStylists(c *gin.Context) {
	var req []reqdto.StylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgArrayRequired, nil)
		return
	}

	stylists, err := h.cmds.ReplaceStylists(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to save stylists")
		return
	}
	c.JSON(http.StatusOK, stylists)
}
