package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"salon-booking/internal/domain/appointment"
	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary List appointments
// @Description Every stored appointment in booking order
// @Tags appointments
// @Produce json
// @Success 200 {array} resdto.AppointmentResponse
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load appointments")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointments(items))
}

// @Summary Book appointment
// @Description Create an appointment, or replace the one with the same id. At most two active bookings share a slot.
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} resdto.AppointmentResponse "created"
// @Success 200 {object} resdto.AppointmentResponse "replaced"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Book(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Booking failed")
		return
	}

	status := http.StatusOK
	if result.Created() {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromAppointment(result.Appointment))
}

// @Summary Update appointment status
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentStatusRequest true "New status"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// non-numeric ids can never match a stored record
		httperr.AbortWithError(c, http.StatusNotFound, errs.Mark(err, errs.ErrNotFound), appointment.ErrNotFound.Error(), nil)
		return
	}

	// an empty body leaves status blank; the usecase checks the id first
	var req reqdto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, appointment.ErrInvalidStatus.Error(), nil)
		return
	}

	updated, err := h.cmds.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Status update failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(*updated))
}

// @Summary Remove past appointments
// @Description Permanently delete appointments dated strictly before the cutoff day
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CleanupAppointmentsRequest true "Cutoff"
// @Success 200 {object} resdto.CleanupResponse
// @Failure 400 {object} httperr.Response
// @Router /appointments/cleanup [post]
func (h *AppointmentHandler) Cleanup(c *gin.Context) {
	var req reqdto.CleanupAppointmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "before is required", nil)
		return
	}

	result, err := h.cmds.Cleanup(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Cleanup failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCleanupResult(result))
}
