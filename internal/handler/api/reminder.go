package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	cmds commands.ReminderCommands
}

func NewReminderHandler(cmds commands.ReminderCommands) *ReminderHandler {
	return &ReminderHandler{cmds: cmds}
}

// @Summary Send WhatsApp reminders
// @Description Send one reminder per appointment on the given day (default today). An empty body is allowed.
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body reqdto.SendRemindersRequest false "Target date and filter"
// @Success 200 {object} resdto.ReminderResponse
// @Failure 400 {object} httperr.Response
// @Router /reminders/whatsapp [post]
func (h *ReminderHandler) SendWhatsApp(c *gin.Context) {
	var req reqdto.SendRemindersRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	summary, err := h.cmds.SendWhatsAppReminders(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Reminder dispatch failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReminderSummary(summary))
}
