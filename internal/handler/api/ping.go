package api

import (
	"net/http"

	resdto "salon-booking/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} resdto.PingResponse
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.PingResponse{OK: true, Message: "pong"})
}
