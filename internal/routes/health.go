package routes

import (
	"net/http"

	"NestEgg/internal/contracts"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.HealthResponse{Status: "ok"})
}
