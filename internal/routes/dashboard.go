package routes

import (
	"net/http"
	"strconv"

	appErrors "NestEgg/internal/errors"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the savings and spending overview. Month and year
// are optional and default to the current calendar month.
func (h *Handler) GetDashboard(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var month, year int
	if raw := c.Query("month"); raw != "" {
		month, err = strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			h.respondError(c, appErrors.NewValidationError("month", "must be between 1 and 12"))
			return
		}
	}
	if raw := c.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil || year < 1 {
			h.respondError(c, appErrors.NewValidationError("year", "must be a positive integer"))
			return
		}
	}

	ctx := c.Request.Context()
	overview, err := h.DashboardService.GetOverview(ctx, userID, month, year)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
