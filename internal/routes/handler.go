package routes

import (
	"time"

	"NestEgg/internal/domain/auth"
	"NestEgg/internal/domain/dashboard"
	"NestEgg/internal/domain/expense"
	"NestEgg/internal/domain/goal"
	"NestEgg/internal/domain/user"
	appErrors "NestEgg/internal/errors"
	"NestEgg/internal/logger"
	"NestEgg/internal/middleware"
	"NestEgg/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	UserService      *user.Service
	AuthService      *auth.Service
	JwtService       *middleware.JwtService
	GoalService      *goal.Service
	ExpenseService   *expense.Service
	DashboardService *dashboard.Service
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (ulid.ULID, error) {
	userIDStr, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(userIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

// respondError writes the {error, details?} body clients expect and logs the
// machine code; after calling it a handler must return immediately.
func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)

	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")

	payload := gin.H{"error": appErr.Message}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}

func (h *Handler) parseIDParam(c *gin.Context) (ulid.ULID, error) {
	id := c.Param("id")
	if id == "" {
		return ulid.ULID{}, appErrors.NewValidationError("id", "is required")
	}
	parsed, err := pkg.ParseULID(id)
	if err != nil {
		return ulid.ULID{}, appErrors.NewValidationError("id", "has an invalid format")
	}
	return parsed, nil
}

// parseDate accepts the date-only layout the web client sends, falling back
// to RFC 3339.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, appErrors.NewValidationError("date", "must be a valid date (YYYY-MM-DD or RFC 3339)")
	}
	return t, nil
}
