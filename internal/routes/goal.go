package routes

import (
	"net/http"
	"strconv"

	"NestEgg/internal/contracts"
	domaincontracts "NestEgg/internal/domain/contracts"
	appErrors "NestEgg/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListGoals(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	goals, err := h.GoalService.GetGoalsByUserID(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

func (h *Handler) CreateGoal(c *gin.Context) {
	var body contracts.GoalCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.GoalCreateRequest{
		UserId:              userID,
		Name:                body.Name,
		Type:                body.Type,
		TargetAmount:        body.TargetAmount,
		AnnualContribution:  body.AnnualContribution,
		MonthlyContribution: body.MonthlyContribution,
	}
	if body.TargetDate != "" {
		targetDate, err := parseDate(body.TargetDate)
		if err != nil {
			h.respondError(c, err)
			return
		}
		req.TargetDate = &targetDate
	}

	ctx := c.Request.Context()
	entity, err := h.GoalService.CreateGoal(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entity)
}

func (h *Handler) GetGoal(c *gin.Context) {
	goalID, err := h.parseIDParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.GoalService.GetGoalByID(ctx, goalID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) UpdateGoal(c *gin.Context) {
	var body contracts.GoalUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	goalID, err := h.parseIDParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.GoalUpdateRequest{
		Id:                  goalID,
		UserId:              userID,
		Name:                body.Name,
		Type:                body.Type,
		TargetAmount:        body.TargetAmount,
		CurrentAmount:       body.CurrentAmount,
		AnnualContribution:  body.AnnualContribution,
		MonthlyContribution: body.MonthlyContribution,
	}
	if body.TargetDate != nil && *body.TargetDate != "" {
		targetDate, err := parseDate(*body.TargetDate)
		if err != nil {
			h.respondError(c, err)
			return
		}
		req.TargetDate = &targetDate
	}

	ctx := c.Request.Context()
	entity, err := h.GoalService.UpdateGoal(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	goalID, err := h.parseIDParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.GoalService.DeleteGoal(ctx, goalID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Goal deleted"})
}

func (h *Handler) ContributeToGoal(c *gin.Context) {
	var body contracts.ContributionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	goalID, err := h.parseIDParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.GoalService.AddContribution(ctx, goalID, userID, body.Amount, body.Note)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) GetGoalContributions(c *gin.Context) {
	goalID, err := h.parseIDParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	contributions, err := h.GoalService.GetContributions(ctx, goalID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contributions)
}

// GetGoalProjection runs the projection for a stored goal. Out-of-range
// years and rate are clamped, not rejected.
func (h *Handler) GetGoalProjection(c *gin.Context) {
	goalID, err := h.parseIDParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	years, err := strconv.Atoi(c.DefaultQuery("years", "5"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("years", "must be an integer"))
		return
	}
	rate, err := strconv.ParseFloat(c.DefaultQuery("rate", "5"), 64)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("rate", "must be a number"))
		return
	}

	ctx := c.Request.Context()
	projection, err := h.GoalService.ProjectBalance(ctx, goalID, userID, years, rate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projection)
}
