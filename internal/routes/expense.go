package routes

import (
	"net/http"
	"strconv"

	"NestEgg/internal/contracts"
	domaincontracts "NestEgg/internal/domain/contracts"
	"NestEgg/internal/domain/expense"
	appErrors "NestEgg/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListExpenses(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	expenses, err := h.ExpenseService.GetExpenses(ctx, userID, filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

func (h *Handler) CreateExpense(c *gin.Context) {
	var body contracts.ExpenseCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.ExpenseCreateRequest{
		UserId:    userID,
		Name:      body.Name,
		Amount:    body.Amount,
		Type:      body.Type,
		Frequency: body.Frequency,
	}
	if body.Date != "" {
		date, err := parseDate(body.Date)
		if err != nil {
			h.respondError(c, err)
			return
		}
		req.Date = date
	}

	ctx := c.Request.Context()
	entity, err := h.ExpenseService.CreateExpense(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entity)
}

func (h *Handler) GetExpense(c *gin.Context) {
	expenseID, err := h.parseIDParam(c)
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
	entity, err := h.ExpenseService.GetExpenseByID(ctx, expenseID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) UpdateExpense(c *gin.Context) {
	var body contracts.ExpenseUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	expenseID, err := h.parseIDParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.ExpenseUpdateRequest{
		Id:        expenseID,
		UserId:    userID,
		Name:      body.Name,
		Amount:    body.Amount,
		Type:      body.Type,
		Frequency: body.Frequency,
	}
	if body.Date != nil && *body.Date != "" {
		date, err := parseDate(*body.Date)
		if err != nil {
			h.respondError(c, err)
			return
		}
		req.Date = &date
	}

	ctx := c.Request.Context()
	entity, err := h.ExpenseService.UpdateExpense(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) DeleteExpense(c *gin.Context) {
	expenseID, err := h.parseIDParam(c)
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
	if err := h.ExpenseService.DeleteExpense(ctx, expenseID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Expense deleted"})
}

func (h *Handler) GetExpenseSummary(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	summary, err := h.ExpenseService.GetSummary(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) GetExpenseStats(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	stats, err := h.ExpenseService.GetStats(ctx, userID, filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// parseExpenseFilter reads the ?type, ?month and ?year query parameters.
// Absent parameters leave the filter open; month is a month-of-year
// matched in any year unless year is also given.
func parseExpenseFilter(c *gin.Context) (expense.Filter, error) {
	var filter expense.Filter

	if raw := c.Query("type"); raw != "" {
		if !expense.ValidExpenseType(expense.ExpenseType(raw)) {
			return filter, appErrors.NewValidationError("type", "is not a valid expense type")
		}
		filter.Type = expense.ExpenseType(raw)
	}
	if raw := c.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return filter, appErrors.NewValidationError("month", "must be between 1 and 12")
		}
		filter.Month = month
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1 {
			return filter, appErrors.NewValidationError("year", "must be a positive integer")
		}
		filter.Year = year
	}

	return filter, nil
}
