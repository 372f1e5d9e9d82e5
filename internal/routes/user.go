package routes

import (
	"net/http"

	"NestEgg/internal/contracts"
	appErrors "NestEgg/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCurrentUser(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.UserService.GetByID(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.UserProfile{
		Id:    entity.Id.String(),
		Name:  entity.Name,
		Email: entity.Email,
	})
}

func (h *Handler) UpdateCurrentUser(c *gin.Context) {
	var body contracts.UserUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.UserService.UpdateName(ctx, userID, body.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.UserProfile{
		Id:    entity.Id.String(),
		Name:  entity.Name,
		Email: entity.Email,
	})
}

func (h *Handler) DeleteCurrentUser(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.Delete(ctx, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Account deleted"})
}
