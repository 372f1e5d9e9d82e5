package routes

import (
	"net/http"

	"NestEgg/internal/contracts"
	"NestEgg/internal/domain/auth"
	"NestEgg/internal/domain/user"
	appErrors "NestEgg/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Registration(c *gin.Context) {
	var body contracts.RegisterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.AuthService.Register(ctx, body.Name, body.Email, body.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(entity.Id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse(entity, token))
}

func (h *Handler) Authenticate(c *gin.Context) {
	var body contracts.LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.AuthService.Login(ctx, auth.Credentials{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(entity.Id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse(entity, token))
}

func authResponse(entity *user.User, token string) contracts.AuthResponse {
	return contracts.AuthResponse{
		User: contracts.UserProfile{
			Id:    entity.Id.String(),
			Name:  entity.Name,
			Email: entity.Email,
		},
		Token: token,
	}
}
