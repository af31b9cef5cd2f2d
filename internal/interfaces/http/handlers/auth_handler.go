package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"club-site.backend/internal/domain/entities"
	domainerrors "club-site.backend/internal/domain/errors"
	"club-site.backend/internal/interfaces/http/middleware"
	"club-site.backend/internal/interfaces/http/response"
	"club-site.backend/internal/usecases"
)

type authService interface {
	Login(ctx context.Context, input entities.LoginInput) (*entities.AuthResponse, error)
}

type AuthHandler struct {
	service authService
}

func NewAuthHandler(service *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login exchanges the admin credentials for a bearer token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if !bindInput(c, &input) {
		return
	}
	result, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Me returns the identity of the current token.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.GetAdmin(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized(usecases.MsgNotAuthorized))
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": identity})
}
