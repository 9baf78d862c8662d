package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"stockgate/internal/core/apperror"
	"stockgate/internal/core/roles"
	"stockgate/internal/infrastructure/http/v1/dto"
	"stockgate/internal/infrastructure/upstream"
)

// LoginBackend performs the upstream credential check.
type LoginBackend interface {
	Login(ctx context.Context, email, password string) (*upstream.LoginResult, error)
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	backend LoginBackend
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(base *BaseHandler, backend LoginBackend) *AuthHandler {
	return &AuthHandler{BaseHandler: base, backend: backend}
}

// Login forwards credentials to the inventory backend and returns the issued
// token with the resolved store role. Accounts whose role has no warehouse
// mapping are rejected even when the backend accepted the credentials.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.backend.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}

	role, ok := resolveLoginRole(result)
	if !ok {
		h.Error(c, apperror.NewForbidden("account role has no warehouse access").
			WithDetail("role", result.Role).
			WithDetail("subRole", result.SubRole))
		return
	}

	h.OK(c, dto.LoginResponse{
		Token: result.Token,
		Role:  string(role),
		Email: result.Email,
	})
}

func resolveLoginRole(result *upstream.LoginResult) (roles.StoreRole, bool) {
	if result.SubRole != "" {
		if role, ok := roles.FromSubRole(result.SubRole); ok {
			return role, true
		}
		return "", false
	}
	role, err := roles.Parse(result.Role)
	if err != nil {
		return "", false
	}
	return role, true
}
