package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/victoreder/admin-hublabel-sub000/internal/api/dto"
	"github.com/victoreder/admin-hublabel-sub000/internal/service"
	apperrors "github.com/victoreder/admin-hublabel-sub000/pkg/util/errorutil"
)

// AuthHandler manages operator login.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, expiresAt, operator, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Nome:      operator.Nome,
		Email:     operator.Email,
	}})
}
