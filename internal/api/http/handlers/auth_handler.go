package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/acest-fitness/gym-service/internal/api/dto"
	"github.com/acest-fitness/gym-service/internal/auth"
	"github.com/acest-fitness/gym-service/internal/service"
	apperrors "github.com/acest-fitness/gym-service/pkg/util"
)

// AuthHandler exposes login and the protected greeting.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	username, password, ok := req.Credentials()
	if !ok {
		return apperrors.NewUnauthorized("Invalid credentials")
	}

	token, _, err := h.auth.Login(c.UserContext(), username, password, c.IP())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return apperrors.NewUnauthorized("Invalid credentials")
		case errors.Is(err, service.ErrLoginThrottled):
			return apperrors.NewTooManyRequests("too many failed login attempts")
		default:
			return apperrors.NewInternalError(err)
		}
	}

	return c.JSON(dto.LoginResponse{AccessToken: token})
}

// Protected handles GET /protected; AuthMiddleware has already run.
func (h *AuthHandler) Protected(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(dto.MessageResponse{Message: h.auth.Greeting(identity)})
}
