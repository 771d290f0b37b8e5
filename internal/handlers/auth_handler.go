package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/navfer/DamGram-Servidor/dto"
	"github.com/navfer/DamGram-Servidor/internal/apperr"
	"github.com/navfer/DamGram-Servidor/internal/auth"
	"github.com/navfer/DamGram-Servidor/internal/middleware"
	"github.com/navfer/DamGram-Servidor/internal/repository"
)

type AuthHandler struct {
	users  repository.UserRepository
	issuer auth.TokenIssuer
}

func NewAuthHandler(users repository.UserRepository, issuer auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer}
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	// Unknown username and wrong password report the same way.
	u, err := h.users.ByUsername(ctx, req.Username)
	if errors.Is(err, apperr.ErrNotFound) {
		return fail(c, apperr.ErrInvalidCredentials)
	}
	if err != nil {
		return fail(c, err)
	}
	if !auth.CheckPassword(req.Password, u.PasswordHash) {
		return fail(c, apperr.ErrInvalidCredentials)
	}

	token, err := h.issuer.Issue(u.Username)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.TokenResponse{Token: token})
}

// Me returns the principal the middleware validated.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	username, _ := c.Locals(middleware.UsernameKey).(string)
	if username == "" {
		return fail(c, apperr.ErrInvalidToken)
	}
	return c.JSON(fiber.Map{"username": username})
}
