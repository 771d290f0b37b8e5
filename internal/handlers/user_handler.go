package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/navfer/DamGram-Servidor/dto"
	"github.com/navfer/DamGram-Servidor/internal/apperr"
	"github.com/navfer/DamGram-Servidor/internal/auth"
	"github.com/navfer/DamGram-Servidor/internal/repository"
	"github.com/navfer/DamGram-Servidor/model"
)

const storeTimeout = 5 * time.Second

type UserHandler struct {
	users repository.UserRepository
}

func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

func storeCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), storeTimeout)
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Router / [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c)
	defer cancel()

	users, err := h.users.All(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewUserResponses(users))
}

// GetByID godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := dto.ParseID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	u, err := h.users.ByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewUserResponse(u))
}

func (h *UserHandler) GetByUsername(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return badRequest(c, "username is required")
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	u, err := h.users.ByUsername(ctx, username)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewUserResponse(u))
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body dto.RegisterRequest true "Register"
// @Success 201 {object} dto.UserResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	// Check-then-insert: uniqueness is not enforced by the store, so two
	// concurrent registrations of the same username can both pass this
	// check. Known limitation.
	_, err := h.users.ByUsername(ctx, req.Username)
	if err == nil {
		return fail(c, apperr.ErrConflict)
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return fail(c, err)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return fail(c, err)
	}

	u := model.User{
		ID:           bson.NewObjectID(),
		Username:     req.Username,
		PasswordHash: hashed,
		Avatar:       req.Avatar,
	}
	if err := h.users.Create(ctx, u); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(u))
}
