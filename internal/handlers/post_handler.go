package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/navfer/DamGram-Servidor/dto"
	"github.com/navfer/DamGram-Servidor/internal/repository"
	"github.com/navfer/DamGram-Servidor/model"
)

type PostHandler struct {
	posts repository.PostRepository
}

func NewPostHandler(posts repository.PostRepository) *PostHandler {
	return &PostHandler{posts: posts}
}

// List godoc
// @Summary List all posts
// @Tags posts
// @Produce json
// @Success 200 {array} dto.PostResponse
// @Router /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c)
	defer cancel()

	posts, err := h.posts.All(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewPostResponses(posts))
}

func (h *PostHandler) GetByID(c *fiber.Ctx) error {
	id, err := dto.ParseID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	p, err := h.posts.ByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewPostResponse(p))
}

func (h *PostHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := dto.ParseID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	posts, err := h.posts.ByAuthor(ctx, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewPostResponses(posts))
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param createPostRequest body dto.CreatePostRequest true "Post"
// @Success 201 {object} dto.PostResponse
// @Router /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	userID, err := dto.ParseID(req.UserID)
	if err != nil {
		return fail(c, err)
	}

	// Author existence is not checked here; a dangling user reference is
	// representable. Comments and likes always start empty.
	p := model.Post{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		Image:     req.Image,
		Info:      req.Info,
		CreatedAt: time.Now(),
		Comments:  []model.Comment{},
		Likes:     []model.Like{},
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	if err := h.posts.Create(ctx, p); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPostResponse(p))
}

// AddComment appends one comment to a post. The body is the comment text
// itself.
func (h *PostHandler) AddComment(c *fiber.Ctx) error {
	postID, err := dto.ParseID(c.Params("postId"))
	if err != nil {
		return fail(c, err)
	}
	userID, err := dto.ParseID(c.Params("userId"))
	if err != nil {
		return fail(c, err)
	}

	text := strings.TrimSpace(string(c.Body()))
	if text == "" {
		return badRequest(c, "comment text is required")
	}

	comment := model.Comment{
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	if err := h.posts.AddComment(ctx, postID, comment); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "comment added"})
}

// AddLike appends a like. Liking the same post twice appends two entries;
// the original never deduplicated and neither does this.
func (h *PostHandler) AddLike(c *fiber.Ctx) error {
	postID, err := dto.ParseID(c.Params("postId"))
	if err != nil {
		return fail(c, err)
	}
	userID, err := dto.ParseID(c.Params("userId"))
	if err != nil {
		return fail(c, err)
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	if err := h.posts.AddLike(ctx, postID, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "like added"})
}
