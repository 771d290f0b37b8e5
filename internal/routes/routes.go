package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/navfer/DamGram-Servidor/internal/auth"
	"github.com/navfer/DamGram-Servidor/internal/handlers"
	"github.com/navfer/DamGram-Servidor/internal/middleware"
	"github.com/navfer/DamGram-Servidor/internal/repository"
)

// Deps holds shared dependencies to inject into handlers.
type Deps struct {
	Users  repository.UserRepository
	Posts  repository.PostRepository
	Issuer auth.TokenIssuer
}

// Register mounts all HTTP routes in one place.
func Register(app *fiber.App, d Deps) {
	userHandler := handlers.NewUserHandler(d.Users)
	postHandler := handlers.NewPostHandler(d.Posts)
	authHandler := handlers.NewAuthHandler(d.Users, d.Issuer)
	requireAuth := middleware.RequireAuth(d.Issuer)

	// Users
	app.Get("/", userHandler.List)
	app.Get("/users/:id", userHandler.GetByID)
	app.Get("/users/username/:username", userHandler.GetByUsername)
	app.Post("/users", userHandler.Register)

	// Auth
	app.Post("/auth/login", authHandler.Login)
	app.Get("/auth/me", requireAuth, authHandler.Me)

	// Posts: reads are open, writes need a valid token.
	app.Get("/posts", postHandler.List)
	app.Get("/posts/:id", postHandler.GetByID)
	app.Get("/posts/user/:id", postHandler.ListByUser)
	app.Post("/posts", requireAuth, postHandler.Create)
	app.Post("/posts/:postId/comment/:userId", requireAuth, postHandler.AddComment)
	app.Post("/posts/:postId/like/:userId", requireAuth, postHandler.AddLike)

	// Health check
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
}
