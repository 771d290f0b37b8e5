package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/navfer/DamGram-Servidor/configs"
	"github.com/navfer/DamGram-Servidor/database"
	"github.com/navfer/DamGram-Servidor/internal/auth"
	"github.com/navfer/DamGram-Servidor/internal/repository"
	"github.com/navfer/DamGram-Servidor/internal/routes"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	client, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Fatal("mongo: ", err)
	}
	defer func() {
		if err := database.DisconnectMongo(client); err != nil {
			log.Println("mongo disconnect:", err)
		}
	}()
	log.Println("connected to MongoDB")

	db := client.Database(cfg.DBName)

	app := fiber.New()
	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Users: repository.NewMongoUserRepository(db),
		Posts: repository.NewMongoPostRepository(db),
		Issuer: auth.TokenIssuer{
			Secret:   []byte(cfg.JWTSecret),
			Issuer:   cfg.JWTIssuer,
			Audience: cfg.JWTAudience,
			TTL:      cfg.TokenTTL,
		},
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
