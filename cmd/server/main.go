package main

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/shivamvijaywargi/auth-service/config"
	"github.com/shivamvijaywargi/auth-service/db"
	"github.com/shivamvijaywargi/auth-service/internal/auth/handler"
	repo "github.com/shivamvijaywargi/auth-service/internal/auth/repository/postgres"
	"github.com/shivamvijaywargi/auth-service/internal/auth/service"
)

func main() {
	cfg := config.Load()

	if err := db.Migrate(cfg.DBURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiryMin)
	userService := service.NewUserService(userRepo)
	authHandler := handler.NewAuthHandler(userService, tokenService, cfg.CookieExpiryDays)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowCredentials: true,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "Hello from backend"})
	})

	handler.RegisterRoutes(app, authHandler)

	log.Printf("App is running at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
