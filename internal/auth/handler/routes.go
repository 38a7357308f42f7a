package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	user := app.Group("/api/v1/user")
	user.Post("/register", h.Register)
	user.Post("/login", h.Login)
	user.Get("/logout", h.Logout)

	user.Get("/me", h.RequireAuth, h.Me)
}
