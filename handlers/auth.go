package handlers

import (
	"snake-arena-api/middleware"
	"snake-arena-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, authService *services.AuthService) {
	app.Post("/auth/signup", authService.Signup)
	app.Post("/auth/login", authService.Login)
	app.Post("/auth/logout", authService.Logout)

	app.Get("/auth/me",
		middleware.RequireSession(authService.Sessions, "Not authenticated"),
		authService.Me)
}
