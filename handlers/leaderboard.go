package handlers

import (
	"snake-arena-api/middleware"
	"snake-arena-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupLeaderboardRoutes(app *fiber.App, leaderboardService *services.LeaderboardService, sessions *services.SessionStore) {
	app.Get("/leaderboard", leaderboardService.GetLeaderboard)

	app.Post("/leaderboard",
		middleware.RequireSession(sessions, "Must be logged in to submit score"),
		leaderboardService.SubmitScore)
}
