package handlers

import (
	"snake-arena-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupLiveGameRoutes(app *fiber.App, liveGameService *services.LiveGameService) {
	app.Get("/live-games", liveGameService.ListGames)
	app.Get("/live-games/:id", liveGameService.GetGame)
	app.Post("/live-games/:id/spectate", liveGameService.JoinSpectators)
	app.Delete("/live-games/:id/spectate", liveGameService.LeaveSpectators)
}
