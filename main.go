package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"snake-arena-api/handlers"
	"snake-arena-api/services"
	"snake-arena-api/storage"
	"snake-arena-api/storage/memory"
	"snake-arena-api/storage/postgres"
	"snake-arena-api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New()

	// Load allowed origins from environment variable
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:5173")
		allowedOriginsEnv = "http://localhost:5173"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Session-Token",
		ExposeHeaders:    "Content-Length, Content-Type, X-Session-Token",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Storage backend: Postgres when DATABASE_URL is set, otherwise the
	// seeded in-memory store.
	var store storage.Store
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pg, err := postgres.Open(dsn)
		if err != nil {
			log.Fatal("failed to connect to database:", err)
		}
		store = pg
		log.Println("✅ Storage backend: postgres")
	} else {
		mem := memory.New()
		demoHash, err := utils.HashPassword("password123")
		if err != nil {
			log.Fatal("failed to hash demo password:", err)
		}
		mem.SeedDemoData(demoHash)
		store = mem
		log.Println("⚠️  DATABASE_URL not set — using in-memory storage with demo data")
	}

	sessions := services.NewSessionStore(services.DefaultSessionTTL)
	authService := services.NewAuthService(store, sessions)
	leaderboardService := services.NewLeaderboardService(store)
	liveGameService := services.NewLiveGameServiceWithDemoGames()

	authService.StartSessionSweeper(1 * time.Minute)

	handlers.SetupAuthRoutes(app, authService)
	handlers.SetupLeaderboardRoutes(app, leaderboardService, sessions)
	handlers.SetupLiveGameRoutes(app, liveGameService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to Playful Snake Arena API"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Session sweeper running (every 1m)")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
