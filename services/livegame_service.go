package services

import (
	"sync"
	"time"

	"snake-arena-api/models"

	"github.com/gofiber/fiber/v2"
)

// LiveGameService keeps the registry of spectatable in-progress games.
// The registry is memory-only regardless of storage backend — live games
// are ephemeral and reset on restart.
type LiveGameService struct {
	mu    sync.RWMutex
	games map[string]*models.LiveGame
	order []string
}

func NewLiveGameService() *LiveGameService {
	return &LiveGameService{games: make(map[string]*models.LiveGame)}
}

// NewLiveGameServiceWithDemoGames seeds the registry with the demo games
// from the original arena.
func NewLiveGameServiceWithDemoGames() *LiveGameService {
	s := NewLiveGameService()
	now := time.Now().UTC()
	s.Add(&models.LiveGame{ID: "live1", Username: "NeonViper", Score: 340, Mode: models.ModeWalls, Spectators: 12, StartedAt: now})
	s.Add(&models.LiveGame{ID: "live2", Username: "PixelHunter", Score: 180, Mode: models.ModePassthrough, Spectators: 8, StartedAt: now})
	return s
}

func (s *LiveGameService) Add(game *models.LiveGame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.games[game.ID]; !exists {
		s.order = append(s.order, game.ID)
	}
	copied := *game
	s.games[game.ID] = &copied
}

// Games returns all live games in insertion order.
func (s *LiveGameService) Games() []models.LiveGame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]models.LiveGame, 0, len(s.order))
	for _, id := range s.order {
		games = append(games, *s.games[id])
	}
	return games
}

func (s *LiveGameService) Game(id string) (models.LiveGame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return models.LiveGame{}, false
	}
	return *game, true
}

// Join increments the spectator count, returning the new count.
func (s *LiveGameService) Join(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return 0, false
	}
	game.Spectators++
	return game.Spectators, true
}

// Leave decrements the spectator count, never below zero.
func (s *LiveGameService) Leave(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return 0, false
	}
	if game.Spectators > 0 {
		game.Spectators--
	}
	return game.Spectators, true
}

// Fiber handlers

func (s *LiveGameService) ListGames(c *fiber.Ctx) error {
	return c.JSON(s.Games())
}

func (s *LiveGameService) GetGame(c *fiber.Ctx) error {
	game, ok := s.Game(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Game not found"})
	}
	return c.JSON(game)
}

func (s *LiveGameService) JoinSpectators(c *fiber.Ctx) error {
	spectators, ok := s.Join(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Game not found"})
	}
	return c.JSON(fiber.Map{"message": "Joined successfully", "spectators": spectators})
}

func (s *LiveGameService) LeaveSpectators(c *fiber.Ctx) error {
	spectators, ok := s.Leave(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Game not found"})
	}
	return c.JSON(fiber.Map{"message": "Left successfully", "spectators": spectators})
}
