package services

import (
	"time"

	"snake-arena-api/models"
	"snake-arena-api/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LeaderboardService struct {
	Store storage.Store
}

func NewLeaderboardService(store storage.Store) *LeaderboardService {
	return &LeaderboardService{Store: store}
}

// rankEntries assigns ranks to a score-descending list. Rank is the count of
// strictly greater scores + 1, so tied scores share a rank.
func rankEntries(entries []models.LeaderboardEntry) {
	for i := range entries {
		if i > 0 && entries[i].Score == entries[i-1].Score {
			entries[i].Rank = entries[i-1].Rank
		} else {
			entries[i].Rank = i + 1
		}
	}
}

// GetLeaderboard lists entries ordered by score descending, optionally
// filtered by mode. Ranks are computed against the full board (all modes),
// matching the rank reported at submission time.
func (s *LeaderboardService) GetLeaderboard(c *fiber.Ctx) error {
	mode := c.Query("mode")
	if mode != "" && !models.ValidMode(mode) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid game mode"})
	}

	entries, err := s.Store.ListLeaderboard(c.Context(), "")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to load leaderboard"})
	}
	rankEntries(entries)

	if mode == "" {
		return c.JSON(entries)
	}
	filtered := make([]models.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if e.Mode == mode {
			filtered = append(filtered, e)
		}
	}
	return c.JSON(filtered)
}

// SubmitScore records a score for the logged-in user and returns the new
// entry with its rank at insertion time.
func (s *LeaderboardService) SubmitScore(c *fiber.Ctx) error {
	session := c.Locals("session").(*Session)

	var req models.ScoreSubmission
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if !models.ValidMode(req.Mode) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid game mode"})
	}
	if req.Score < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Score must be non-negative"})
	}

	entry := &models.LeaderboardEntry{
		ID:       uuid.NewString(),
		Username: session.Username,
		Score:    req.Score,
		Mode:     req.Mode,
		Date:     time.Now().Format("2006-01-02"),
	}
	if err := s.Store.CreateLeaderboardEntry(c.Context(), entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to save score"})
	}

	// Own score is not strictly greater than itself, so counting after the
	// insert yields the same rank as counting before it.
	greater, err := s.Store.CountScoresAbove(c.Context(), entry.Score)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to compute rank"})
	}
	entry.Rank = int(greater) + 1

	return c.Status(fiber.StatusCreated).JSON(entry)
}
