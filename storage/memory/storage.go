// Package memory is the map-backed Store used when no DATABASE_URL is
// configured. It is seeded with the demo accounts and scores so the API is
// usable out of the box; everything here is lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"snake-arena-api/models"
	"snake-arena-api/storage"
)

type Storage struct {
	mu sync.RWMutex

	usersByName  map[string]*models.User
	usersByEmail map[string]*models.User
	leaderboard  []models.LeaderboardEntry
}

var _ storage.Store = (*Storage)(nil)

func New() *Storage {
	return &Storage{
		usersByName:  make(map[string]*models.User),
		usersByEmail: make(map[string]*models.User),
	}
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.usersByName[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.usersByName[user.Username]; exists {
		return storage.ErrUsernameTaken
	}
	if _, exists := s.usersByEmail[user.Email]; exists {
		return storage.ErrEmailTaken
	}
	copied := *user
	s.usersByName[user.Username] = &copied
	s.usersByEmail[user.Email] = &copied
	return nil
}

func (s *Storage) ListLeaderboard(ctx context.Context, mode string) ([]models.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]models.LeaderboardEntry, 0, len(s.leaderboard))
	for _, e := range s.leaderboard {
		if mode == "" || e.Mode == mode {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries, nil
}

func (s *Storage) CreateLeaderboardEntry(ctx context.Context, entry *models.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaderboard = append(s.leaderboard, *entry)
	return nil
}

func (s *Storage) CountScoresAbove(ctx context.Context, score int) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for _, e := range s.leaderboard {
		if e.Score > score {
			count++
		}
	}
	return count, nil
}

// SeedDemoData loads the demo accounts and scores from the original arena.
// passwordHash is the bcrypt hash shared by the demo accounts.
func (s *Storage) SeedDemoData(passwordHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	demoUsers := []*models.User{
		{ID: "1", Username: "player1", Email: "player1@snake.io", Password: passwordHash, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Username: "NeonViper", Email: "neon@snake.io", Password: passwordHash, CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, u := range demoUsers {
		s.usersByName[u.Username] = u
		s.usersByEmail[u.Email] = u
	}

	s.leaderboard = append(s.leaderboard,
		models.LeaderboardEntry{ID: "1", Username: "NeonViper", Score: 2450, Mode: models.ModeWalls, Date: "2024-01-10"},
		models.LeaderboardEntry{ID: "2", Username: "PixelHunter", Score: 2100, Mode: models.ModeWalls, Date: "2024-01-09"},
		models.LeaderboardEntry{ID: "3", Username: "RetroGamer", Score: 1890, Mode: models.ModePassthrough, Date: "2024-01-08"},
	)
}
