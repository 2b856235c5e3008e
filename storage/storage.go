// Package storage defines the persistence interface shared by the in-memory
// and Postgres backends. Which backend is used is decided once at startup
// (DATABASE_URL set → postgres, otherwise memory).
package storage

import (
	"context"
	"errors"

	"snake-arena-api/models"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already registered")
)

type Store interface {
	// User operations
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	// Leaderboard operations
	// ListLeaderboard returns entries ordered by score descending.
	// An empty mode means no filter.
	ListLeaderboard(ctx context.Context, mode string) ([]models.LeaderboardEntry, error)
	CreateLeaderboardEntry(ctx context.Context, entry *models.LeaderboardEntry) error
	// CountScoresAbove counts entries with score strictly greater than the
	// given score, across all modes.
	CountScoresAbove(ctx context.Context, score int) (int64, error)
}
