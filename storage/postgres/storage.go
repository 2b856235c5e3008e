// Package postgres is the GORM-backed Store used when DATABASE_URL is set.
package postgres

import (
	"context"
	"errors"

	"snake-arena-api/models"
	"snake-arena-api/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Storage struct {
	DB *gorm.DB
}

var _ storage.Store = (*Storage)(nil)

// Open connects to the database and migrates the persistent tables.
func Open(dsn string) (*Storage, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.LeaderboardEntry{},
	); err != nil {
		return nil, err
	}
	return &Storage{DB: db}, nil
}

func New(db *gorm.DB) *Storage {
	return &Storage{DB: db}
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	// Pre-check for a friendly conflict error; the unique indexes still
	// back this up at the database level.
	var existing models.User
	err := s.DB.WithContext(ctx).Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return storage.ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	err = s.DB.WithContext(ctx).Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return storage.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.DB.WithContext(ctx).Create(user).Error
}

func (s *Storage) ListLeaderboard(ctx context.Context, mode string) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	db := s.DB.WithContext(ctx).Model(&models.LeaderboardEntry{})
	if mode != "" {
		db = db.Where("mode = ?", mode)
	}
	if err := db.Order("score DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Storage) CreateLeaderboardEntry(ctx context.Context, entry *models.LeaderboardEntry) error {
	return s.DB.WithContext(ctx).Create(entry).Error
}

func (s *Storage) CountScoresAbove(ctx context.Context, score int) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&models.LeaderboardEntry{}).
		Where("score > ?", score).
		Count(&count).Error
	return count, err
}
