package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-arena-api/models"
)

func TestDemoGamesAreSeeded(t *testing.T) {
	s := NewLiveGameServiceWithDemoGames()

	games := s.Games()
	require.Len(t, games, 2)
	assert.Equal(t, "live1", games[0].ID)
	assert.Equal(t, 12, games[0].Spectators)
	assert.Equal(t, "live2", games[1].ID)
}

func TestGameLookup(t *testing.T) {
	s := NewLiveGameServiceWithDemoGames()

	game, ok := s.Game("live1")
	require.True(t, ok)
	assert.Equal(t, "NeonViper", game.Username)

	_, ok = s.Game("nope")
	assert.False(t, ok)
}

func TestJoinIncrementsSpectators(t *testing.T) {
	s := NewLiveGameServiceWithDemoGames()

	spectators, ok := s.Join("live1")
	require.True(t, ok)
	assert.Equal(t, 13, spectators)

	game, _ := s.Game("live1")
	assert.Equal(t, 13, game.Spectators)
}

func TestLeaveFloorsAtZero(t *testing.T) {
	s := NewLiveGameService()
	s.Add(&models.LiveGame{ID: "g", Username: "u", Mode: models.ModeWalls, Spectators: 1})

	spectators, ok := s.Leave("g")
	require.True(t, ok)
	assert.Equal(t, 0, spectators)

	// Decrement at zero is a no-op
	spectators, ok = s.Leave("g")
	require.True(t, ok)
	assert.Equal(t, 0, spectators)
}

func TestJoinUnknownGame(t *testing.T) {
	s := NewLiveGameService()

	_, ok := s.Join("missing")
	assert.False(t, ok)
	_, ok = s.Leave("missing")
	assert.False(t, ok)
}

func TestSpectatorCountAfterJoinsAndLeaves(t *testing.T) {
	s := NewLiveGameService()
	s.Add(&models.LiveGame{ID: "g", Username: "u", Mode: models.ModeWalls, Spectators: 2})

	// N joins and M leaves should land on max(0, initial + N - M)
	for i := 0; i < 3; i++ {
		s.Join("g")
	}
	for i := 0; i < 7; i++ {
		s.Leave("g")
	}

	game, _ := s.Game("g")
	assert.Equal(t, 0, game.Spectators)
}
