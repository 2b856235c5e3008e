package models

import "time"

// LiveGame is an in-progress, spectatable match. Live games are held in
// memory only and are lost on restart. The score is a snapshot — only the
// spectator count changes after creation.
type LiveGame struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Score      int       `json:"score"`
	Mode       string    `json:"mode"`
	Spectators int       `json:"spectators"`
	StartedAt  time.Time `json:"startedAt"`
}
