// models/leaderboard.go
package models

const (
	ModeWalls       = "walls"
	ModePassthrough = "passthrough"
)

// ValidMode reports whether mode is one of the supported game modes.
func ValidMode(mode string) bool {
	return mode == ModeWalls || mode == ModePassthrough
}

// LeaderboardEntry is one recorded score submission. Entries are immutable
// once created. Rank is derived at read time (count of strictly greater
// scores + 1, ties share a rank) and never stored.
type LeaderboardEntry struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Rank     int    `json:"rank" gorm:"-"`
	Username string `json:"username" gorm:"index;not null"`
	Score    int    `json:"score" gorm:"index"`
	Mode     string `json:"mode" gorm:"type:varchar(16);index"`
	Date     string `json:"date"` // YYYY-MM-DD at submission
}
