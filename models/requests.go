// models/requests.go
package models

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ScoreSubmission struct {
	Score int    `json:"score"`
	Mode  string `json:"mode"`
}
