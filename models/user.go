package models

import "time"

type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`

	// bcrypt hash — never serialized
	Password string `json:"-" gorm:"not null"`

	CreatedAt time.Time `json:"createdAt"`
}
