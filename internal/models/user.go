package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account plus its relationship record.
// Skills and interests hold catalog skill ids; matches holds the ids of
// users with whom a mutual match exists, in the order the matches were
// made.
type User struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	Username      string         `json:"username" db:"username"`
	FName         string         `json:"fname" db:"fname"`
	LName         string         `json:"lname" db:"lname"`
	Email         string         `json:"email" db:"email"`
	PasswordHash  string         `json:"-" db:"password_hash"` // Hidden from JSON responses
	Bio           string         `json:"bio" db:"bio"`
	Skills        []uuid.UUID    `json:"skills" db:"skills"`
	Interests     []uuid.UUID    `json:"interests" db:"interests"`
	Matches       []uuid.UUID    `json:"matches" db:"matches"`
	Notifications []Notification `json:"notifications" db:"notifications"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// DisplayName is the "First Last" form used in match summaries.
func (u *User) DisplayName() string {
	return u.FName + " " + u.LName
}

// Notification is an entry in a user's embedded notification list.
type Notification struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
