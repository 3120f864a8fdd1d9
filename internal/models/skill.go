package models

import "github.com/google/uuid"

// Skill is a catalog entry users can offer or seek. The catalog is
// seeded at bootstrap and read-only from the request path.
type Skill struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}
