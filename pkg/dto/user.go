package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to create a new user.
type UserCreate struct {
	ID             uuid.UUID
	Name           string
	NationalID     string
	HashedPassword string
	CreatedAt      time.Time
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	NationalID     string    `json:"national_id"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
