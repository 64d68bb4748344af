package auth

import (
	"time"

	"github.com/google/uuid"
)

// RegisterInput represents the request body for creating a customer.
type RegisterInput struct {
	Name       string `json:"name" validate:"required,min=3,max=100"`
	NationalID string `json:"national_id" validate:"required,number,len=11"`
	Password   string `json:"password" validate:"required,min=6,max=72"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	AccountID uuid.UUID `json:"account_id"`
}

// LoginInput represents the request body for user authentication.
type LoginInput struct {
	NationalID string `json:"national_id" validate:"required,number,len=11"`
	Password   string `json:"password" validate:"required,max=72"`
}

// LoginResponse is returned with the session cookie.
type LoginResponse struct {
	Name      string    `json:"name"`
	AccountID uuid.UUID `json:"account_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
