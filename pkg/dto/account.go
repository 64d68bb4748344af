package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountCreate is a DTO for creating a new account.
type AccountCreate struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// AccountUpdate is a DTO for updating the mutable fields of an account.
type AccountUpdate struct {
	Balance decimal.Decimal
}

// AccountRead is a read-optimized DTO for account queries.
type AccountRead struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
