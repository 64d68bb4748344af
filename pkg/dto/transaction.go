package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCreate is a DTO for appending a ledger record.
type TransactionCreate struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Kind      string
	Amount    decimal.Decimal // positive magnitude
	CreatedAt time.Time
}

// TransactionRead is a read-optimized DTO for statement queries.
type TransactionRead struct {
	ID        uuid.UUID       `json:"id"`
	AccountID uuid.UUID       `json:"account_id"`
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}
