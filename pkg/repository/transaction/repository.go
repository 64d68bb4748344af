package transaction

import (
	"context"

	"github.com/amirasaad/minibank/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the append-only ledger store.
type Repository interface {
	// Create appends a transaction record from a DTO.
	Create(ctx context.Context, create dto.TransactionCreate) error

	// ListByAccount lists all records of an account, oldest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*dto.TransactionRead, error)
}
