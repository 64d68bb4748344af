package account

import (
	"context"

	"github.com/amirasaad/minibank/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for account data access operations with
// support for CQRS (Command/Query Responsibility Segregation).
type Repository interface {
	// Create inserts a new account record from a DTO.
	Create(ctx context.Context, create dto.AccountCreate) error

	// Update updates an existing account by its ID using a DTO.
	Update(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) error

	// Get retrieves an account by its ID as a read-optimized DTO.
	Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)

	// GetByUser retrieves the account owned by userID.
	GetByUser(ctx context.Context, userID uuid.UUID) (*dto.AccountRead, error)

	// GetForUpdate retrieves an account by ID and locks its row until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)
}
