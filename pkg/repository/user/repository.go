package user

import (
	"context"

	"github.com/amirasaad/minibank/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the credential store.
type Repository interface {
	// Create inserts a new user. A duplicate national ID fails with
	// domain.ErrAlreadyExists.
	Create(ctx context.Context, create *dto.UserCreate) error

	// Get retrieves a user by ID.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByNationalID retrieves a user by national ID.
	GetByNationalID(ctx context.Context, nationalID string) (*dto.UserRead, error)

	// ExistsByNationalID reports whether a user with the national ID exists.
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
}
