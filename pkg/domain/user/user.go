package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/minibank/pkg/domain"
	"github.com/amirasaad/minibank/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = fmt.Errorf("user %w", domain.ErrNotFound)
	// ErrNationalIDTaken is returned when registering a national ID that
	// already belongs to a user.
	ErrNationalIDTaken = fmt.Errorf("national id %w", domain.ErrAlreadyExists)
	// ErrInvalidNationalID is returned when a national ID is not exactly 11 digits.
	ErrInvalidNationalID = fmt.Errorf("%w: national id must be exactly 11 digits", domain.ErrValidation)
	// ErrInvalidName is returned for names outside 3..100 characters.
	ErrInvalidName = fmt.Errorf("%w: name must be between 3 and 100 characters", domain.ErrValidation)
	// ErrPasswordTooShort is returned for passwords under 6 characters.
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	// ErrPasswordTooLong is returned for passwords over 72 bytes, bcrypt's
	// input limit.
	ErrPasswordTooLong = fmt.Errorf("%w: password must be at most 72 bytes", domain.ErrValidation)
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// User represents a bank customer.
type User struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	NationalID string    `json:"national_id"`
	Password   string    `json:"-"`
	CreatedAt  time.Time `json:"created"`
	UpdatedAt  time.Time `json:"updated"`
}

// New validates the inputs and returns a User with a bcrypt-hashed password.
func New(name, nationalID, password string, cost int) (*User, error) {
	name = strings.TrimSpace(name)
	if n := len([]rune(name)); n < 3 || n > 100 {
		return nil, ErrInvalidName
	}
	if !utils.IsNationalID(nationalID) {
		return nil, ErrInvalidNationalID
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	hashedPassword, err := utils.HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:         uuid.New(),
		Name:       name,
		NationalID: nationalID,
		Password:   hashedPassword,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
