package user

import (
	"context"
	"errors"

	"github.com/amirasaad/minibank/pkg/dto"
	"github.com/amirasaad/minibank/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed user repository.
func New(db *gorm.DB) user.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) error {
	u := &User{
		ID:         create.ID,
		Name:       create.Name,
		NationalID: create.NationalID,
		Password:   create.HashedPassword,
		CreatedAt:  create.CreatedAt,
		UpdatedAt:  create.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(u).Error
}

// Get returns nil, nil when no user has the id.
func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByNationalID returns nil, nil when no user has the national ID.
func (r *repository) GetByNationalID(
	ctx context.Context,
	nationalID string,
) (*dto.UserRead, error) {
	return r.first(ctx, "national_id = ?", nationalID)
}

func (r *repository) ExistsByNationalID(
	ctx context.Context,
	nationalID string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(
		ctx,
	).Model(&User{}).Where("national_id = ?", nationalID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) first(ctx context.Context, query string, arg any) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		Name:           u.Name,
		NationalID:     u.NationalID,
		HashedPassword: u.Password,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

var _ user.Repository = (*repository)(nil)
