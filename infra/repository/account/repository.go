package account

import (
	"context"
	"errors"

	"github.com/amirasaad/minibank/pkg/dto"
	repo "github.com/amirasaad/minibank/pkg/repository/account"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates a CQRS-style account repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(ctx context.Context, create dto.AccountCreate) error {
	acct := Account{
		ID:        create.ID,
		UserID:    create.UserID,
		Balance:   create.Balance,
		CreatedAt: create.CreatedAt,
		UpdatedAt: create.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&acct).Error
}

// Update implements account.Repository.
func (r *repository) Update(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) error {
	res := r.db.WithContext(ctx).Model(&Account{}).Where("id = ?", id).Updates(map[string]any{
		"balance": update.Balance,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Get implements account.Repository. It returns nil, nil when the account
// does not exist.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	return r.first(r.db.WithContext(ctx), "id = ?", id)
}

// GetByUser implements account.Repository.
func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID) (*dto.AccountRead, error) {
	return r.first(r.db.WithContext(ctx), "user_id = ?", userID)
}

// GetForUpdate implements account.Repository. It issues SELECT ... FOR UPDATE
// and must run inside a transaction. Dialects without row locks (SQLite)
// drop the locking clause.
func (r *repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), "id = ?", id)
}

func (r *repository) first(db *gorm.DB, query string, arg any) (*dto.AccountRead, error) {
	var acct Account
	if err := db.Where(query, arg).First(&acct).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

func mapModelToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:        acct.ID,
		UserID:    acct.UserID,
		Balance:   acct.Balance,
		CreatedAt: acct.CreatedAt,
		UpdatedAt: acct.UpdatedAt,
	}
}

var _ repo.Repository = (*repository)(nil)
