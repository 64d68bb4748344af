package transaction

import (
	"context"

	"github.com/amirasaad/minibank/pkg/dto"
	repo "github.com/amirasaad/minibank/pkg/repository/transaction"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a new transaction repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements transaction.Repository.
func (r *repository) Create(ctx context.Context, create dto.TransactionCreate) error {
	tx := Transaction{
		ID:        create.ID,
		AccountID: create.AccountID,
		Kind:      create.Kind,
		Amount:    create.Amount,
		CreatedAt: create.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&tx).Error
}

// ListByAccount implements transaction.Repository.
func (r *repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*dto.TransactionRead, error) {
	var txs []Transaction
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		result = append(result, mapModelToDTO(&txs[i]))
	}
	return result, nil
}

func mapModelToDTO(tx *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:        tx.ID,
		AccountID: tx.AccountID,
		Kind:      tx.Kind,
		Amount:    tx.Amount,
		CreatedAt: tx.CreatedAt,
	}
}

var _ repo.Repository = (*repository)(nil)
