package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a persisted ledger record. Rows are only ever inserted.
type Transaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_account_created,priority:1"`
	Kind      string          `gorm:"type:varchar(16);not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	CreatedAt time.Time       `gorm:"index:idx_transactions_account_created,priority:2"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
