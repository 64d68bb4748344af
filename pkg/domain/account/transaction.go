package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind names the ledger effect of a Transaction.
type Kind string

// Transaction kinds.
const (
	KindDeposit     Kind = "deposit"
	KindWithdrawal  Kind = "withdrawal"
	KindTransferOut Kind = "transfer_out"
	KindTransferIn  Kind = "transfer_in"
)

// Credits reports whether the kind increases the balance.
func (k Kind) Credits() bool {
	return k == KindDeposit || k == KindTransferIn
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDeposit, KindWithdrawal, KindTransferOut, KindTransferIn:
		return true
	}
	return false
}

// Transaction is an append-only ledger entry. Amount is always a positive
// magnitude; Kind carries the direction.
type Transaction struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Kind      Kind
	Amount    decimal.Decimal
	CreatedAt time.Time
}

func newTransaction(accountID uuid.UUID, kind Kind, amount decimal.Decimal) *Transaction {
	return &Transaction{
		ID:        uuid.New(),
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}

// NewTransactionFromData creates a Transaction from raw data (used for DB hydration or test fixtures).
// This bypasses invariants and should only be used for repository hydration or tests.
func NewTransactionFromData(
	id, accountID uuid.UUID,
	kind Kind,
	amount decimal.Decimal,
	created time.Time,
) *Transaction {
	return &Transaction{
		ID:        id,
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
		CreatedAt: created,
	}
}

// Signed returns the amount with the sign of its ledger effect.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Kind.Credits() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Reconcile returns the sum of the signed amounts of txs. For a complete
// ledger this equals the account balance.
func Reconcile(txs []*Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.Signed())
	}
	return sum
}
