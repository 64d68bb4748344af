package account

import (
	"context"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationType represents the type of single-account operation.
type OperationType string

const (
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
)

// Verifier re-authenticates a user who already holds a session.
type Verifier interface {
	Verify(ctx context.Context, userID uuid.UUID, password string) error
}

// Result is the outcome of a deposit or withdrawal.
type Result struct {
	Balance     decimal.Decimal
	Transaction *account.Transaction
}

// TransferResult is the outcome of a transfer, seen from the source account.
type TransferResult struct {
	Balance  decimal.Decimal
	Outgoing *account.Transaction
	Incoming *account.Transaction
}

// Statement is the balance and full ledger of an account, oldest first.
type Statement struct {
	AccountID    uuid.UUID
	Balance      decimal.Decimal
	Transactions []*account.Transaction
}

// operationRequest contains the common parameters for single-account operations
type operationRequest struct {
	userID    uuid.UUID
	amount    decimal.Decimal
	operation OperationType
}

// operationHandler applies one domain operation to a locked account.
type operationHandler interface {
	execute(acc *account.Account, userID uuid.UUID, amount decimal.Decimal) (*account.Transaction, error)
}

type depositHandler struct{}

func (depositHandler) execute(acc *account.Account, userID uuid.UUID, amount decimal.Decimal) (*account.Transaction, error) {
	return acc.Deposit(userID, amount)
}

type withdrawHandler struct{}

func (withdrawHandler) execute(acc *account.Account, userID uuid.UUID, amount decimal.Decimal) (*account.Transaction, error) {
	return acc.Withdraw(userID, amount)
}
