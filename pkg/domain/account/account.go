package account

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/minibank/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxAmountScale is the number of decimal places a monetary amount may carry.
const MaxAmountScale = 2

var (
	// ErrAmountMustBePositive is returned when a transaction amount is not positive.
	ErrAmountMustBePositive = fmt.Errorf("%w: amount must be positive", domain.ErrBusinessRule)

	// ErrInvalidAmountPrecision is returned when an amount has more than two decimal places.
	ErrInvalidAmountPrecision = fmt.Errorf("%w: amount must have at most 2 decimal places", domain.ErrValidation)

	// ErrInsufficientFunds is returned when an account has insufficient funds for a withdrawal or transfer.
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", domain.ErrBusinessRule)

	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = fmt.Errorf("account %w", domain.ErrNotFound)

	// ErrCannotTransferToSameAccount is returned when a transfer is attempted from an account to itself.
	ErrCannotTransferToSameAccount = fmt.Errorf("%w: cannot transfer to same account", domain.ErrBusinessRule)

	// ErrNotOwner is returned when a user attempts to move funds on an account they do not own.
	ErrNotOwner = fmt.Errorf("%w: not owner", domain.ErrUnauthorized)

	// ErrNegativeBalance is returned when hydrating an account whose balance is below zero.
	ErrNegativeBalance = errors.New("balance cannot be negative")
)

// Account holds the balance of exactly one user.
//
// Invariants:
//   - An account always has an owner (UserID).
//   - The balance is never negative.
//   - Balance changes only through Deposit, Withdraw and Transfer, each of
//     which returns the Transaction records describing the change.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	id        uuid.UUID
	userID    uuid.UUID
	balance   decimal.Decimal
	createdAt time.Time
	updatedAt time.Time
}

// New creates a new Builder with a fresh id and a zero balance.
func New() *Builder {
	now := time.Now().UTC()
	return &Builder{
		id:        uuid.New(),
		balance:   decimal.Zero,
		createdAt: now,
		updatedAt: now,
	}
}

// WithID sets the ID for the account being built.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithUserID sets the owner of the account. This is a mandatory field.
func (b *Builder) WithUserID(userID uuid.UUID) *Builder {
	b.userID = userID
	return b
}

// WithBalance sets the balance. Only used when hydrating an account from
// storage or in tests.
func (b *Builder) WithBalance(balance decimal.Decimal) *Builder {
	b.balance = balance
	return b
}

// WithCreatedAt sets the creation timestamp.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// WithUpdatedAt sets the last-updated timestamp.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder {
	b.updatedAt = t
	return b
}

// Build validates the invariants and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if b.userID == uuid.Nil {
		return nil, errors.New("userID is required")
	}
	if b.balance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	return &Account{
		ID:        b.id,
		UserID:    b.userID,
		Balance:   b.balance,
		CreatedAt: b.createdAt,
		UpdatedAt: b.updatedAt,
	}, nil
}

// ValidateAmount checks that amount is strictly positive and has at most
// two decimal places.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	if !amount.Equal(amount.Truncate(MaxAmountScale)) {
		return ErrInvalidAmountPrecision
	}
	return nil
}

func (a *Account) validate(userID uuid.UUID) error {
	if a.UserID != userID {
		return ErrNotOwner
	}
	return nil
}

func (a *Account) hasFunds(amount decimal.Decimal) error {
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ValidateDeposit checks all business invariants for a deposit operation.
func (a *Account) ValidateDeposit(userID uuid.UUID, amount decimal.Decimal) error {
	if err := a.validate(userID); err != nil {
		return err
	}
	return ValidateAmount(amount)
}

// ValidateWithdraw checks all business invariants for a withdrawal.
// Invariants enforced:
//   - Only the account owner can withdraw.
//   - Withdrawal amount must be positive.
//   - Cannot withdraw more than the current balance.
func (a *Account) ValidateWithdraw(userID uuid.UUID, amount decimal.Decimal) error {
	if err := a.ValidateDeposit(userID, amount); err != nil {
		return err
	}
	return a.hasFunds(amount)
}

// ValidateTransfer ensures that a transfer from this account to dest is
// valid. A nil dest means the destination could not be resolved.
func (a *Account) ValidateTransfer(senderUserID uuid.UUID, dest *Account, amount decimal.Decimal) error {
	if err := a.ValidateWithdraw(senderUserID, amount); err != nil {
		return err
	}
	if dest == nil {
		return ErrAccountNotFound
	}
	if a.ID == dest.ID {
		return ErrCannotTransferToSameAccount
	}
	return nil
}

// Deposit credits amount and returns the deposit record.
func (a *Account) Deposit(userID uuid.UUID, amount decimal.Decimal) (*Transaction, error) {
	if err := a.ValidateDeposit(userID, amount); err != nil {
		return nil, err
	}
	a.credit(amount)
	return newTransaction(a.ID, KindDeposit, amount), nil
}

// Withdraw debits amount and returns the withdrawal record.
func (a *Account) Withdraw(userID uuid.UUID, amount decimal.Decimal) (*Transaction, error) {
	if err := a.ValidateWithdraw(userID, amount); err != nil {
		return nil, err
	}
	a.debit(amount)
	return newTransaction(a.ID, KindWithdrawal, amount), nil
}

// Transfer moves amount from a to dest. It returns the transfer_out record
// of a and the transfer_in record of dest. On error neither balance changes.
func (a *Account) Transfer(senderUserID uuid.UUID, dest *Account, amount decimal.Decimal) (out, in *Transaction, err error) {
	if err = a.ValidateTransfer(senderUserID, dest, amount); err != nil {
		return nil, nil, err
	}
	a.debit(amount)
	dest.credit(amount)
	out = newTransaction(a.ID, KindTransferOut, amount)
	in = newTransaction(dest.ID, KindTransferIn, amount)
	in.CreatedAt = out.CreatedAt
	return out, in, nil
}

func (a *Account) credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
	a.UpdatedAt = time.Now().UTC()
}

func (a *Account) debit(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
	a.UpdatedAt = time.Now().UTC()
}
