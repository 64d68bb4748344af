package account

import (
	"testing"

	"github.com/amirasaad/minibank/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(t *testing.T, userID uuid.UUID, balance string) *Account {
	t.Helper()
	acc, err := New().WithUserID(userID).WithBalance(decimal.RequireFromString(balance)).Build()
	require.NoError(t, err)
	return acc
}

func TestBuilder(t *testing.T) {
	userID := uuid.New()
	acc, err := New().WithUserID(userID).Build()
	require.NoError(t, err)
	assert.Equal(t, userID, acc.UserID)
	assert.True(t, acc.Balance.IsZero())
	assert.NotEqual(t, uuid.Nil, acc.ID)

	_, err = New().Build()
	require.Error(t, err)

	_, err = New().WithUserID(userID).WithBalance(decimal.NewFromInt(-1)).Build()
	assert.ErrorIs(t, err, ErrNegativeBalance)
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   error
	}{
		{"0.01", nil},
		{"100", nil},
		{"10.50", nil},
		{"0", ErrAmountMustBePositive},
		{"-5", ErrAmountMustBePositive},
		{"1.005", ErrInvalidAmountPrecision},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := ValidateAmount(decimal.RequireFromString(tt.amount))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.ErrorIs(t, ErrAmountMustBePositive, domain.ErrBusinessRule)
	assert.ErrorIs(t, ErrInvalidAmountPrecision, domain.ErrValidation)
}

func TestAccount_Deposit(t *testing.T) {
	userID := uuid.New()
	acc := newTestAccount(t, userID, "10")

	tx, err := acc.Deposit(userID, decimal.RequireFromString("90.25"))
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("100.25")))
	assert.Equal(t, KindDeposit, tx.Kind)
	assert.Equal(t, acc.ID, tx.AccountID)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("90.25")))

	_, err = acc.Deposit(userID, decimal.Zero)
	assert.ErrorIs(t, err, ErrAmountMustBePositive)

	_, err = acc.Deposit(uuid.New(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("100.25")))
}

func TestAccount_Withdraw(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		acc := newTestAccount(t, userID, "100")
		tx, err := acc.Withdraw(userID, decimal.NewFromInt(40))
		require.NoError(t, err)
		assert.True(t, acc.Balance.Equal(decimal.NewFromInt(60)))
		assert.Equal(t, KindWithdrawal, tx.Kind)
	})

	t.Run("whole balance", func(t *testing.T) {
		acc := newTestAccount(t, userID, "100")
		_, err := acc.Withdraw(userID, decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.True(t, acc.Balance.IsZero())
	})

	t.Run("insufficient funds leaves balance unchanged", func(t *testing.T) {
		acc := newTestAccount(t, userID, "60")
		tx, err := acc.Withdraw(userID, decimal.NewFromInt(1000))
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Nil(t, tx)
		assert.True(t, acc.Balance.Equal(decimal.NewFromInt(60)))
	})

	t.Run("non-positive amount", func(t *testing.T) {
		acc := newTestAccount(t, userID, "60")
		_, err := acc.Withdraw(userID, decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, ErrAmountMustBePositive)
	})
}

func TestAccount_Transfer(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()

	testCases := []struct {
		name        string
		srcBalance  string
		dest        func(src *Account) *Account
		amount      string
		expectedErr error
	}{
		{
			name:       "success",
			srcBalance: "100",
			dest:       func(*Account) *Account { return newTestAccount(t, userB, "0") },
			amount:     "40",
		},
		{
			name:        "insufficient funds",
			srcBalance:  "10",
			dest:        func(*Account) *Account { return newTestAccount(t, userB, "0") },
			amount:      "40",
			expectedErr: ErrInsufficientFunds,
		},
		{
			name:        "unknown destination",
			srcBalance:  "100",
			dest:        func(*Account) *Account { return nil },
			amount:      "40",
			expectedErr: ErrAccountNotFound,
		},
		{
			name:        "same account",
			srcBalance:  "100",
			dest:        func(src *Account) *Account { return src },
			amount:      "40",
			expectedErr: ErrCannotTransferToSameAccount,
		},
		{
			name:        "zero amount",
			srcBalance:  "100",
			dest:        func(*Account) *Account { return newTestAccount(t, userB, "0") },
			amount:      "0",
			expectedErr: ErrAmountMustBePositive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := newTestAccount(t, userA, tc.srcBalance)
			dest := tc.dest(src)
			var destBefore decimal.Decimal
			if dest != nil {
				destBefore = dest.Balance
			}
			total := src.Balance.Add(destBefore)
			if dest == src {
				total = src.Balance
			}

			out, in, err := src.Transfer(userA, dest, decimal.RequireFromString(tc.amount))
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, out)
				assert.Nil(t, in)
				assert.True(t, src.Balance.Equal(decimal.RequireFromString(tc.srcBalance)))
				if dest != nil {
					assert.True(t, dest.Balance.Equal(destBefore))
				}
				return
			}

			require.NoError(t, err)
			assert.True(t, src.Balance.Add(dest.Balance).Equal(total), "transfer must conserve money")
			assert.Equal(t, KindTransferOut, out.Kind)
			assert.Equal(t, KindTransferIn, in.Kind)
			assert.Equal(t, src.ID, out.AccountID)
			assert.Equal(t, dest.ID, in.AccountID)
			assert.True(t, out.Amount.Equal(in.Amount))
		})
	}
}
