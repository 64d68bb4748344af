package account

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	userID := uuid.New()
	acc, err := New().WithUserID(userID).Build()
	require.NoError(t, err)
	other, err := New().WithUserID(uuid.New()).Build()
	require.NoError(t, err)

	var ledger []*Transaction
	tx, err := acc.Deposit(userID, decimal.NewFromInt(100))
	require.NoError(t, err)
	ledger = append(ledger, tx)
	tx, err = acc.Withdraw(userID, decimal.RequireFromString("12.34"))
	require.NoError(t, err)
	ledger = append(ledger, tx)
	out, _, err := acc.Transfer(userID, other, decimal.NewFromInt(40))
	require.NoError(t, err)
	ledger = append(ledger, out)

	assert.True(t, Reconcile(ledger).Equal(acc.Balance))
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("47.66")))
}

func TestTransaction_Signed(t *testing.T) {
	amount := decimal.NewFromInt(5)
	for kind, want := range map[Kind]string{
		KindDeposit:     "5",
		KindTransferIn:  "5",
		KindWithdrawal:  "-5",
		KindTransferOut: "-5",
	} {
		tx := NewTransactionFromData(uuid.New(), uuid.New(), kind, amount, time.Now())
		assert.True(t, tx.Signed().Equal(decimal.RequireFromString(want)), kind)
		assert.True(t, kind.Valid())
	}
	assert.False(t, Kind("refund").Valid())
}
