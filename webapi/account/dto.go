package account

import (
	"time"

	"github.com/amirasaad/minibank/pkg/domain/account"
	accountsvc "github.com/amirasaad/minibank/pkg/service/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//revive:disable

// DepositRequest represents the request body for depositing funds.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"number" validate:"required,gt=0"`
}

// WithdrawRequest represents the request body for withdrawing funds. The
// password is checked again before any money leaves the account.
type WithdrawRequest struct {
	Amount   decimal.Decimal `json:"amount" swaggertype:"number" validate:"required,gt=0"`
	Password string          `json:"password" validate:"required,max=72"`
}

// TransferRequest represents the request body for transferring funds to
// another customer.
type TransferRequest struct {
	Amount                decimal.Decimal `json:"amount" swaggertype:"number" validate:"required,gt=0"`
	Password              string          `json:"password" validate:"required,max=72"`
	DestinationNationalID string          `json:"destination_national_id" validate:"required,number,len=11"`
}

// TransactionDTO is the API response representation of a ledger record.
type TransactionDTO struct {
	ID        uuid.UUID       `json:"id"`
	AccountID uuid.UUID       `json:"account_id"`
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
	CreatedAt time.Time       `json:"created_at"`
}

// OperationResponse is returned by deposit and withdraw.
type OperationResponse struct {
	Balance     decimal.Decimal `json:"balance" swaggertype:"string"`
	Transaction *TransactionDTO `json:"transaction"`
}

// TransferResponse is returned by transfer. Balance is the sender's.
type TransferResponse struct {
	Balance  decimal.Decimal `json:"balance" swaggertype:"string"`
	Outgoing *TransactionDTO `json:"outgoing_transaction"`
	Incoming *TransactionDTO `json:"incoming_transaction"`
}

// StatementResponse lists the ledger of the caller's account, oldest first.
type StatementResponse struct {
	AccountID    uuid.UUID         `json:"account_id"`
	Balance      decimal.Decimal   `json:"balance" swaggertype:"string"`
	Transactions []*TransactionDTO `json:"transactions"`
}

// ToTransactionDTO maps a domain transaction to a TransactionDTO.
func ToTransactionDTO(tx *account.Transaction) *TransactionDTO {
	if tx == nil {
		return nil
	}
	return &TransactionDTO{
		ID:        tx.ID,
		AccountID: tx.AccountID,
		Kind:      string(tx.Kind),
		Amount:    tx.Amount,
		CreatedAt: tx.CreatedAt,
	}
}

func toOperationResponse(r *accountsvc.Result) OperationResponse {
	return OperationResponse{
		Balance:     r.Balance,
		Transaction: ToTransactionDTO(r.Transaction),
	}
}

func toTransferResponse(r *accountsvc.TransferResult) TransferResponse {
	return TransferResponse{
		Balance:  r.Balance,
		Outgoing: ToTransactionDTO(r.Outgoing),
		Incoming: ToTransactionDTO(r.Incoming),
	}
}

func toStatementResponse(st *accountsvc.Statement) StatementResponse {
	txs := make([]*TransactionDTO, 0, len(st.Transactions))
	for _, tx := range st.Transactions {
		txs = append(txs, ToTransactionDTO(tx))
	}
	return StatementResponse{
		AccountID:    st.AccountID,
		Balance:      st.Balance,
		Transactions: txs,
	}
}
