package account

import (
	"context"
	"log/slog"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/dto"
	"github.com/amirasaad/minibank/pkg/repository"
	repoaccount "github.com/amirasaad/minibank/pkg/repository/account"
	repotransaction "github.com/amirasaad/minibank/pkg/repository/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// executeOperation runs a deposit or withdrawal as one transaction: lock
// the account row, apply the domain operation, persist balance and record.
func (s *Service) executeOperation(
	ctx context.Context,
	req operationRequest,
	handler operationHandler,
) (result *Result, err error) {
	logger := s.logger.With(
		"userID", req.userID,
		"amount", req.amount,
		"operation", req.operation,
	)

	logger.Debug("executeOperation started")
	defer func() {
		if err != nil {
			logger.Info("executeOperation failed", "error", err)
		} else {
			logger.Info("executeOperation successful", "transactionID", result.Transaction.ID)
		}
	}()

	var txLocal *account.Transaction
	var balance decimal.Decimal
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, txRepo, err := s.getRepositories(uow, logger)
		if err != nil {
			return err
		}

		acc, err := s.lockAccountOfUser(ctx, accountRepo, req.userID)
		if err != nil {
			return err
		}

		txLocal, err = handler.execute(acc, req.userID, req.amount)
		if err != nil {
			return err
		}

		if err = s.persist(ctx, accountRepo, txRepo, acc, txLocal); err != nil {
			logger.Error("executeOperation failed: persist error", "error", err)
			return err
		}
		balance = acc.Balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{Balance: balance, Transaction: txLocal}, nil
}

// getRepositories retrieves the account and transaction repositories from the unit of work
func (s *Service) getRepositories(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) (repoaccount.Repository, repotransaction.Repository, error) {
	accountRepo, err := uow.AccountRepository()
	if err != nil {
		logger.Error("getRepositories failed: AccountRepository error", "error", err)
		return nil, nil, err
	}

	txRepo, err := uow.TransactionRepository()
	if err != nil {
		logger.Error("getRepositories failed: TransactionRepository error", "error", err)
		return nil, nil, err
	}

	return accountRepo, txRepo, nil
}

// lockAccountOfUser finds the account owned by userID and locks its row.
func (s *Service) lockAccountOfUser(
	ctx context.Context,
	repo repoaccount.Repository,
	userID uuid.UUID,
) (*account.Account, error) {
	read, err := repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if read == nil {
		return nil, account.ErrAccountNotFound
	}
	return lockAccount(ctx, repo, read.ID)
}

// lockAccount reads an account with SELECT ... FOR UPDATE and hydrates it.
func lockAccount(
	ctx context.Context,
	repo repoaccount.Repository,
	id uuid.UUID,
) (*account.Account, error) {
	read, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if read == nil {
		return nil, account.ErrAccountNotFound
	}
	return toDomain(read)
}

func (s *Service) persist(
	ctx context.Context,
	accountRepo repoaccount.Repository,
	txRepo repotransaction.Repository,
	acc *account.Account,
	tx *account.Transaction,
) error {
	if err := accountRepo.Update(ctx, acc.ID, dto.AccountUpdate{Balance: acc.Balance}); err != nil {
		return err
	}
	return txRepo.Create(ctx, dto.TransactionCreate{
		ID:        tx.ID,
		AccountID: tx.AccountID,
		Kind:      string(tx.Kind),
		Amount:    tx.Amount,
		CreatedAt: tx.CreatedAt,
	})
}

func toDomain(read *dto.AccountRead) (*account.Account, error) {
	return account.New().
		WithID(read.ID).
		WithUserID(read.UserID).
		WithBalance(read.Balance).
		WithCreatedAt(read.CreatedAt).
		WithUpdatedAt(read.UpdatedAt).
		Build()
}
