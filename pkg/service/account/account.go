// Package account provides the money-moving operations: deposit, withdraw,
// transfer and statement. Every operation runs in one unit of work and
// locks the rows it changes before checking balances.
package account

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/user"
	"github.com/amirasaad/minibank/pkg/repository"
	"github.com/amirasaad/minibank/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service provides business logic for account operations.
type Service struct {
	uow      repository.UnitOfWork
	verifier Verifier
	logger   *slog.Logger
}

// NewService creates a new Service with the provided dependencies.
func NewService(
	uow repository.UnitOfWork,
	verifier Verifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:      uow,
		verifier: verifier,
		logger:   logger,
	}
}

// Deposit credits amount to the account of userID.
func (s *Service) Deposit(
	ctx context.Context,
	userID uuid.UUID,
	amount decimal.Decimal,
) (*Result, error) {
	if err := account.ValidateAmount(amount); err != nil {
		return nil, err
	}
	return s.executeOperation(ctx, operationRequest{
		userID:    userID,
		amount:    amount,
		operation: OperationDeposit,
	}, depositHandler{})
}

// Withdraw re-checks password, then debits amount from the account of userID.
func (s *Service) Withdraw(
	ctx context.Context,
	userID uuid.UUID,
	password string,
	amount decimal.Decimal,
) (*Result, error) {
	if err := s.verifier.Verify(ctx, userID, password); err != nil {
		return nil, err
	}
	if err := account.ValidateAmount(amount); err != nil {
		return nil, err
	}
	return s.executeOperation(ctx, operationRequest{
		userID:    userID,
		amount:    amount,
		operation: OperationWithdraw,
	}, withdrawHandler{})
}

// Transfer re-checks password, then moves amount from the account of
// userID to the account of the user with destNationalID. Both balance
// updates and both ledger records commit together or not at all.
func (s *Service) Transfer(
	ctx context.Context,
	userID uuid.UUID,
	password string,
	destNationalID string,
	amount decimal.Decimal,
) (result *TransferResult, err error) {
	logger := s.logger.With(
		"userID", userID,
		"amount", amount,
		"destination", utils.MaskNationalID(destNationalID),
		"operation", "transfer",
	)
	logger.Debug("Transfer started")
	defer func() {
		if err != nil {
			logger.Info("Transfer failed", "error", err)
		} else {
			logger.Info("Transfer successful", "transactionID", result.Outgoing.ID)
		}
	}()

	if err = s.verifier.Verify(ctx, userID, password); err != nil {
		return nil, err
	}
	if err = account.ValidateAmount(amount); err != nil {
		return nil, err
	}
	if !utils.IsNationalID(destNationalID) {
		return nil, user.ErrInvalidNationalID
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, txRepo, err := s.getRepositories(uow, logger)
		if err != nil {
			return err
		}
		userRepo, err := uow.UserRepository()
		if err != nil {
			return err
		}

		srcRead, err := accountRepo.GetByUser(ctx, userID)
		if err != nil {
			return err
		}
		if srcRead == nil {
			return account.ErrAccountNotFound
		}

		var destID uuid.UUID
		destUser, err := userRepo.GetByNationalID(ctx, destNationalID)
		if err != nil {
			return err
		}
		if destUser != nil {
			destRead, err := accountRepo.GetByUser(ctx, destUser.ID)
			if err != nil {
				return err
			}
			if destRead != nil {
				destID = destRead.ID
			}
		}

		// Lock in ascending id order so two opposite transfers cannot deadlock.
		ids := []uuid.UUID{srcRead.ID}
		if destID != uuid.Nil && destID != srcRead.ID {
			ids = append(ids, destID)
			if bytes.Compare(destID[:], srcRead.ID[:]) < 0 {
				ids[0], ids[1] = ids[1], ids[0]
			}
		}
		locked := make(map[uuid.UUID]*account.Account, len(ids))
		for _, id := range ids {
			acc, err := lockAccount(ctx, accountRepo, id)
			if err != nil {
				return err
			}
			locked[id] = acc
		}

		src := locked[srcRead.ID]
		var dest *account.Account
		if destID != uuid.Nil {
			dest = locked[destID]
		}

		out, in, err := src.Transfer(userID, dest, amount)
		if err != nil {
			return err
		}
		if err := s.persist(ctx, accountRepo, txRepo, src, out); err != nil {
			return err
		}
		if err := s.persist(ctx, accountRepo, txRepo, dest, in); err != nil {
			return err
		}
		result = &TransferResult{Balance: src.Balance, Outgoing: out, Incoming: in}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Statement returns the balance and every ledger record of the account of
// userID, oldest first.
func (s *Service) Statement(
	ctx context.Context,
	userID uuid.UUID,
) (st *Statement, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, txRepo, err := s.getRepositories(uow, s.logger)
		if err != nil {
			return err
		}
		acc, err := accountRepo.GetByUser(ctx, userID)
		if err != nil {
			return err
		}
		if acc == nil {
			return account.ErrAccountNotFound
		}
		records, err := txRepo.ListByAccount(ctx, acc.ID)
		if err != nil {
			return err
		}
		st = &Statement{
			AccountID:    acc.ID,
			Balance:      acc.Balance,
			Transactions: make([]*account.Transaction, 0, len(records)),
		}
		for _, r := range records {
			st.Transactions = append(st.Transactions, account.NewTransactionFromData(
				r.ID, r.AccountID, account.Kind(r.Kind), r.Amount, r.CreatedAt,
			))
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Statement failed", "userID", userID, "error", err)
		return nil, err
	}
	return st, nil
}
