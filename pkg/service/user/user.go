// Package user provides registration and profile lookup.
package user

import (
	"context"
	"log/slog"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/user"
	"github.com/amirasaad/minibank/pkg/dto"
	"github.com/amirasaad/minibank/pkg/repository"
	"github.com/amirasaad/minibank/pkg/utils"
	"github.com/google/uuid"
)

// Registration is the outcome of a successful Register.
type Registration struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// Profile is the current user as shown to themselves.
type Profile struct {
	ID               uuid.UUID
	Name             string
	MaskedNationalID string
	AccountID        uuid.UUID
}

// Service provides business logic for user operations.
type Service struct {
	uow        repository.UnitOfWork
	bcryptCost int
	logger     *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	bcryptCost int,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:        uow,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a user and its zero-balance account in one transaction.
func (s *Service) Register(
	ctx context.Context,
	name, nationalID, password string,
) (*Registration, error) {
	log := s.logger.With("context", "Register", "national_id", utils.MaskNationalID(nationalID))
	log.Debug("Register called")

	u, err := user.New(name, nationalID, password, s.bcryptCost)
	if err != nil {
		log.Info("Register rejected", "error", err)
		return nil, err
	}
	acc, err := account.New().WithUserID(u.ID).Build()
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		userRepo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		exists, err := userRepo.ExistsByNationalID(ctx, u.NationalID)
		if err != nil {
			return err
		}
		if exists {
			return user.ErrNationalIDTaken
		}
		if err := userRepo.Create(ctx, &dto.UserCreate{
			ID:             u.ID,
			Name:           u.Name,
			NationalID:     u.NationalID,
			HashedPassword: u.Password,
			CreatedAt:      u.CreatedAt,
		}); err != nil {
			return err
		}

		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return accountRepo.Create(ctx, dto.AccountCreate{
			ID:        acc.ID,
			UserID:    acc.UserID,
			Balance:   acc.Balance,
			CreatedAt: acc.CreatedAt,
		})
	})
	if err != nil {
		log.Info("Register failed", "error", err)
		return nil, err
	}
	log.Info("User registered", "userID", u.ID, "accountID", acc.ID)
	return &Registration{UserID: u.ID, AccountID: acc.ID}, nil
}

// Current returns the profile of userID.
func (s *Service) Current(
	ctx context.Context,
	userID uuid.UUID,
) (p *Profile, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		userRepo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := userRepo.Get(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		accountRepo, err := uow.AccountRepository()
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
		p = &Profile{
			ID:               u.ID,
			Name:             u.Name,
			MaskedNationalID: utils.MaskNationalID(u.NationalID),
			AccountID:        acc.ID,
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Current failed", "userID", userID, "error", err)
		return nil, err
	}
	return p, nil
}
