package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amirasaad/minibank/infra/repository/account"
	"github.com/amirasaad/minibank/infra/repository/transaction"
	"github.com/amirasaad/minibank/infra/repository/user"
	"github.com/amirasaad/minibank/pkg/repository"
	accountrepo "github.com/amirasaad/minibank/pkg/repository/account"
	transactionrepo "github.com/amirasaad/minibank/pkg/repository/transaction"
	userrepo "github.com/amirasaad/minibank/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*accountrepo.Repository)(nil)).Elem():     func(db *gorm.DB) any { return account.New(db) },
			reflect.TypeOf((*transactionrepo.Repository)(nil)).Elem(): func(db *gorm.DB) any { return transaction.New(db) },
			reflect.TypeOf((*userrepo.Repository)(nil)).Elem():        func(db *gorm.DB) any { return user.New(db) },
		},
	}
}

// Do runs fn in a database transaction. Storage errors returned by fn are
// mapped to domain error categories; domain errors pass through unchanged.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
	return MapGormErrorToDomain(err)
}

// GetRepository returns the repository registered for repoType, bound to
// the transaction session inside Do and to the plain connection outside it.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(u.session()), nil
}

// AccountRepository returns the account repository bound to this unit of work.
func (u *UoW) AccountRepository() (accountrepo.Repository, error) {
	return getRepo[accountrepo.Repository](u)
}

// TransactionRepository returns the ledger repository bound to this unit of work.
func (u *UoW) TransactionRepository() (transactionrepo.Repository, error) {
	return getRepo[transactionrepo.Repository](u)
}

// UserRepository returns the user repository bound to this unit of work.
func (u *UoW) UserRepository() (userrepo.Repository, error) {
	return getRepo[userrepo.Repository](u)
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func getRepo[T any](u *UoW) (T, error) {
	var zero T
	repoAny, err := u.GetRepository(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("repository has unexpected type %T", repoAny)
	}
	return repo, nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
