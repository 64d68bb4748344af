package repository

import (
	"context"
	"reflect"

	"github.com/amirasaad/minibank/pkg/repository/account"
	"github.com/amirasaad/minibank/pkg/repository/transaction"
	"github.com/amirasaad/minibank/pkg/repository/user"
)

// UnitOfWork defines the contract for transactional work and type-safe
// repository access. Repositories obtained inside Do share the one DB
// transaction, so either every write in fn commits or none does.
//
// Example usage:
//
//	repoAny, err := uow.GetRepository(reflect.TypeOf((*user.Repository)(nil)).Elem())
//	repo := repoAny.(user.Repository)
type UnitOfWork interface {
	// Do executes fn within a transaction boundary.
	// If fn returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the current transaction/session.
	GetRepository(repoType reflect.Type) (any, error)

	AccountRepository() (account.Repository, error)
	TransactionRepository() (transaction.Repository, error)
	UserRepository() (user.Repository, error)
}
