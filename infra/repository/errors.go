package repository

import (
	"errors"
	"fmt"

	"github.com/amirasaad/minibank/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain error categories so
// storage details do not leak past the infrastructure layer. It relies on
// gorm.Config.TranslateError to turn driver codes into GORM sentinels.
// The original error stays in the chain for logging.
func MapGormErrorToDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", domain.ErrAlreadyExists, err)
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %w", domain.ErrBusinessRule, err)
	}
	return err
}
