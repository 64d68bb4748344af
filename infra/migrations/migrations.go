// Package migrations owns the database schema.
package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/amirasaad/minibank/infra/repository/account"
	"github.com/amirasaad/minibank/infra/repository/transaction"
	"github.com/amirasaad/minibank/infra/repository/user"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed *.sql
var files embed.FS

// Up brings the schema to the latest version. Postgres runs the embedded
// SQL files through golang-migrate; SQLite, used for development and tests,
// is migrated from the GORM models.
func Up(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return db.AutoMigrate(&user.User{}, &account.Account{}, &transaction.Transaction{})
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	source, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("open migration files: %w", err)
	}
	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
