package infra

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/minibank/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported values of DATABASE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// NewDBConnection opens the configured database. appEnv selects the GORM
// log level.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	databaseUrl := cnf.Url
	if databaseUrl == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	var dialector gorm.Dialector
	switch cnf.Driver {
	case DriverPostgres, "":
		dialector = postgres.Open(databaseUrl)
	case DriverSQLite:
		dialector = sqlite.Open(databaseUrl)
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cnf.Driver)
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if cnf.Driver == DriverSQLite {
		// SQLite allows a single writer; one connection serializes transactions.
		sqlDB.SetMaxOpenConns(1)
		return connection, nil
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}
