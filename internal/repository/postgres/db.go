package postgres

import (
	"context"
	"time"

	errwrap "github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to PostgreSQL with the given gorm logger, which is where
// query timing hooks in. Connections are recycled after five minutes to
// survive idle-connection reaping on managed databases.
func Open(dsn string, maxOpenConns int, gl gormlogger.Interface) (*gorm.DB, error) {
	funcName := "postgres.Open"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gl})
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Ping verifies database connectivity, used by startup and the health
// endpoint.
func Ping(ctx context.Context, db *gorm.DB) error {
	funcName := "postgres.Ping"

	sqlDB, err := db.DB()
	if err != nil {
		return errwrap.Wrap(err, funcName)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errwrap.Wrap(err, funcName)
	}
	return nil
}
