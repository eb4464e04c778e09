package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"playtube/pkg/apperror"
)

type Database struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// wrap переводит ошибки gorm в типизированные apperror-ошибки.
func wrap(err error, notFound, conflict string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound(notFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.Conflict(conflict)
	default:
		return apperror.Upstream("database error", err)
	}
}
