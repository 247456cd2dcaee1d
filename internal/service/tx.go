package service

import (
	"context"
	"errors"

	"menuadmin/internal/apierror"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// storeErr lifts a repository error into the apierror vocabulary.
// Errors that already carry a Kind pass through untouched.
func storeErr(err error, notFound string) error {
	if err == nil {
		return nil
	}
	var apiErr *apierror.Error
	switch {
	case errors.As(err, &apiErr):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierror.NotFound(notFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apierror.BusinessRule("name already exists")
	default:
		return apierror.Persistence(err)
	}
}
