package repository

import (
	"context"

	"gorm.io/gorm"
)

// conn returns the open transaction when tx is non-nil, otherwise the pool.
// Every gateway method that may run inside a service transaction takes tx
// explicitly; there is no ambient transaction state.
func conn(ctx context.Context, db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
