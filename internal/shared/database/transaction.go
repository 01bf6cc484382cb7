package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WithTransaction executes fn within a transaction while propagating context.
// The tx handle passed to fn already carries the context, so repository
// methods can use it directly. fn returning an error rolls the transaction
// back; returning nil commits.
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}
