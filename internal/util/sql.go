package util

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type TransactionCallback func(*sqlx.Tx) error

// Transaction runs cb in a transaction, committing if cb returns nil and
// rolling back otherwise. beginErr wraps errors that happen before any work
// is done, so callers can tell an unreachable database apart.
func Transaction(ctx context.Context, db *sqlx.DB, beginErr error, cb TransactionCallback) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %s", beginErr, err)
	}

	if err := cb(tx); err != nil {
		if err2 := tx.Rollback(); err2 != nil {
			return fmt.Errorf("rollback error: %s\noriginal error: %w", err2, err)
		}

		return err
	}

	return tx.Commit()
}
