package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// Loader gates bulk fixture inserts behind a table-emptiness check. This is
// coarse, table-level idempotency for collections that have no natural key.
type Loader struct {
	db *sql.DB
}

// NewLoader creates a loader over the given store handle.
func NewLoader(db *sql.DB) *Loader {
	return &Loader{db: db}
}

// InsertIfEmpty counts rows in table; when any exist it is a no-op. When the
// table is empty, insert runs inside a single transaction. The insert
// callback must only use the transaction it is handed: the store is limited
// to one connection, so a stray read on the shared handle would deadlock.
// Returns whether the insert ran.
func (l *Loader) InsertIfEmpty(ctx context.Context, table string, insert func(tx *sql.Tx) error) (bool, error) {
	var count int
	if err := l.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin %s: %w", table, err)
	}
	if err := insert(tx); err != nil {
		_ = tx.Rollback()
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit %s: %w", table, err)
	}
	return true, nil
}
