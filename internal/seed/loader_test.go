package seed_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lbertrand/boutique/internal/seed"
	"github.com/lbertrand/boutique/internal/testhelpers"
)

func TestInsertIfEmptyRunsOnce(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)
	ctx := context.Background()
	l := seed.NewLoader(db)

	insert := func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO services (title, description, icon) VALUES ('Livraison', '', 'truck')`)
		return err
	}

	ran, err := l.InsertIfEmpty(ctx, "services", insert)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !ran {
		t.Error("first call did not run")
	}

	ran, err = l.InsertIfEmpty(ctx, "services", insert)
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if ran {
		t.Error("second call ran despite nonempty table")
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM services`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("services = %d, want 1", count)
	}
}

func TestInsertIfEmptyRollsBackOnError(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)
	ctx := context.Background()
	l := seed.NewLoader(db)

	boom := errors.New("boom")
	_, err := l.InsertIfEmpty(ctx, "services", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO services (title, description, icon) VALUES ('Partial', '', '')`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM services`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("services = %d after rollback, want 0", count)
	}
}
