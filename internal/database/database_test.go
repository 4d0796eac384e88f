package database_test

import (
	"context"
	"testing"

	"github.com/lbertrand/boutique/internal/database"
	"github.com/lbertrand/boutique/internal/testhelpers"
)

func TestOpen(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	if err := db.Ping(); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	// Foreign keys must be enforced: the schema leans on them.
	var fk int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatalf("query foreign_keys: %v", err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys = %d, want 1", fk)
	}
}

func TestMigrate(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// Spot-check a few tables from different migration groups.
	for _, table := range []string{"users", "categories", "order_items", "cart_items"} {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			t.Fatalf("query %s: %v", table, err)
		}
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := database.Migrate(ctx, db); err != nil {
			t.Fatalf("migrate (run %d): %v", i+1, err)
		}
	}
}

func TestQuantityCheckConstraint(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)

	if _, err := db.Exec(
		`INSERT INTO users (email, username, password_hash, role, created_at, updated_at)
		 VALUES ('u@example.com', 'u', 'x', 'USER', '2025-01-01', '2025-01-01')`,
	); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO categories (slug, name) VALUES ('c', 'C')`); err != nil {
		t.Fatalf("insert category: %v", err)
	}
	if _, err := db.Exec(
		`INSERT INTO products (slug, name, price_cents, stock, in_stock, category_id)
		 VALUES ('p', 'P', 100, 1, TRUE, 1)`,
	); err != nil {
		t.Fatalf("insert product: %v", err)
	}
	if _, err := db.Exec(
		`INSERT INTO orders (user_id, status, total_cents, created_at) VALUES (1, 'PENDING', 0, '2025-01-01')`,
	); err != nil {
		t.Fatalf("insert order: %v", err)
	}

	_, err := db.Exec(
		`INSERT INTO order_items (order_id, product_id, quantity, price_cents) VALUES (1, 1, 0, 100)`,
	)
	if err == nil {
		t.Fatal("expected CHECK violation for quantity 0, got nil")
	}
}
