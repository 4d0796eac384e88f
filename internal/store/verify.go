// Package store provides the read-side checks over a seeded database: row
// counts per table and the invariants the seeder promises. It backs the
// verify command and the engine's tests.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SeedTables lists every seeded table in dependency order.
var SeedTables = []string{
	"users",
	"brands",
	"hero_sections",
	"about_pages",
	"services",
	"categories",
	"products",
	"campaigns",
	"orders",
	"order_items",
	"signup_requests",
	"audit_logs",
	"inbound_emails",
	"legal_contents",
	"contact_messages",
	"notifications",
	"footer_sections",
	"footer_links",
	"wishlist_items",
	"cart_items",
}

// Verifier runs integrity queries against an explicitly passed handle.
type Verifier struct {
	db *sql.DB
}

// New creates a verifier over the given database.
func New(db *sql.DB) *Verifier {
	return &Verifier{db: db}
}

// Counts returns the row count of every seeded table.
func (v *Verifier) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(SeedTables))
	for _, table := range SeedTables {
		var n int
		if err := v.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

// Check verifies the seeded invariants: every category parent resolves, every
// product's in_stock flag matches its stock, every order total equals the sum
// of its items, and no order is empty. All violations are reported together.
func (v *Verifier) Check(ctx context.Context) error {
	checks := []struct {
		name  string
		query string
	}{
		{
			name: "categories with dangling parent",
			query: `SELECT COUNT(*) FROM categories c
				WHERE c.parent_id IS NOT NULL
				  AND NOT EXISTS (SELECT 1 FROM categories p WHERE p.id = c.parent_id)`,
		},
		{
			name:  "products with inconsistent stock flag",
			query: `SELECT COUNT(*) FROM products WHERE in_stock != (stock > 0)`,
		},
		{
			name: "orders with inconsistent total",
			query: `SELECT COUNT(*) FROM orders o
				WHERE o.total_cents != (
					SELECT COALESCE(SUM(i.price_cents * i.quantity), 0)
					FROM order_items i WHERE i.order_id = o.id
				)`,
		},
		{
			name: "orders without items",
			query: `SELECT COUNT(*) FROM orders o
				WHERE NOT EXISTS (SELECT 1 FROM order_items i WHERE i.order_id = o.id)`,
		},
	}

	var errs []error
	for _, c := range checks {
		var n int
		if err := v.db.QueryRowContext(ctx, c.query).Scan(&n); err != nil {
			return fmt.Errorf("check %s: %w", c.name, err)
		}
		if n > 0 {
			errs = append(errs, fmt.Errorf("%s: %d", c.name, n))
		}
	}
	return errors.Join(errs...)
}
