package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lbertrand/boutique/internal/domain"
)

// seedOrders is gated at the table level: if any order exists the whole group
// is a no-op. Each fixture order resolves its user and products before the
// insert transaction opens; line items referencing an unknown product slug
// are dropped, an order left with zero items is skipped, and an unknown user
// email skips the order entirely. Item prices are snapshotted from the
// product row at this moment and never touched again.
func (s *Seeder) seedOrders(ctx context.Context) error {
	type preparedOrder struct {
		userID int64
		status string
		total  int64
		items  []domain.OrderItem
	}

	var prepared []preparedOrder
	for _, o := range s.fx.Orders {
		userID, found, err := s.res.Find(ctx, KindUser, o.UserEmail)
		if err != nil {
			return err
		}
		if !found {
			s.log.Warn("skipping order for unknown user", "email", o.UserEmail)
			continue
		}

		var items []domain.OrderItem
		for _, it := range o.Items {
			productID, priceCents, err := s.productSnapshot(ctx, it.ProductSlug)
			if errors.Is(err, sql.ErrNoRows) {
				s.log.Warn("dropping order item for unknown product", "product", it.ProductSlug)
				continue
			}
			if err != nil {
				return fmt.Errorf("resolve product %q: %w", it.ProductSlug, err)
			}
			items = append(items, domain.OrderItem{
				ProductID:  productID,
				Quantity:   NormalizeQuantity(it.Quantity),
				PriceCents: priceCents,
			})
		}
		if len(items) == 0 {
			s.log.Warn("skipping order with no resolvable items", "email", o.UserEmail)
			continue
		}

		status := o.Status
		if status == "" {
			status = "PENDING"
		}
		prepared = append(prepared, preparedOrder{
			userID: userID,
			status: status,
			total:  TotalCents(items),
			items:  items,
		})
	}

	ran, err := s.loader.InsertIfEmpty(ctx, "orders", func(tx *sql.Tx) error {
		for _, po := range prepared {
			res, err := tx.ExecContext(ctx,
				`INSERT INTO orders (user_id, status, total_cents, created_at) VALUES (?, ?, ?, ?)`,
				po.userID, po.status, po.total, seedTime,
			)
			if err != nil {
				return fmt.Errorf("insert order: %w", err)
			}
			orderID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("last insert id: %w", err)
			}

			for _, it := range po.items {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO order_items (order_id, product_id, quantity, price_cents) VALUES (?, ?, ?, ?)`,
					orderID, it.ProductID, it.Quantity, it.PriceCents,
				); err != nil {
					return fmt.Errorf("insert order item: %w", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if ran {
		s.log.Info("seeded orders", "count", len(prepared))
	}
	return nil
}

// productSnapshot returns the id and current price of a product by slug.
// sql.ErrNoRows passes through so the caller can degrade to a skip.
func (s *Seeder) productSnapshot(ctx context.Context, slug string) (int64, int64, error) {
	var id, priceCents int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, price_cents FROM products WHERE slug = ?`, slug,
	).Scan(&id, &priceCents)
	return id, priceCents, err
}
