package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// adminRef resolves the admin user for optional attribution columns. A
// missing admin is not fatal; the reference degrades to NULL.
func (s *Seeder) adminRef(ctx context.Context) (any, error) {
	id, found, err := s.res.Find(ctx, KindUser, s.opts.AdminEmail)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return id, nil
}

func (s *Seeder) seedSignupRequests(ctx context.Context) error {
	adminID, err := s.adminRef(ctx)
	if err != nil {
		return err
	}

	_, err = s.loader.InsertIfEmpty(ctx, "signup_requests", func(tx *sql.Tx) error {
		for _, r := range s.fx.SignupRequests {
			var processedBy any
			if r.ProcessedByAdmin {
				processedBy = adminID
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO signup_requests (email, status, processed_by_id, created_at) VALUES (?, ?, ?, ?)`,
				r.Email, r.Status, processedBy, seedTime,
			); err != nil {
				return fmt.Errorf("insert signup request %q: %w", r.Email, err)
			}
		}
		return nil
	})
	return err
}

func (s *Seeder) seedAuditLogs(ctx context.Context) error {
	adminID, err := s.adminRef(ctx)
	if err != nil {
		return err
	}

	_, err = s.loader.InsertIfEmpty(ctx, "audit_logs", func(tx *sql.Tx) error {
		for _, l := range s.fx.AuditLogs {
			var actor any
			if l.ByAdmin {
				actor = adminID
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO audit_logs (actor_id, action, detail, created_at) VALUES (?, ?, ?, ?)`,
				actor, l.Action, l.Detail, seedTime,
			); err != nil {
				return fmt.Errorf("insert audit log %q: %w", l.Action, err)
			}
		}
		return nil
	})
	return err
}

func (s *Seeder) seedInboundEmails(ctx context.Context) error {
	_, err := s.loader.InsertIfEmpty(ctx, "inbound_emails", func(tx *sql.Tx) error {
		for _, m := range s.fx.InboundEmails {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO inbound_emails (from_email, subject, body, received_at) VALUES (?, ?, ?, ?)`,
				m.FromEmail, m.Subject, m.Body, seedTime,
			); err != nil {
				return fmt.Errorf("insert inbound email %q: %w", m.Subject, err)
			}
		}
		return nil
	})
	return err
}

func (s *Seeder) seedContactMessages(ctx context.Context) error {
	_, err := s.loader.InsertIfEmpty(ctx, "contact_messages", func(tx *sql.Tx) error {
		for _, m := range s.fx.ContactMessages {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO contact_messages (name, email, message, created_at) VALUES (?, ?, ?, ?)`,
				m.Name, m.Email, m.Message, seedTime,
			); err != nil {
				return fmt.Errorf("insert contact message from %q: %w", m.Email, err)
			}
		}
		return nil
	})
	return err
}

func (s *Seeder) seedNotifications(ctx context.Context) error {
	_, err := s.loader.InsertIfEmpty(ctx, "notifications", func(tx *sql.Tx) error {
		for _, n := range s.fx.Notifications {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO notifications (title, body, level, created_at) VALUES (?, ?, ?, ?)`,
				n.Title, n.Body, n.Level, seedTime,
			); err != nil {
				return fmt.Errorf("insert notification %q: %w", n.Title, err)
			}
		}
		return nil
	})
	return err
}

// seedWishlist tolerates pre-existing (user, product) pairs: the composite
// primary key plus INSERT OR IGNORE stands in for an emptiness gate.
func (s *Seeder) seedWishlist(ctx context.Context) error {
	for _, w := range s.fx.WishlistItems {
		userID, productID, ok, err := s.userProductRef(ctx, w.UserEmail, w.ProductSlug)
		if err != nil {
			return err
		}
		if !ok {
			s.log.Warn("skipping wishlist item", "email", w.UserEmail, "product", w.ProductSlug)
			continue
		}
		if _, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO wishlist_items (user_id, product_id) VALUES (?, ?)`,
			userID, productID,
		); err != nil {
			return fmt.Errorf("insert wishlist item: %w", err)
		}
	}
	return nil
}

func (s *Seeder) seedCart(ctx context.Context) error {
	for _, c := range s.fx.CartItems {
		userID, productID, ok, err := s.userProductRef(ctx, c.UserEmail, c.ProductSlug)
		if err != nil {
			return err
		}
		if !ok {
			s.log.Warn("skipping cart item", "email", c.UserEmail, "product", c.ProductSlug)
			continue
		}
		if _, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO cart_items (user_id, product_id, quantity) VALUES (?, ?, ?)`,
			userID, productID, NormalizeQuantity(c.Quantity),
		); err != nil {
			return fmt.Errorf("insert cart item: %w", err)
		}
	}
	return nil
}

func (s *Seeder) userProductRef(ctx context.Context, email, productSlug string) (int64, int64, bool, error) {
	userID, found, err := s.res.Find(ctx, KindUser, email)
	if err != nil || !found {
		return 0, 0, false, err
	}
	productID, found, err := s.res.Find(ctx, KindProduct, productSlug)
	if err != nil || !found {
		return 0, 0, false, err
	}
	return userID, productID, true, nil
}
