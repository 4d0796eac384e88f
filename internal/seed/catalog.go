package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// seedCategories walks the category fixture parent-before-child: a node is
// ensured only after its parent has a persisted id. Children of a slug that
// exists nowhere (neither fixture nor store) are skipped with a warning;
// a parent cycle inside the fixture is a configuration error and fails the
// run before anything else is written.
func (s *Seeder) seedCategories(ctx context.Context) error {
	inFixture := make(map[string]bool, len(s.fx.Categories))
	for _, c := range s.fx.Categories {
		inFixture[c.Slug] = true
	}

	resolved := make(map[string]int64, len(s.fx.Categories))
	remaining := make([]int, 0, len(s.fx.Categories))
	for i := range s.fx.Categories {
		remaining = append(remaining, i)
	}

	for len(remaining) > 0 {
		var next []int
		progressed := false

		for _, i := range remaining {
			c := s.fx.Categories[i]

			var parentID any
			if c.ParentSlug != "" {
				pid, ok := resolved[c.ParentSlug]
				if !ok && !inFixture[c.ParentSlug] {
					// The parent may exist from an earlier run even though
					// this fixture no longer carries it.
					storedID, found, err := s.res.Find(ctx, KindCategory, c.ParentSlug)
					if err != nil {
						return err
					}
					if found {
						pid, ok = storedID, true
					}
				}
				if !ok {
					next = append(next, i)
					continue
				}
				parentID = pid
			}

			id, _, err := s.res.Ensure(ctx, KindCategory, c.Slug, []any{c.Name, parentID})
			if err != nil {
				return err
			}
			resolved[c.Slug] = id
			progressed = true
		}

		if !progressed {
			return s.finishStuckCategories(next, inFixture)
		}
		remaining = next
	}
	return nil
}

// finishStuckCategories separates nodes stuck behind a genuinely unknown
// parent (skipped, with their descendants) from nodes stuck in a parent
// cycle (fatal).
func (s *Seeder) finishStuckCategories(stuck []int, inFixture map[string]bool) error {
	unresolvable := make(map[string]bool)

	for changed := true; changed; {
		changed = false
		for _, i := range stuck {
			c := s.fx.Categories[i]
			if unresolvable[c.Slug] {
				continue
			}
			if !inFixture[c.ParentSlug] || unresolvable[c.ParentSlug] {
				unresolvable[c.Slug] = true
				changed = true
			}
		}
	}

	var cyclic []string
	for _, i := range stuck {
		c := s.fx.Categories[i]
		if unresolvable[c.Slug] {
			s.log.Warn("skipping category with unknown parent", "slug", c.Slug, "parent", c.ParentSlug)
			continue
		}
		cyclic = append(cyclic, c.Slug)
	}
	if len(cyclic) > 0 {
		return fmt.Errorf("category parent cycle: %s", strings.Join(cyclic, ", "))
	}
	return nil
}

// seedProducts ensures each product under its resolved category. A product
// whose category slug resolves nowhere is a fixture-authoring error and is
// skipped, not failed.
func (s *Seeder) seedProducts(ctx context.Context) error {
	for _, p := range s.fx.Products {
		categoryID, found, err := s.res.Find(ctx, KindCategory, p.CategorySlug)
		if err != nil {
			return err
		}
		if !found {
			s.log.Warn("skipping product with unknown category", "slug", p.Slug, "category", p.CategorySlug)
			continue
		}

		colors, err := jsonList(p.Colors)
		if err != nil {
			return fmt.Errorf("marshal colors for %q: %w", p.Slug, err)
		}
		sizes, err := jsonList(p.Sizes)
		if err != nil {
			return fmt.Errorf("marshal sizes for %q: %w", p.Slug, err)
		}

		if _, _, err := s.res.Ensure(ctx, KindProduct, p.Slug, []any{
			p.Name, p.Description, p.PriceCents, p.Stock, InStock(p.Stock),
			categoryID, colors, sizes, p.ImageURL,
		}); err != nil {
			return err
		}
	}
	return nil
}

// seedCampaigns is gated at the table level. Referenced category and product
// slugs are resolved to ids up front (the insert transaction must not issue
// reads on the shared handle); unresolvable references are dropped from the
// campaign.
func (s *Seeder) seedCampaigns(ctx context.Context) error {
	type preparedCampaign struct {
		title, description      string
		discount                int
		startsAt, endsAt        string
		categoryIDs, productIDs string
	}

	prepared := make([]preparedCampaign, 0, len(s.fx.Campaigns))
	for _, c := range s.fx.Campaigns {
		var catIDs []int64
		for _, slug := range c.CategorySlugs {
			id, found, err := s.res.Find(ctx, KindCategory, slug)
			if err != nil {
				return err
			}
			if !found {
				s.log.Warn("dropping unknown category from campaign", "campaign", c.Title, "category", slug)
				continue
			}
			catIDs = append(catIDs, id)
		}

		var prodIDs []int64
		for _, slug := range c.ProductSlugs {
			id, found, err := s.res.Find(ctx, KindProduct, slug)
			if err != nil {
				return err
			}
			if !found {
				s.log.Warn("dropping unknown product from campaign", "campaign", c.Title, "product", slug)
				continue
			}
			prodIDs = append(prodIDs, id)
		}

		catJSON, err := jsonList(catIDs)
		if err != nil {
			return fmt.Errorf("marshal campaign categories: %w", err)
		}
		prodJSON, err := jsonList(prodIDs)
		if err != nil {
			return fmt.Errorf("marshal campaign products: %w", err)
		}

		prepared = append(prepared, preparedCampaign{
			title: c.Title, description: c.Description, discount: c.DiscountPercent,
			startsAt: c.StartsAt, endsAt: c.EndsAt,
			categoryIDs: catJSON, productIDs: prodJSON,
		})
	}

	ran, err := s.loader.InsertIfEmpty(ctx, "campaigns", func(tx *sql.Tx) error {
		for _, c := range prepared {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO campaigns (title, description, discount_percent, starts_at, ends_at, category_ids, product_ids)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				c.title, c.description, c.discount, c.startsAt, c.endsAt, c.categoryIDs, c.productIDs,
			); err != nil {
				return fmt.Errorf("insert campaign %q: %w", c.title, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if ran {
		s.log.Info("seeded campaigns", "count", len(prepared))
	}
	return nil
}

// jsonList marshals a slice as a JSON array, mapping nil to "[]" so the
// column never holds SQL-visible null text.
func jsonList[T any](v []T) (string, error) {
	if v == nil {
		return "[]", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
