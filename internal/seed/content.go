package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// brandID is the fixed id of the brand singleton; exactly one row ever exists.
const brandID = "1"

func (s *Seeder) seedBrand(ctx context.Context) error {
	_, _, err := s.res.Ensure(ctx, KindBrand, brandID, []any{
		s.fx.Brand.Name, s.fx.Brand.Tagline, s.fx.Brand.LogoURL,
	})
	return err
}

func (s *Seeder) seedHero(ctx context.Context) error {
	h := s.fx.Hero
	_, _, err := s.res.Ensure(ctx, KindHero, "", []any{
		h.Title, h.Subtitle, h.ImageURL, h.CTALabel, h.CTAURL,
	})
	return err
}

func (s *Seeder) seedAbout(ctx context.Context) error {
	a := s.fx.About
	_, _, err := s.res.Ensure(ctx, KindAbout, "", []any{a.Title, a.Body, a.ImageURL})
	return err
}

func (s *Seeder) seedServices(ctx context.Context) error {
	ran, err := s.loader.InsertIfEmpty(ctx, "services", func(tx *sql.Tx) error {
		for _, sv := range s.fx.Services {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO services (title, description, icon) VALUES (?, ?, ?)`,
				sv.Title, sv.Description, sv.Icon,
			); err != nil {
				return fmt.Errorf("insert service %q: %w", sv.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if ran {
		s.log.Info("seeded services", "count", len(s.fx.Services))
	}
	return nil
}

// seedFooter creates each footer section with its nested links in the one
// transaction the loader provides.
func (s *Seeder) seedFooter(ctx context.Context) error {
	ran, err := s.loader.InsertIfEmpty(ctx, "footer_sections", func(tx *sql.Tx) error {
		for i, sec := range s.fx.FooterSections {
			res, err := tx.ExecContext(ctx,
				`INSERT INTO footer_sections (title, display_order) VALUES (?, ?)`,
				sec.Title, i,
			)
			if err != nil {
				return fmt.Errorf("insert footer section %q: %w", sec.Title, err)
			}
			sectionID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("last insert id: %w", err)
			}

			for j, ln := range sec.Links {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO footer_links (section_id, label, url, display_order) VALUES (?, ?, ?, ?)`,
					sectionID, ln.Label, ln.URL, j,
				); err != nil {
					return fmt.Errorf("insert footer link %q: %w", ln.Label, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if ran {
		s.log.Info("seeded footer", "sections", len(s.fx.FooterSections))
	}
	return nil
}

func (s *Seeder) seedLegal(ctx context.Context) error {
	_, err := s.loader.InsertIfEmpty(ctx, "legal_contents", func(tx *sql.Tx) error {
		for _, l := range s.fx.Legal {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO legal_contents (kind, title, body) VALUES (?, ?, ?)`,
				l.Kind, l.Title, l.Body,
			); err != nil {
				return fmt.Errorf("insert legal content %q: %w", l.Kind, err)
			}
		}
		return nil
	})
	return err
}
