package fixture_test

import (
	"testing"

	"github.com/lbertrand/boutique/internal/fixture"
)

func TestNormalizeDerivesSlugs(t *testing.T) {
	d := &fixture.Dataset{
		Categories: []fixture.Category{
			{Name: "Accessoires d'été"},
			{Slug: "deja-la", Name: "Déjà là"},
		},
		Products: []fixture.Product{
			{Name: "Écharpe en laine", CategorySlug: "accessoires-d-ete"},
		},
	}

	d.Normalize()

	if got := d.Categories[0].Slug; got != "accessoires-d-ete" {
		t.Errorf("category slug = %q, want accessoires-d-ete", got)
	}
	if got := d.Categories[1].Slug; got != "deja-la" {
		t.Errorf("explicit slug rewritten to %q", got)
	}
	if got := d.Products[0].Slug; got != "echarpe-en-laine" {
		t.Errorf("product slug = %q, want echarpe-en-laine", got)
	}
}

func TestDefaultIsInternallyConsistent(t *testing.T) {
	d := fixture.Default()
	d.Normalize()

	categories := make(map[string]bool)
	for _, c := range d.Categories {
		if categories[c.Slug] {
			t.Errorf("duplicate category slug %q", c.Slug)
		}
		categories[c.Slug] = true
	}
	for _, c := range d.Categories {
		if c.ParentSlug != "" && !categories[c.ParentSlug] {
			t.Errorf("category %q references unknown parent %q", c.Slug, c.ParentSlug)
		}
	}

	products := make(map[string]bool)
	for _, p := range d.Products {
		if products[p.Slug] {
			t.Errorf("duplicate product slug %q", p.Slug)
		}
		products[p.Slug] = true
		if !categories[p.CategorySlug] {
			t.Errorf("product %q references unknown category %q", p.Slug, p.CategorySlug)
		}
	}

	clients := make(map[string]bool)
	for _, u := range d.Clients {
		clients[u.Email] = true
	}
	for _, o := range d.Orders {
		if !clients[o.UserEmail] {
			t.Errorf("order references unknown user %q", o.UserEmail)
		}
		for _, it := range o.Items {
			if !products[it.ProductSlug] {
				t.Errorf("order item references unknown product %q", it.ProductSlug)
			}
		}
	}
	for _, w := range d.WishlistItems {
		if !clients[w.UserEmail] || !products[w.ProductSlug] {
			t.Errorf("wishlist item references unknown user or product: %+v", w)
		}
	}
	for _, c := range d.CartItems {
		if !clients[c.UserEmail] || !products[c.ProductSlug] {
			t.Errorf("cart item references unknown user or product: %+v", c)
		}
	}
}
