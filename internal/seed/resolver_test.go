package seed_test

import (
	"context"
	"testing"

	"github.com/lbertrand/boutique/internal/seed"
	"github.com/lbertrand/boutique/internal/testhelpers"
)

func TestEnsureCreatesThenSkips(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)
	ctx := context.Background()
	r := seed.NewResolver(db)

	id1, created, err := r.Ensure(ctx, seed.KindCategory, "homme", []any{"Homme", nil})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if !created {
		t.Error("first ensure did not create")
	}

	// Fresh resolver, same key, different attributes: SKIP_ON_MATCH must
	// leave the row alone.
	r2 := seed.NewResolver(db)
	id2, created, err := r2.Ensure(ctx, seed.KindCategory, "homme", []any{"Overwritten", nil})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if created || id2 != id1 {
		t.Errorf("second ensure: created=%v id=%d, want existing id %d", created, id2, id1)
	}

	var name string
	if err := db.QueryRow(`SELECT name FROM categories WHERE slug = 'homme'`).Scan(&name); err != nil {
		t.Fatalf("query: %v", err)
	}
	if name != "Homme" {
		t.Errorf("name = %q, want Homme (skip-on-match)", name)
	}
}

func TestEnsureOverwritesOnMatch(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)
	ctx := context.Background()

	r := seed.NewResolver(db)
	if _, _, err := r.Ensure(ctx, seed.KindUser, "a@example.com", []any{
		"old", "hash1", "USER", "2025-01-01", "2025-01-01",
	}); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	r2 := seed.NewResolver(db)
	if _, _, err := r2.Ensure(ctx, seed.KindUser, "a@example.com", []any{
		"new", "hash2", "ADMIN", "2025-01-01", "2025-01-01",
	}); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	var username, role string
	if err := db.QueryRow(`SELECT username, role FROM users WHERE email = 'a@example.com'`).Scan(&username, &role); err != nil {
		t.Fatalf("query: %v", err)
	}
	if username != "new" || role != "ADMIN" {
		t.Errorf("got %s/%s, want new/ADMIN (overwrite-on-match)", username, role)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("users = %d, want 1", count)
	}
}

func TestEnsureMemoizesWithinRun(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)
	ctx := context.Background()
	r := seed.NewResolver(db)

	if _, _, err := r.Ensure(ctx, seed.KindUser, "a@example.com", []any{
		"first", "hash", "USER", "2025-01-01", "2025-01-01",
	}); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	// Same resolver, same key: even under OVERWRITE the second call must not
	// re-issue a write.
	if _, created, err := r.Ensure(ctx, seed.KindUser, "a@example.com", []any{
		"second", "hash", "USER", "2025-01-01", "2025-01-01",
	}); err != nil || created {
		t.Fatalf("memoized ensure: created=%v err=%v", created, err)
	}

	var username string
	if err := db.QueryRow(`SELECT username FROM users WHERE email = 'a@example.com'`).Scan(&username); err != nil {
		t.Fatalf("query: %v", err)
	}
	if username != "first" {
		t.Errorf("username = %q, want first (no second write)", username)
	}
}

func TestEnsureSingletonHero(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)
	ctx := context.Background()

	vals := []any{"Title A", "Sub", "/a.jpg", "Go", "/go"}
	if _, created, err := seed.NewResolver(db).Ensure(ctx, seed.KindHero, "", vals); err != nil || !created {
		t.Fatalf("first ensure: created=%v err=%v", created, err)
	}

	vals2 := []any{"Title B", "Sub", "/b.jpg", "Go", "/go"}
	if _, created, err := seed.NewResolver(db).Ensure(ctx, seed.KindHero, "", vals2); err != nil || created {
		t.Fatalf("second ensure: created=%v err=%v", created, err)
	}

	var count int
	var title string
	if err := db.QueryRow(`SELECT COUNT(*) FROM hero_sections`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if err := db.QueryRow(`SELECT title FROM hero_sections`).Scan(&title); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 1 || title != "Title B" {
		t.Errorf("count=%d title=%q, want one row with Title B", count, title)
	}
}

func TestEnsureBrandSingletonFixedID(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)
	ctx := context.Background()

	if _, _, err := seed.NewResolver(db).Ensure(ctx, seed.KindBrand, "1", []any{"Maison", "", ""}); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if _, _, err := seed.NewResolver(db).Ensure(ctx, seed.KindBrand, "1", []any{"Maison Bertrand", "tag", "/logo.svg"}); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	var count int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM brands`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("brands = %d, want exactly 1", count)
	}
}

func TestFind(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)
	ctx := context.Background()
	r := seed.NewResolver(db)

	if _, found, err := r.Find(ctx, seed.KindCategory, "nope"); err != nil || found {
		t.Fatalf("find missing: found=%v err=%v", found, err)
	}

	id, _, err := r.Ensure(ctx, seed.KindCategory, "homme", []any{"Homme", nil})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}

	got, found, err := r.Find(ctx, seed.KindCategory, "homme")
	if err != nil || !found || got != id {
		t.Errorf("find = (%d, %v, %v), want (%d, true, nil)", got, found, err, id)
	}
}

func TestEnsureRejectsBadValueCount(t *testing.T) {
	db := testhelpers.NewMigratedDB(t)
	if _, _, err := seed.NewResolver(db).Ensure(context.Background(), seed.KindCategory, "x", []any{"only-name"}); err == nil {
		t.Fatal("expected value-count error")
	}
}
