package store_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/lbertrand/boutique/internal/fixture"
	"github.com/lbertrand/boutique/internal/seed"
	"github.com/lbertrand/boutique/internal/store"
	"github.com/lbertrand/boutique/internal/testhelpers"
)

func seedDefault(t *testing.T) (*sql.DB, *store.Verifier) {
	t.Helper()
	db := testhelpers.NewMigratedDB(t)
	s := seed.New(db, seed.Options{
		AdminEmail:     "admin@boutique.example",
		AdminPassword:  "admin123!",
		AdminUsername:  "admin",
		ClientPassword: "client123!",
		BcryptCost:     bcrypt.MinCost,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, fixture.Default())
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("seed run: %v", err)
	}
	return db, store.New(db)
}

func TestCountsCoversAllTables(t *testing.T) {
	_, v := seedDefault(t)

	counts, err := v.Counts(context.Background())
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	for _, table := range store.SeedTables {
		if _, ok := counts[table]; !ok {
			t.Errorf("missing count for %s", table)
		}
	}
	if counts["categories"] == 0 {
		t.Error("categories count is zero after seeding")
	}
}

func TestCheckPassesOnSeededDatabase(t *testing.T) {
	_, v := seedDefault(t)
	if err := v.Check(context.Background()); err != nil {
		t.Errorf("check: %v", err)
	}
}

func TestCheckCatchesCorruptedTotal(t *testing.T) {
	db, v := seedDefault(t)

	if _, err := db.Exec(`UPDATE orders SET total_cents = total_cents + 1`); err != nil {
		t.Fatalf("corrupt totals: %v", err)
	}

	err := v.Check(context.Background())
	if err == nil || !strings.Contains(err.Error(), "total") {
		t.Fatalf("err = %v, want inconsistent-total error", err)
	}
}

func TestCheckCatchesCorruptedStockFlag(t *testing.T) {
	db, v := seedDefault(t)

	if _, err := db.Exec(`UPDATE products SET in_stock = NOT in_stock`); err != nil {
		t.Fatalf("corrupt stock flags: %v", err)
	}

	err := v.Check(context.Background())
	if err == nil || !strings.Contains(err.Error(), "stock") {
		t.Fatalf("err = %v, want inconsistent-stock error", err)
	}
}
