// Package seed implements the idempotent fixture-seeding engine: natural-key
// resolution, dependency-ordered execution, derived-field computation and
// table-emptiness-gated bulk loading. Running it any number of times against
// the same database converges to the same logical state.
//
// The engine is deliberately single-threaded: concurrent runs of the seeder
// against one store are not safe (the emptiness gates are check-then-act) and
// are a documented limitation, not a guarded invariant.
package seed

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/lbertrand/boutique/internal/fixture"
)

// seedTime is the fixed timestamp stamped on every seeded row. Re-runs that
// overwrite a row must not dirty it with a fresh clock reading.
const seedTime = "2025-01-01T00:00:00.000Z"

// Options carries the configurable inputs of a run: the admin identity, the
// shared client password, and the bcrypt cost.
type Options struct {
	AdminEmail     string
	AdminPassword  string
	AdminUsername  string
	ClientPassword string
	BcryptCost     int
	Logger         *slog.Logger
}

// Seeder drives one seeding run over an explicitly passed store handle.
type Seeder struct {
	db     *sql.DB
	res    *Resolver
	loader *Loader
	opts   Options
	fx     *fixture.Dataset
	log    *slog.Logger
}

// New creates a seeder for the given dataset. The handle is injected, never
// ambient, so the engine runs against an in-memory store in tests.
func New(db *sql.DB, opts Options, fx *fixture.Dataset) *Seeder {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Seeder{
		db:     db,
		res:    NewResolver(db),
		loader: NewLoader(db),
		opts:   opts,
		fx:     fx,
		log:    log,
	}
}

// Run normalizes the dataset, validates the group graph, and executes every
// group in dependency order. Store errors abort the run; missing fixture
// references degrade to skips at the smallest possible granularity.
func (s *Seeder) Run(ctx context.Context) error {
	s.fx.Normalize()
	return Execute(ctx, s.groups())
}

// groups declares the seeding DAG. The declaration order is the documented
// run order; Needs entries make the foreign-key prerequisites explicit so the
// executor can validate them up front.
func (s *Seeder) groups() []Group {
	return []Group{
		{Name: "admin-user", Run: s.seedAdmin},
		{Name: "client-users", Run: s.seedClients},
		{Name: "brand", Run: s.seedBrand},
		{Name: "hero", Run: s.seedHero},
		{Name: "about", Run: s.seedAbout},
		{Name: "services", Run: s.seedServices},
		{Name: "categories", Run: s.seedCategories},
		{Name: "products", Needs: []string{"categories"}, Run: s.seedProducts},
		{Name: "campaigns", Needs: []string{"categories", "products"}, Run: s.seedCampaigns},
		{Name: "orders", Needs: []string{"client-users", "products"}, Run: s.seedOrders},
		{Name: "signup-requests", Needs: []string{"admin-user"}, Run: s.seedSignupRequests},
		{Name: "audit-logs", Needs: []string{"admin-user"}, Run: s.seedAuditLogs},
		{Name: "inbound-emails", Run: s.seedInboundEmails},
		{Name: "legal-content", Run: s.seedLegal},
		{Name: "contact-messages", Run: s.seedContactMessages},
		{Name: "footer", Run: s.seedFooter},
		{Name: "notifications", Run: s.seedNotifications},
		{Name: "wishlist", Needs: []string{"client-users", "products"}, Run: s.seedWishlist},
		{Name: "cart", Needs: []string{"client-users", "products"}, Run: s.seedCart},
	}
}
