package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lbertrand/boutique/internal/config"
	"github.com/lbertrand/boutique/internal/database"
	"github.com/lbertrand/boutique/internal/fixture"
	"github.com/lbertrand/boutique/internal/seed"
	"github.com/lbertrand/boutique/internal/store"
)

var (
	envFile string
	dbPath  string
)

var rootCmd = &cobra.Command{
	Use:   "boutique-seed",
	Short: "Seed the boutique database with its known-good initial dataset",
	Long: `boutique-seed populates (or repairs) the boutique database: accounts, the
taxonomy tree, the product catalog, orders with computed totals and assorted
content records. Running it any number of times converges to the same logical
state without duplicating rows.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check seed invariants against an existing database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "optional .env file with configuration overrides")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (overrides BOUTIQUE_DB)")
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func openDB() (*sql.DB, config.Config, error) {
	cfg := config.Load(envFile)
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, cfg, fmt.Errorf("open database: %w", err)
	}
	return db, cfg, nil
}

func runSeed(ctx context.Context) error {
	db, cfg, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	s := seed.New(db, seed.Options{
		AdminEmail:     cfg.AdminEmail,
		AdminPassword:  cfg.AdminPassword,
		AdminUsername:  cfg.AdminUsername,
		ClientPassword: cfg.ClientPassword,
		BcryptCost:     cfg.BcryptCost,
	}, fixture.Default())
	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("seed data: %w", err)
	}

	slog.Info("seeding complete", "db", cfg.DBPath)

	// Cleartext credentials are operator convenience only; never in
	// production logs.
	if !cfg.Production() {
		fmt.Printf("admin:  %s / %s\n", cfg.AdminEmail, cfg.AdminPassword)
		fmt.Printf("client: any seeded client email / %s\n", cfg.ClientPassword)
	}
	return nil
}

func runVerify(ctx context.Context) error {
	db, cfg, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	v := store.New(db)
	counts, err := v.Counts(ctx)
	if err != nil {
		return err
	}
	for _, table := range store.SeedTables {
		fmt.Printf("%-18s %d\n", table, counts[table])
	}

	if err := v.Check(ctx); err != nil {
		return fmt.Errorf("integrity check failed: %w", err)
	}
	slog.Info("verification passed", "db", cfg.DBPath)
	return nil
}
