package seed

import (
	"context"
	"fmt"

	"github.com/lbertrand/boutique/internal/domain"
	"github.com/lbertrand/boutique/internal/password"
)

// seedAdmin upserts the back-office admin account. The admin always reflects
// the configured identity, so repeat runs repair a changed email's row set.
func (s *Seeder) seedAdmin(ctx context.Context) error {
	digest, err := password.Hash(s.opts.AdminPassword, s.opts.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, created, err := s.res.Ensure(ctx, KindUser, s.opts.AdminEmail, []any{
		s.opts.AdminUsername, digest, string(domain.RoleAdmin), seedTime, seedTime,
	})
	if err != nil {
		return err
	}
	if created {
		s.log.Info("created admin user", "email", s.opts.AdminEmail)
	}
	return nil
}

// seedClients upserts the fixture client accounts. They share the configured
// client password; the hash is computed once.
func (s *Seeder) seedClients(ctx context.Context) error {
	digest, err := password.Hash(s.opts.ClientPassword, s.opts.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash client password: %w", err)
	}

	for _, u := range s.fx.Clients {
		role := u.Role
		if role == "" {
			role = domain.RoleUser
		}
		if _, _, err := s.res.Ensure(ctx, KindUser, u.Email, []any{
			u.Username, digest, string(role), seedTime, seedTime,
		}); err != nil {
			return err
		}
	}
	return nil
}
