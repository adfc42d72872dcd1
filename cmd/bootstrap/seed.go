package bootstrap

import (
	"context"
	"log/slog"

	"levelup-cart/internal/domain/user"
	"levelup-cart/internal/infra"
	"levelup-cart/internal/infra/repository"
	"levelup-cart/internal/pkg/clock"
	"levelup-cart/internal/pkg/config"
	"levelup-cart/internal/pkg/errs"
	"levelup-cart/internal/pkg/password"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(
		LoadCatalogSeed,
		SeedAdminUser,
	),
)

func LoadCatalogSeed(cfg config.Config, products *repository.ProductRepository, rewards *repository.RewardRepository, logger *slog.Logger) error {
	if err := repository.LoadCatalog(context.Background(), cfg.Catalog.Path, products, rewards); err != nil {
		return errs.Wrap(err, "load catalog seed")
	}
	logger.Info("catalog loaded", "path", cfg.Catalog.Path)
	return nil
}

// SeedAdminUser guarantees at least one admin account exists. A duplicate
// means a previous run already seeded it, which is fine.
func SeedAdminUser(cfg config.Config, users *repository.UserRepository, clk clock.Clock, logger *slog.Logger) error {
	email, err := user.NewEmail(cfg.Seed.AdminEmail)
	if err != nil {
		return errs.Wrap(err, "invalid SEED_ADMIN_EMAIL")
	}
	rut, err := user.NewRut(cfg.Seed.AdminRut)
	if err != nil {
		return errs.Wrap(err, "invalid SEED_ADMIN_RUT")
	}

	hash, err := password.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return errs.Wrap(err, "hash admin password")
	}

	admin := user.NewUser(cfg.Seed.AdminName, email, rut, hash, user.RoleAdmin, clk.Now())
	if err := users.Create(context.Background(), admin); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil
		}
		return errs.Wrap(err, "seed admin user")
	}

	logger.Info("admin user seeded", "email", email.Value())
	return nil
}
