package components

import (
	repo_impl "levelup-cart/internal/infra/repository"
	"levelup-cart/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repo_impl.NewProductRepository,
		repo_impl.NewRewardRepository,
		repo_impl.NewUserRepository,
		fx.Annotate(
			func(r *repo_impl.ProductRepository) *repo_impl.ProductRepository { return r },
			fx.As(new(usecase.ProductRepository)),
		),
		fx.Annotate(
			func(r *repo_impl.RewardRepository) *repo_impl.RewardRepository { return r },
			fx.As(new(usecase.RewardRepository)),
		),
		fx.Annotate(
			func(r *repo_impl.UserRepository) *repo_impl.UserRepository { return r },
			fx.As(new(usecase.UserRepository)),
		),
	),
)
