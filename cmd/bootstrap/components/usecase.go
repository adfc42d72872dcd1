package components

import (
	"levelup-cart/internal/pkg/clock"
	"levelup-cart/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewCartUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
