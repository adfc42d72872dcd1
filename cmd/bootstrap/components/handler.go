package components

import (
	"levelup-cart/internal/handler"
	"levelup-cart/internal/handler/api"
	"levelup-cart/internal/handler/middleware"
	"levelup-cart/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewCartHandler,
		api.NewCatalogHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
