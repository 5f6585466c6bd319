package components

import (
	"cleanmarket/internal/handler"
	"cleanmarket/internal/handler/api"
	"cleanmarket/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewPromocodeHandler,
		api.NewBookingHandler,
		api.NewWalletHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
