package components

import (
	"tracking-number-generator/internal/handler"
	"tracking-number-generator/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTrackingNumberHandler,
		api.NewHealthHandler,
	),
	fx.Invoke(handler.NewRouter),
)
