package components

import (
	"meeting-scheduler/internal/handler"
	"meeting-scheduler/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewReminderHandler,
	),
	fx.Invoke(handler.NewRouter),
)
