package components

import (
	"manuara-reservas/internal/handler"
	"manuara-reservas/internal/handler/api"
	"manuara-reservas/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewAvailabilityHandler,
		api.NewAnalyticsHandler,
		api.NewNotificationHandler,
		api.NewExternalHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
		middleware.NewAPIKeyMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	reservation *api.ReservationHandler,
	availability *api.AvailabilityHandler,
	analytics *api.AnalyticsHandler,
	notification *api.NotificationHandler,
	external *api.ExternalHandler,
) handler.Handlers {
	return handler.Handlers{
		Reservation:  reservation,
		Availability: availability,
		Analytics:    analytics,
		Notification: notification,
		External:     external,
	}
}
