package components

import (
	"cinemaplus/internal/handler"
	"cinemaplus/internal/handler/api"
	"cinemaplus/internal/handler/middleware"
	"cinemaplus/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewShowtimeHandler,
		api.NewAdminHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
		func(b *api.BookingHandler, s *api.ShowtimeHandler, a *api.AdminHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Showtime: s, Admin: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
