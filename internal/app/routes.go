package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware("booking-engine-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Get("/movies", app.GetMoviesHandler)
	r.Get("/movies/{movieID}", app.GetMovieHandler)
	r.Get("/showtimes", app.GetShowtimesHandler)

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Post("/reservations", app.CreateReservationHandler)
		r.Get("/reservations/my", app.GetUserReservationsHandler)
		r.Put("/reservations/{groupID}", app.UpdateReservationHandler)
		r.Delete("/reservations/{groupID}", app.CancelReservationHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.requireAdmin)

			r.Get("/reservations/admin/active", app.GetActiveReservationsHandler)
			r.Delete("/reservations/admin/{groupID}", app.AdminDeleteReservationHandler)

			r.Post("/movies", app.CreateMovieHandler)

			r.Post("/showtimes", app.CreateShowtimeHandler)
			r.Delete("/showtimes/{showtimeID}", app.DeleteShowtimeHandler)

			r.Route("/halls", func(r chi.Router) {
				r.Get("/", app.GetHallsHandler)
				r.Post("/", app.CreateHallHandler)
				r.Get("/{hallID}", app.GetHallHandler)
				r.Patch("/{hallID}", app.UpdateHallHandler)
				r.Delete("/{hallID}", app.DeleteHallHandler)

				r.Get("/{hallID}/seats", app.GetSeatsByHallHandler)
				r.Get("/{hallID}/seats/{seatNumber}", app.GetSeatHandler)
				r.Patch("/{hallID}/seats/{seatNumber}/status", app.UpdateSeatStatusHandler)
			})
		})
	})

	return r
}
