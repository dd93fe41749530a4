package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// POST /webhook-checkout - provider callback; unauthenticated, the raw
	// body is verified against the provider signature instead
	r.Post("/webhook-checkout", bookingHandler.Webhook)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Protect(repo.User, config.JWT, config.App.Debug, log))

		// ==================== CHECKOUT WORKFLOW (user) ====================
		r.With(middleware.AllowedTo(entity.RoleUser)).
			Post("/api/v1/booking/booking-details", bookingHandler.AddDetails)
		r.With(middleware.AllowedTo(entity.RoleUser)).
			Post("/api/v1/booking/checkout", bookingHandler.Checkout)
		r.With(middleware.AllowedTo(entity.RoleUser)).
			Get("/api/v1/booking/checkout-session", bookingHandler.CheckoutSession)

		// ==================== READ SIDE ====================
		r.With(middleware.AllowedTo(entity.RoleUser)).
			Get("/api/v1/booking/past", bookingHandler.Past)
		r.With(middleware.AllowedTo(entity.RoleUser)).
			Get("/api/v1/booking/upcoming", bookingHandler.Upcoming)
		r.With(middleware.AllowedTo(entity.RoleUser)).
			Delete("/api/v1/booking/{id}/cancel", bookingHandler.Cancel)

		r.With(middleware.AllowedTo(entity.RoleAdmin)).
			Get("/api/v1/booking", bookingHandler.GetAll)

		r.With(middleware.AllowedTo(entity.RoleUser, entity.RoleAdmin)).
			Get("/api/v1/booking/{id}", bookingHandler.GetOne)
		r.With(middleware.AllowedTo(entity.RoleUser, entity.RoleAdmin)).
			Put("/api/v1/booking/{id}", bookingHandler.Update)
		r.With(middleware.AllowedTo(entity.RoleAdmin)).
			Delete("/api/v1/booking/{id}", bookingHandler.Delete)
	})
}
