package wire

import (
	"net/http"

	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/mailer"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/payment"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts every route.
func Wiring(repo *repository.Repository, gateway payment.Gateway, mail mailer.Mailer, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, gateway, mail, config, logger)
	handler := adaptor.NewHandler(service, config, logger)
	handler.Booking.WithGateway(gateway)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	middleware.RegisterMetrics()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.Metrics)

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireTour(r, handler.Tour, repo, config, logger)
	wireReview(r, handler.Review, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)
	wireWishlist(r, handler.Wishlist, repo, config, logger)
	wireContact(r, handler.Contact, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	// anything unmatched is treated as a caller mistake
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseBadRequest(w, "cannot find this route: "+r.URL.Path, nil)
	})

	return r
}
