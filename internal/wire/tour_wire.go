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

func wireTour(
	r chi.Router,
	tourHandler *adaptor.TourHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/v1/tours", tourHandler.GetAll)

	// ==================== ADMIN APPROVAL WORKFLOW ====================
	// registered before /{id} so "admin" is not taken for a tour id
	r.Group(func(r chi.Router) {
		r.Use(middleware.Protect(repo.User, config.JWT, config.App.Debug, log))
		r.Use(middleware.AllowedTo(entity.RoleAdmin))

		r.Get("/api/v1/tours/admin/requests", tourHandler.GetPendingRequests)
		r.Put("/api/v1/tours/admin/requests/approve/{tourId}", tourHandler.ApproveRequest)
		r.Put("/api/v1/tours/admin/requests/reject/{tourId}", tourHandler.RejectRequest)
	})

	r.Get("/api/v1/tours/{id}", tourHandler.GetOne)

	// ==================== GUIDE / ADMIN WRITE ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Protect(repo.User, config.JWT, config.App.Debug, log))

		r.With(middleware.AllowedTo(entity.RoleTourGuide)).
			Post("/api/v1/tours", tourHandler.Create)

		r.With(middleware.AllowedTo(entity.RoleTourGuide, entity.RoleAdmin)).
			Put("/api/v1/tours/{id}", tourHandler.Update)

		r.With(middleware.AllowedTo(entity.RoleAdmin)).
			Delete("/api/v1/tours/{id}", tourHandler.Delete)
	})
}
