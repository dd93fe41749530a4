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

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/v1/reviews", reviewHandler.GetAll)
	r.Get("/api/v1/reviews/{id}", reviewHandler.GetOne)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Protect(repo.User, config.JWT, config.App.Debug, log))

		r.With(middleware.AllowedTo(entity.RoleUser)).
			Post("/api/v1/reviews", reviewHandler.Create)

		r.With(middleware.AllowedTo(entity.RoleUser)).
			Put("/api/v1/reviews/{id}", reviewHandler.Update)

		r.With(middleware.AllowedTo(entity.RoleUser, entity.RoleAdmin)).
			Delete("/api/v1/reviews/{id}", reviewHandler.Delete)
	})
}
