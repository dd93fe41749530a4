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

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== SELF-SERVICE ROUTES (any logged in user) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Protect(repo.User, config.JWT, config.App.Debug, log))

		r.Get("/api/v1/users/getMe", userHandler.GetMe)
		r.Put("/api/v1/users/updateMe", userHandler.UpdateMe)
		r.Put("/api/v1/users/change-my-password", userHandler.ChangeMyPassword)
		r.Post("/api/v1/users/logout", userHandler.Logout)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Protect(repo.User, config.JWT, config.App.Debug, log))
		r.Use(middleware.AllowedTo(entity.RoleAdmin))

		r.Get("/api/v1/users/tour-guide-requests", userHandler.GetGuideRequests)
		r.Put("/api/v1/users/tour-guide-requests/approve/{userId}", userHandler.ApproveGuideRequest)
		r.Put("/api/v1/users/tour-guide-requests/reject/{userId}", userHandler.RejectGuideRequest)

		r.Put("/api/v1/users/update-password/{id}", userHandler.UpdatePassword)

		r.Get("/api/v1/users", userHandler.GetAll)
		r.Post("/api/v1/users", userHandler.Create)
		r.Get("/api/v1/users/{id}", userHandler.GetOne)
		r.Put("/api/v1/users/{id}", userHandler.Update)
		r.Delete("/api/v1/users/{id}", userHandler.Delete)
	})
}
