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

func wireContact(
	r chi.Router,
	contactHandler *adaptor.ContactHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/v1/contact", contactHandler.Create)

	// ==================== ADMIN INBOX ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Protect(repo.User, config.JWT, config.App.Debug, log))
		r.Use(middleware.AllowedTo(entity.RoleAdmin))

		r.Get("/api/v1/contact/admin", contactHandler.GetAll)
		r.Get("/api/v1/contact/admin/{id}", contactHandler.GetOne)
		r.Post("/api/v1/contact/admin/{messageId}/reply", contactHandler.Reply)
		r.Delete("/api/v1/contact/admin/{id}", contactHandler.Delete)
	})
}
