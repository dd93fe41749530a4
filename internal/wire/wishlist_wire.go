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

func wireWishlist(
	r chi.Router,
	wishlistHandler *adaptor.WishlistHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Protect(repo.User, config.JWT, config.App.Debug, log))
		r.Use(middleware.AllowedTo(entity.RoleUser))

		r.Post("/api/v1/wishlist", wishlistHandler.Add)
		r.Get("/api/v1/wishlist", wishlistHandler.Get)
		r.Delete("/api/v1/wishlist/{tourId}", wishlistHandler.Remove)
	})
}
