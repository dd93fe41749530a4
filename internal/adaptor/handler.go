package adaptor

import (
	"net/http"

	"tour-booking/internal/data/query"
	"tour-booking/internal/dto/response"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Tour     *TourHandler
	Review   *ReviewHandler
	Booking  *BookingHandler
	Wishlist *WishlistHandler
	Contact  *ContactHandler
}

func NewHandler(service *usecase.Service, cfg *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, cfg, log),
		User:     NewUserHandler(service.User, cfg, log),
		Tour:     NewTourHandler(service.Tour, cfg, log),
		Review:   NewReviewHandler(service.Review, cfg, log),
		Booking:  NewBookingHandler(service.Booking, cfg, log),
		Wishlist: NewWishlistHandler(service.Wishlist, cfg, log),
		Contact:  NewContactHandler(service.Contact, cfg, log),
	}
}

// uuidParam parses a chi route parameter as a UUID; reports whether it was
// valid after writing the 400 itself when it was not.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid id format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// callerID pulls the authenticated user out of the request context.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}

// writeList applies the fields projection, if requested, to a list payload.
func writeList[T any](w http.ResponseWriter, list *response.ListResponse[T], opts *query.Options) {
	if len(opts.Fields) == 0 {
		utils.ResponseSuccess(w, "success", list)
		return
	}

	utils.ResponseSuccess(w, "success", response.NewListResponse(
		query.ProjectAll(list.Data, opts.Fields), list.Pagination,
	))
}
