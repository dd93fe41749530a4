package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type WishlistHandler struct {
	service usecase.WishlistService
	debug   bool
	log     *zap.Logger
}

func NewWishlistHandler(service usecase.WishlistService, cfg *utils.Config, log *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		debug:   cfg.App.Debug,
		log:     log.With(zap.String("handler", "wishlist")),
	}
}

// Add handles POST /api/v1/wishlist (user)
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.WishlistAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Add(r.Context(), userID, &req); err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "tour added to your wishlist", nil)
}

// Remove handles DELETE /api/v1/wishlist/{tourId} (user)
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	tourID, ok := uuidParam(w, r, "tourId")
	if !ok {
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), userID, tourID); err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "tour removed from your wishlist", nil)
}

// Get handles GET /api/v1/wishlist (user)
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	tours, err := h.service.Get(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", tours)
}
