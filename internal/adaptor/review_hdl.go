package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/query"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	debug   bool
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, cfg *utils.Config, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		debug:   cfg.App.Debug,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetAll handles GET /api/v1/reviews (public)
func (h *ReviewHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	opts := query.Parse(r.URL.Query())

	list, err := h.service.GetAll(r.Context(), opts)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	writeList(w, list, opts)
}

// GetOne handles GET /api/v1/reviews/{id} (public)
func (h *ReviewHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	review, err := h.service.GetOne(r.Context(), id)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// Create handles POST /api/v1/reviews (user)
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// Update handles PUT /api/v1/reviews/{id} (owner)
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.Update(r.Context(), id, userID, &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// Delete handles DELETE /api/v1/reviews/{id} (owner or admin)
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	if err := h.service.Delete(r.Context(), id, userID, entity.UserRole(role)); err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
