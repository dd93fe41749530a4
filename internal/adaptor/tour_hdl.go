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

type TourHandler struct {
	service usecase.TourService
	debug   bool
	log     *zap.Logger
}

func NewTourHandler(service usecase.TourService, cfg *utils.Config, log *zap.Logger) *TourHandler {
	return &TourHandler{
		service: service,
		debug:   cfg.App.Debug,
		log:     log.With(zap.String("handler", "tour")),
	}
}

// GetAll handles GET /api/v1/tours (public)
func (h *TourHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	opts := query.Parse(r.URL.Query())

	list, err := h.service.GetAll(r.Context(), opts)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	writeList(w, list, opts)
}

// GetOne handles GET /api/v1/tours/{id} (public). ?reviews=true embeds the
// tour's reviews.
func (h *TourHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	withReviews := r.URL.Query().Get("reviews") == "true"

	tour, err := h.service.GetOne(r.Context(), id, withReviews)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", tour)
}

// Create handles POST /api/v1/tours (tour guide)
func (h *TourHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.CreateTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tour, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseCreated(w, "tour request submitted for approval", tour)
}

// Update handles PUT /api/v1/tours/{id} (owner or admin)
func (h *TourHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	var req request.UpdateTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tour, err := h.service.Update(r.Context(), id, userID, entity.UserRole(role), &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", tour)
}

// Delete handles DELETE /api/v1/tours/{id} (admin)
func (h *TourHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetPendingRequests handles GET /api/v1/tours/admin/requests (admin)
func (h *TourHandler) GetPendingRequests(w http.ResponseWriter, r *http.Request) {
	tours, err := h.service.GetPendingRequests(r.Context())
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", tours)
}

// ApproveRequest handles PUT /api/v1/tours/admin/requests/approve/{tourId} (admin)
func (h *TourHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "tourId")
	if !ok {
		return
	}

	tour, err := h.service.ApproveRequest(r.Context(), id)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "tour request has been approved", tour)
}

// RejectRequest handles PUT /api/v1/tours/admin/requests/reject/{tourId} (admin)
func (h *TourHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "tourId")
	if !ok {
		return
	}

	tour, err := h.service.RejectRequest(r.Context(), id)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "tour request has been rejected", tour)
}
