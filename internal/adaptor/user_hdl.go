package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/data/query"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	debug   bool
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, cfg *utils.Config, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		debug:   cfg.App.Debug,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetAll handles GET /api/v1/users (admin)
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	opts := query.Parse(r.URL.Query())

	list, err := h.service.GetAll(r.Context(), opts)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	writeList(w, list, opts)
}

// GetOne handles GET /api/v1/users/{id} (admin)
func (h *UserHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	user, err := h.service.GetOne(r.Context(), id)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// Create handles POST /api/v1/users (admin)
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseCreated(w, "success", user)
}

// Update handles PUT /api/v1/users/{id} (admin)
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// Delete handles DELETE /api/v1/users/{id} (admin). Deleting a tour guide
// removes their tours as well.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// UpdatePassword handles PUT /api/v1/users/update-password/{id} (admin)
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdatePassword(r.Context(), id, &req); err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetGuideRequests handles GET /api/v1/users/tour-guide-requests (admin)
func (h *UserHandler) GetGuideRequests(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetGuideRequests(r.Context())
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// ApproveGuideRequest handles PUT /api/v1/users/tour-guide-requests/approve/{userId} (admin)
func (h *UserHandler) ApproveGuideRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "userId")
	if !ok {
		return
	}

	user, err := h.service.ApproveGuideRequest(r.Context(), id)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "Tour guide joining request has been approved", user)
}

// RejectGuideRequest handles PUT /api/v1/users/tour-guide-requests/reject/{userId} (admin)
func (h *UserHandler) RejectGuideRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "userId")
	if !ok {
		return
	}

	user, err := h.service.RejectGuideRequest(r.Context(), id)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "Tour guide joining request has been rejected", user)
}

// GetMe handles GET /api/v1/users/getMe
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetOne(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// UpdateMe handles PUT /api/v1/users/updateMe
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.UpdateMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.UpdateMe(r.Context(), userID, &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// ChangeMyPassword handles PUT /api/v1/users/change-my-password
func (h *UserHandler) ChangeMyPassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.ChangeMyPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.ChangeMyPassword(r.Context(), userID, &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}

// Logout handles POST /api/v1/users/logout
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.service.Logout(r.Context(), userID); err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "logged out successfully", nil)
}
