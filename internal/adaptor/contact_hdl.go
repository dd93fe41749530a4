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

type ContactHandler struct {
	service usecase.ContactService
	debug   bool
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, cfg *utils.Config, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		debug:   cfg.App.Debug,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// Create handles POST /api/v1/contact (public)
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ContactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	msg, err := h.service.Create(r.Context(), &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseCreated(w, "your message has been sent", msg)
}

// GetAll handles GET /api/v1/contact/admin (admin)
func (h *ContactHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	opts := query.Parse(r.URL.Query())

	list, err := h.service.GetAll(r.Context(), opts)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	writeList(w, list, opts)
}

// GetOne handles GET /api/v1/contact/admin/{id} (admin)
func (h *ContactHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	msg, err := h.service.GetOne(r.Context(), id)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", msg)
}

// Reply handles POST /api/v1/contact/admin/{messageId}/reply (admin)
func (h *ContactHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "messageId")
	if !ok {
		return
	}

	var req request.ContactReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	msg, err := h.service.Reply(r.Context(), id, &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "reply sent to the user", msg)
}

// Delete handles DELETE /api/v1/contact/admin/{id} (admin)
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
