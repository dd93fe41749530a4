package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/query"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/payment"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	gateway payment.Gateway
	debug   bool
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, cfg *utils.Config, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		debug:   cfg.App.Debug,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// WithGateway attaches the payment gateway used for webhook verification.
func (h *BookingHandler) WithGateway(gateway payment.Gateway) *BookingHandler {
	h.gateway = gateway
	return h
}

// AddDetails handles POST /api/v1/booking/booking-details (user)
func (h *BookingHandler) AddDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.BookingDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AddDetails(r.Context(), userID, &req); err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Checkout handles POST /api/v1/booking/checkout (user)
func (h *BookingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.BookingCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Checkout(r.Context(), userID, &req); err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CheckoutSession handles GET /api/v1/booking/checkout-session (user)
func (h *BookingHandler) CheckoutSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	session, err := h.service.CheckoutSession(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// Webhook handles POST /webhook-checkout. The raw body is verified against
// the provider signature; a bad signature is a 400. Once the signature
// checks out the endpoint always answers 201 so the provider stops retrying,
// and resolution failures are logged and counted instead of surfaced.
func (h *BookingHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.ResponseBadRequest(w, "cannot read webhook body", nil)
		return
	}

	event, err := h.gateway.VerifyEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		h.log.Warn("Webhook signature verification failed", zap.Error(err))
		utils.ResponseBadRequest(w, "webhook signature verification failed", nil)
		return
	}

	if event != nil {
		if err := h.service.ConfirmCheckout(r.Context(), event); err != nil {
			h.log.Error("Failed to resolve checkout webhook",
				zap.Error(err),
				zap.String("reference_id", event.ReferenceID),
			)
			middleware.IncWebhookFailure()
		}
	}

	utils.ResponseCreated(w, "you pay for tour successfully, have a nice trip", nil)
}

// Cancel handles DELETE /api/v1/booking/{id}/cancel (owner)
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.service.Cancel(r.Context(), id, userID); err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "booking cancelled", nil)
}

// GetAll handles GET /api/v1/booking (admin)
func (h *BookingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	opts := query.Parse(r.URL.Query())

	list, err := h.service.GetAll(r.Context(), opts)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	writeList(w, list, opts)
}

// GetOne handles GET /api/v1/booking/{id} (owner or admin)
func (h *BookingHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	booking, err := h.service.GetOne(r.Context(), id, userID, entity.UserRole(role))
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// Update handles PUT /api/v1/booking/{id} (owner or admin)
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.Update(r.Context(), id, userID, entity.UserRole(role), &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// Delete handles DELETE /api/v1/booking/{id} (admin)
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Past handles GET /api/v1/booking/past (user)
func (h *BookingHandler) Past(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.Past(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// Upcoming handles GET /api/v1/booking/upcoming (user)
func (h *BookingHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.Upcoming(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}
