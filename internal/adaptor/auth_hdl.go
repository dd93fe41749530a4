package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	debug   bool
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, cfg *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		debug:   cfg.App.Debug,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseCreated(w, "verification code sent to your email", user)
}

// SignupVerifyCode handles POST /api/v1/auth/signup-verify-code
func (h *AuthHandler) SignupVerifyCode(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.SignupVerifyCode(r.Context(), &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}

// TourGuideSignup handles POST /api/v1/auth/tour-guide-signup (protected)
func (h *AuthHandler) TourGuideSignup(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.TourGuideSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.TourGuideSignup(r.Context(), userID, &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "tour guide request submitted", user)
}

// ForgotPassword handles POST /api/v1/auth/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ForgotPassword(r.Context(), &req); err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "reset code sent to your email", nil)
}

// VerifyResetCode handles POST /api/v1/auth/verify-reset-code
func (h *AuthHandler) VerifyResetCode(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.VerifyResetCode(r.Context(), &req); err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ResetPassword handles PUT /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.ResetPassword(r.Context(), &req)
	if err != nil {
		utils.WriteError(w, h.log, h.debug, err)
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}
