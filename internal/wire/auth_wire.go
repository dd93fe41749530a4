package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/v1/auth/signup", authHandler.Signup)
	r.Post("/api/v1/auth/signup-verify-code", authHandler.SignupVerifyCode)
	r.Post("/api/v1/auth/login", authHandler.Login)
	r.Post("/api/v1/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/v1/auth/verify-reset-code", authHandler.VerifyResetCode)
	r.Put("/api/v1/auth/reset-password", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Protect(repo.User, config.JWT, config.App.Debug, log))

		// POST /api/v1/auth/tour-guide-signup - request the tour guide role
		r.Post("/api/v1/auth/tour-guide-signup", authHandler.TourGuideSignup)
	})
}
