package middleware

import (
	"net/http"
	"strings"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// Protect validates the bearer token, loads the user and puts id+role in the
// request context. Tokens issued before the last password change are rejected.
func Protect(userRepo repository.UserRepository, cfg utils.JWTConfig, debug bool, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "you are not logged in, please login first")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			userID, issuedAt, err := utils.VerifyToken(parts[1], cfg)
			if err != nil {
				utils.WriteError(w, logger, debug, err)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load token user", zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				utils.ResponseUnauthorized(w, "the user belonging to this token no longer exists")
				return
			}

			if user.PasswordChangedAt != nil && user.PasswordChangedAt.After(issuedAt) {
				utils.ResponseUnauthorized(w, "password was changed recently, please login again")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AllowedTo passes when the caller's role matches any of the given roles.
func AllowedTo(roles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "you are not logged in, please login first")
				return
			}

			for _, allowed := range roles {
				if entity.UserRole(role) == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			utils.ResponseForbidden(w, "you are not allowed to perform this action")
		})
	}
}
