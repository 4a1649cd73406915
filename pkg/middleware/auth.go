package middleware

import (
	"net/http"
	"strings"

	"trip-genie/internal/data/repository"
	"trip-genie/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the bearer session token and puts the tourist
// identity on the request context.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			// Find valid session
			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session",
					zap.String("token", token),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("token", token))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			// Set context with tourist info and token
			ctx := utils.SetUserContext(r.Context(), session.TouristID, "tourist")
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin gates a route group to tourists whose stored role is admin.
func Admin(touristRepo repository.TouristRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Identity was set by AuthSession
			touristID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			tourist, err := touristRepo.FindByID(r.Context(), touristID)
			if err != nil {
				logger.Error("Admin check: failed to get tourist",
					zap.Error(err), zap.String("tourist_id", touristID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if tourist == nil || tourist.Role != "admin" {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("tourist_id", touristID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
