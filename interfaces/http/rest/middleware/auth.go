package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"novena-backend/pkg/auth"
	"novena-backend/pkg/common"
	apperrors "novena-backend/pkg/errors"
)

// ipRequestsPerMinute bounds each client IP before any token work happens.
const ipRequestsPerMinute = 100

// Authenticate verifies the bearer token on every request and stores
// the resolved user ID in the request context. Requests are rate
// limited per client IP before any token work happens.
func Authenticate(verifier auth.TokenVerifier, logger *zap.Logger) func(next http.Handler) http.Handler {
	ipLimiter := auth.NewIPRateLimiter(ipRequestsPerMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := getClientIP(r)

			allowed, err := ipLimiter.Allow(r.Context(), clientIP)
			if err != nil {
				logger.Error("rate limiter error", zap.Error(err))
				common.RespondAppError(w, apperrors.NewInternalError("internal server error"))
				return
			}
			if !allowed {
				common.RespondAppError(w, apperrors.NewRateLimitError(ipRequestsPerMinute, "minute"))
				return
			}

			token := extractToken(r)
			if token == "" {
				common.RespondAppError(w, apperrors.NewUnauthorizedError("missing authentication token"))
				return
			}

			userID, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logger.Warn("token verification failed",
					zap.Error(err),
					zap.String("ip", clientIP),
					zap.String("path", r.URL.Path),
				)
				if apperrors.IsUnauthorized(err) {
					common.RespondAppError(w, err)
				} else {
					common.RespondAppError(w, apperrors.NewUnauthorizedError("invalid token"))
				}
				return
			}

			ctx := common.WithUserID(r.Context(), userID)

			logger.Debug("request authenticated",
				zap.String("user_id", userID),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken pulls the bearer token from the Authorization header.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return authHeader
}

// getClientIP extracts the client IP, honoring proxy headers.
func getClientIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
