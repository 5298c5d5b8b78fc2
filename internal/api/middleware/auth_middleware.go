package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	"github.com/aaravmahajanofficial/clothing-store/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenCookie carries the JWT for browser clients.
const AccessTokenCookie = "access_token"

type contextKey uuid.UUID

var UserContextKey = contextKey(uuid.New())

type AuthMiddleware struct {
	jwtKey []byte
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {

	return &AuthMiddleware{jwtKey: jwtKey}

}

// ClaimsFromContext returns the authenticated principal, if any.
func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)
	return claims, ok && claims != nil
}

// tokenFromRequest reads "Authorization: Bearer <token>" first and falls back to the cookie.
func tokenFromRequest(r *http.Request) (string, *errors.AppError) {

	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")

		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return "", errors.UnauthorizedError("Invalid authorization format")
		}

		return tokenParts[1], nil
	}

	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", errors.UnauthorizedError("Authorization header is required")
}

func (m *AuthMiddleware) parse(logger *slog.Logger, tokenString string) (*models.Claims, *errors.AppError) {

	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			logger.Error("Unexpected signing method used in JWT", slog.Any("alg", t.Header["alg"]))
			return nil, errors.BadRequestError("unexpected signing method")
		}
		return m.jwtKey, nil
	})

	if err != nil {
		logger.Warn("JWT parsing failed", slog.String("error", err.Error()))
		return nil, errors.UnauthorizedError("Invalid or expired token")
	}

	if !token.Valid {
		logger.Warn("Invalid token")
		return nil, errors.UnauthorizedError("Invalid token")
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		logger.Warn("Expired token", slog.String("userId", claims.UserID.String()))
		return nil, errors.UnauthorizedError("Token expired")
	}

	return claims, nil
}

func withClaims(r *http.Request, logger *slog.Logger, claims *models.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), UserContextKey, claims)
	ctx = withLogger(ctx, logger.With(slog.String("userId", claims.UserID.String())))

	return r.WithContext(ctx)
}

// Authenticate rejects requests without a valid token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		tokenString, appErr := tokenFromRequest(r)
		if appErr != nil {
			logger.Warn("Missing or malformed credentials", slog.String("reason", appErr.Message))
			response.Error(w, appErr)
			return
		}

		claims, appErr := m.parse(logger, tokenString)
		if appErr != nil {
			response.Error(w, appErr)
			return
		}

		r = withClaims(r, logger, claims)
		LoggerFromContext(r.Context()).Info("User authenticated")

		next.ServeHTTP(w, r)
	}
}

// Identify attaches the principal when a valid token is present and lets anonymous visitors through.
func (m *AuthMiddleware) Identify(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		tokenString, appErr := tokenFromRequest(r)
		if appErr != nil {
			next.ServeHTTP(w, r)
			return
		}

		claims, appErr := m.parse(logger, tokenString)
		if appErr != nil {
			logger.Debug("Continuing anonymously", slog.String("reason", appErr.Message))
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, withClaims(r, logger, claims))
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		if !claims.IsAdmin {
			logger.Warn("Admin route denied", slog.String("username", claims.Username))
			response.Error(w, errors.ForbiddenError("Admin privileges required"))
			return
		}

		next.ServeHTTP(w, r)
	}
}
