package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/clothing-store/internal/config"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// CartSessionCookie holds the signed key of an anonymous visitor's cart.
	CartSessionCookie = "cart_session"
	// SharedCartSessionKey is the single key used under the shared anonymous cart policy.
	SharedCartSessionKey = "shared"
)

type cartSessionKey struct{}

// CartSession gives every request an anonymous cart session key.
type CartSession struct {
	key    []byte
	ttl    time.Duration
	secure bool
	shared bool
}

func NewCartSession(cfg *config.Security) *CartSession {
	return &CartSession{
		key:    []byte(cfg.CartSessionKey),
		ttl:    cfg.CartSessionTTL(),
		secure: cfg.SecureCookies,
		shared: cfg.AnonymousCartPolicy == config.AnonymousCartShared,
	}
}

// CartSessionFromContext returns the session key attached by CartSession.Handle.
func CartSessionFromContext(ctx context.Context) string {
	if key, ok := ctx.Value(cartSessionKey{}).(string); ok {
		return key
	}

	return ""
}

// WithCartSession stores a session key on ctx.
func WithCartSession(ctx context.Context, sessionKey string) context.Context {
	return context.WithValue(ctx, cartSessionKey{}, sessionKey)
}

func (c *CartSession) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if c.shared {
			next.ServeHTTP(w, r.WithContext(WithCartSession(r.Context(), SharedCartSessionKey)))
			return
		}

		logger := LoggerFromContext(r.Context())

		sessionKey, ok := c.read(r)
		if !ok {
			sessionKey = uuid.NewString()

			if err := c.write(w, sessionKey); err != nil {
				logger.Error("Failed to issue cart session", slog.Any("error", err))
			} else {
				logger.Debug("Issued new cart session")
			}
		}

		next.ServeHTTP(w, r.WithContext(WithCartSession(r.Context(), sessionKey)))
	})
}

func (c *CartSession) read(r *http.Request) (string, bool) {

	cookie, err := r.Cookie(CartSessionCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	claims := &models.CartSessionClaims{}

	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
		return c.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid || claims.SessionKey == "" {
		return "", false
	}

	return claims.SessionKey, true
}

// Sign produces the cookie value for sessionKey.
func (c *CartSession) Sign(sessionKey string) (string, error) {
	now := time.Now()

	claims := &models.CartSessionClaims{
		SessionKey: sessionKey,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

func (c *CartSession) write(w http.ResponseWriter, sessionKey string) error {

	value, err := c.Sign(sessionKey)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CartSessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
