package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	"github.com/google/uuid"
)

const TestEmail = "test@example.com"

func newLoggedRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(context.WithValue(req.Context(), middleware.LoggerKey, logger))
}

// CreateTestRequestWithContext builds a request carrying a customer principal.
func CreateTestRequestWithContext(method, target string, body io.Reader, userID uuid.UUID, pathParams map[string]string) *http.Request {
	return CreateTestRequestWithClaims(method, target, body, &models.Claims{UserID: userID, Username: "tester", Email: TestEmail}, pathParams)
}

func CreateTestRequestWithClaims(method, target string, body io.Reader, claims *models.Claims, pathParams map[string]string) *http.Request {
	req := newLoggedRequest(method, target, body, pathParams)
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)

	return req.WithContext(ctx)
}

// CreateAdminRequest builds a request whose principal has admin rights.
func CreateAdminRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	return CreateTestRequestWithClaims(method, target, body, &models.Claims{UserID: uuid.New(), Username: "admin", Email: TestEmail, IsAdmin: true}, pathParams)
}

// CreateTestRequestWithoutContext builds an anonymous request without a cart session.
func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	return CreateAnonymousRequest(method, target, body, "", pathParams)
}

func CreateAnonymousRequest(method, target string, body io.Reader, sessionKey string, pathParams map[string]string) *http.Request {
	req := newLoggedRequest(method, target, body, pathParams)
	if sessionKey == "" {
		return req
	}

	return req.WithContext(middleware.WithCartSession(req.Context(), sessionKey))
}
