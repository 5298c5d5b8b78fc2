package utils_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/clothing-store/internal/utils"
	appErrors "github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brandRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

func TestParseAndValidate(t *testing.T) {
	validate := validator.New()

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/brands", strings.NewReader(`{"name":"Nike","slug":"nike"}`))
		recorder := httptest.NewRecorder()

		var dest brandRequest
		ok := utils.ParseAndValidate(req, recorder, &dest, validate)

		assert.True(t, ok)
		assert.Equal(t, "Nike", dest.Name)
	})

	t.Run("Failure - Empty Body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/brands", strings.NewReader(""))
		recorder := httptest.NewRecorder()

		var dest brandRequest
		ok := utils.ParseAndValidate(req, recorder, &dest, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "BAD_REQUEST")
	})

	t.Run("Failure - Missing Field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/brands", strings.NewReader(`{"name":"Nike"}`))
		recorder := httptest.NewRecorder()

		var dest brandRequest
		ok := utils.ParseAndValidate(req, recorder, &dest, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Field Slug is required")
	})
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query      string
		page, size int
	}{
		{"", 1, 10},
		{"?page=3&size=20", 3, 20},
		{"?page=-1&size=500", 1, 10},
		{"?page=abc", 1, 10},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/profile/"+tt.query, nil)
		page, size := utils.ParsePagination(req)
		assert.Equal(t, tt.page, page, tt.query)
		assert.Equal(t, tt.size, size, tt.query)
	}
}

type checkoutForm struct {
	FirstName  string `json:"first_name" validate:"required"`
	BuyingType string `json:"buying_type" validate:"oneof=self delivery"`
	Internal   string `json:"-" validate:"required"`
}

func TestValidationAppError(t *testing.T) {
	err := utils.NewValidator().Struct(checkoutForm{BuyingType: "drone"})
	require.Error(t, err)

	validationErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	appErr := utils.ValidationAppError(validationErrs)

	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, []string{"Internal", "buying_type", "first_name"}, appErr.FieldNames())
	assert.Equal(t, "Field first_name is required", appErr.Fields["first_name"])
	assert.Equal(t, "Field buying_type must be one of: self delivery", appErr.Fields["buying_type"])
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	t.Run("Valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/orders/"+id.String()+"/status", nil)
		req.SetPathValue("id", id.String())

		got, err := utils.ParseID(req, "id")

		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("Malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/orders/abc/status", nil)
		req.SetPathValue("id", "abc")

		_, err := utils.ParseID(req, "id")

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeBadRequest))
	})

	t.Run("Missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/", nil)

		_, err := utils.ParseID(req, "id")

		assert.Error(t, err)
	})
}
