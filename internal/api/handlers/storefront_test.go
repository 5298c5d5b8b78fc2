package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	"github.com/aaravmahajanofficial/clothing-store/internal/services/mocks"
	"github.com/aaravmahajanofficial/clothing-store/internal/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pageShell decodes the parts of a storefront page that do not hold products.
type pageShell struct {
	Categories []models.NavCategory `json:"categories"`
	Cart       *models.CartBadge    `json:"cart"`
	Category   *models.Category     `json:"category"`
}

func setupStorefrontTest(t *testing.T) (*mocks.CatalogService, *mocks.IdentityService, *handlers.StorefrontHandler) {
	catalog := mocks.NewCatalogService(t)
	identity := mocks.NewIdentityService(t)

	return catalog, identity, handlers.NewStorefrontHandler(catalog, identity)
}

var navFixture = []models.NavCategory{
	{Name: "Shoes", Slug: "shoes", URL: "/category/shoes/", Count: 3},
	{Name: "Hoodies", Slug: "hoodies", URL: "/category/hoodies/", Count: 0},
}

func TestHome(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		catalog, identity, handler := setupStorefrontTest(t)
		cart := &models.Cart{ID: openCart().ID, TotalProducts: 2, FinalPrice: decimal.NewFromInt(80)}
		latest := []models.LatestGroup{
			{Kind: models.VariantPants, Products: []models.Product{}},
			{Kind: models.VariantShoes, Products: []models.Product{airMax()}},
		}

		catalog.On("NavCategories", mock.Anything).Return(navFixture, nil).Once()
		catalog.On("LatestProducts", mock.Anything, "pants").Return(latest, nil).Once()
		identity.On("ResolveCart", mock.Anything, models.CartOwner{SessionKey: "sess-1"}).Return(cart, nil).Once()

		req := testutils.CreateAnonymousRequest(http.MethodGet, "/?respect_to=pants", nil, "sess-1", nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.Home()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"slug":"air-max"`)

		var page pageShell
		decodeEnvelope(t, recorder, &page)
		assert.Equal(t, navFixture, page.Categories)
		require.NotNil(t, page.Cart)
		assert.Equal(t, 2, page.Cart.TotalProducts)
	})

	t.Run("Success - Badge Hidden On Cart Failure", func(t *testing.T) {
		// Arrange
		catalog, identity, handler := setupStorefrontTest(t)

		catalog.On("NavCategories", mock.Anything).Return(navFixture, nil).Once()
		catalog.On("LatestProducts", mock.Anything, "").Return([]models.LatestGroup{}, nil).Once()
		identity.On("ResolveCart", mock.Anything, mock.Anything).Return(nil, appErrors.DatabaseError("Failed to load cart")).Once()

		req := testutils.CreateAnonymousRequest(http.MethodGet, "/", nil, "sess-1", nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.Home()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var page pageShell
		decodeEnvelope(t, recorder, &page)
		assert.Nil(t, page.Cart)
	})

	t.Run("Failure - Navigation Error", func(t *testing.T) {
		// Arrange
		catalog, _, handler := setupStorefrontTest(t)

		catalog.On("NavCategories", mock.Anything).Return(nil, appErrors.DatabaseError("Failed to load categories")).Once()

		req := testutils.CreateAnonymousRequest(http.MethodGet, "/", nil, "sess-1", nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.Home()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestCategory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		catalog, identity, handler := setupStorefrontTest(t)
		category := &models.Category{ID: 1, Name: "Shoes", Slug: "shoes", Kind: models.VariantShoes}

		catalog.On("CategoryDetail", mock.Anything, "shoes").Return(category, []models.Product{airMax()}, nil).Once()
		catalog.On("NavCategories", mock.Anything).Return(navFixture, nil).Once()
		identity.On("ResolveCart", mock.Anything, mock.Anything).Return(openCart(), nil).Once()

		req := testutils.CreateAnonymousRequest(http.MethodGet, "/category/shoes/", nil, "sess-1", map[string]string{"slug": "shoes"})
		recorder := httptest.NewRecorder()

		// Act
		handler.Category()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"title":"Air Max"`)

		var page pageShell
		decodeEnvelope(t, recorder, &page)
		require.NotNil(t, page.Category)
		assert.Equal(t, "shoes", page.Category.Slug)
		assert.Len(t, page.Categories, 2)
	})

	t.Run("Failure - Unknown Category", func(t *testing.T) {
		// Arrange
		catalog, _, handler := setupStorefrontTest(t)

		catalog.On("CategoryDetail", mock.Anything, "boots").Return(nil, nil, appErrors.NotFoundError("Category not found")).Once()

		req := testutils.CreateAnonymousRequest(http.MethodGet, "/category/boots/", nil, "sess-1", map[string]string{"slug": "boots"})
		recorder := httptest.NewRecorder()

		// Act
		handler.Category()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		catalog, _, handler := setupStorefrontTest(t)
		detail := &models.ProductDetail{
			Kind:    models.VariantShoes,
			URL:     "/clothes/shoes/air-max/",
			Product: airMax(),
			Brand:   &models.Brand{ID: 2, Name: "Nike", Slug: "nike"},
		}

		catalog.On("GetProduct", mock.Anything, "shoes", "air-max").Return(detail, nil).Once()

		req := testutils.CreateAnonymousRequest(http.MethodGet, "/clothes/shoes/air-max/", nil, "sess-1", shoesParams)
		recorder := httptest.NewRecorder()

		// Act
		handler.Product()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"url":"/clothes/shoes/air-max/"`)
		assert.Contains(t, recorder.Body.String(), `"name":"Nike"`)
	})

	t.Run("Failure - Unknown Variant", func(t *testing.T) {
		// Arrange
		catalog, _, handler := setupStorefrontTest(t)

		catalog.On("GetProduct", mock.Anything, "boots", "x").Return(nil, appErrors.InvalidVariantError("boots")).Once()

		req := testutils.CreateAnonymousRequest(http.MethodGet, "/clothes/boots/x/", nil, "sess-1", map[string]string{"variant": "boots", "slug": "x"})
		recorder := httptest.NewRecorder()

		// Act
		handler.Product()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Item not found")
	})
}
