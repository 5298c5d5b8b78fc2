package service_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/clothing-store/internal/cache"
	cacheMocks "github.com/aaravmahajanofficial/clothing-store/internal/cache/mocks"
	appErrors "github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/aaravmahajanofficial/clothing-store/internal/images"
	imageMocks "github.com/aaravmahajanofficial/clothing-store/internal/images/mocks"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	"github.com/aaravmahajanofficial/clothing-store/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/clothing-store/internal/services"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const navTTL = 5 * time.Minute

type catalogFixture struct {
	repo    *mocks.CatalogRepository
	cache   *cacheMocks.Cache
	images  *imageMocks.Store
	service service.CatalogService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	f := &catalogFixture{
		repo:   mocks.NewCatalogRepository(t),
		cache:  cacheMocks.NewCache(t),
		images: imageMocks.NewStore(t),
	}
	f.service = service.NewCatalogService(f.repo, f.cache, f.images, navTTL)

	return f
}

func productRequest(price string) *models.ProductRequest {
	return &models.ProductRequest{
		CategoryID:  1,
		BrandID:     2,
		Title:       "Runner",
		Slug:        "runner",
		Description: `<p>Light</p><script>alert("x")</script>`,
		Price:       decimal.RequireFromString(price),
		Color:       "white",
		Size:        "42",
	}
}

func TestCatalogService_NavCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache Hit", func(t *testing.T) {
		// Arrange
		f := newCatalogFixture(t)
		cached := []models.NavCategory{{Name: "Sneakers", Slug: "sneakers", URL: "/category/sneakers/", Count: 3}}

		f.cache.On("Get", ctx, cache.NavCategoriesKey, mock.Anything).Run(func(args mock.Arguments) {
			*args.Get(2).(*[]models.NavCategory) = cached
		}).Return(true, nil).Once()

		// Act
		nav, err := f.service.NavCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, cached, nav)
	})

	t.Run("Cache Miss Loads And Stores", func(t *testing.T) {
		// Arrange
		f := newCatalogFixture(t)
		categories := []models.Category{
			{ID: 1, Name: "Sneakers", Slug: "sneakers", Kind: models.VariantShoes},
			{ID: 2, Name: "Jeans", Slug: "jeans", Kind: models.VariantPants},
		}
		expected := []models.NavCategory{
			{Name: "Sneakers", Slug: "sneakers", URL: "/category/sneakers/", Count: 4},
			{Name: "Jeans", Slug: "jeans", URL: "/category/jeans/", Count: 0},
		}

		f.cache.On("Get", ctx, cache.NavCategoriesKey, mock.Anything).Return(false, nil).Once()
		f.repo.On("ListCategories", ctx).Return(categories, nil).Once()
		f.repo.On("CountProductsByCategory", ctx).Return(map[int64]int{1: 4}, nil).Once()
		f.cache.On("Set", ctx, cache.NavCategoriesKey, expected, navTTL).Return(nil).Once()

		// Act
		nav, err := f.service.NavCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, nav)
	})

	t.Run("Cache Outage Falls Back To Database", func(t *testing.T) {
		// Arrange
		f := newCatalogFixture(t)

		f.cache.On("Get", ctx, cache.NavCategoriesKey, mock.Anything).Return(false, errors.New("redis down")).Once()
		f.repo.On("ListCategories", ctx).Return([]models.Category{}, nil).Once()
		f.repo.On("CountProductsByCategory", ctx).Return(map[int64]int{}, nil).Once()
		f.cache.On("Set", ctx, cache.NavCategoriesKey, mock.Anything, navTTL).Return(errors.New("redis down")).Once()

		// Act
		nav, err := f.service.NavCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, nav)
	})

	t.Run("Database Error", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.cache.On("Get", ctx, cache.NavCategoriesKey, mock.Anything).Return(false, nil).Once()
		f.repo.On("ListCategories", ctx).Return(nil, errors.New("timeout")).Once()

		_, err := f.service.NavCategories(ctx)

		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestCatalogService_LatestProducts(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		respectTo string
		order     []models.VariantKind
	}{
		{"Default Order", "", []models.VariantKind{models.VariantShoes, models.VariantPants, models.VariantHoodie}},
		{"Hoodies First", "hoodie", []models.VariantKind{models.VariantHoodie, models.VariantShoes, models.VariantPants}},
		{"Unknown Kind Ignored", "hats", []models.VariantKind{models.VariantShoes, models.VariantPants, models.VariantHoodie}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			f := newCatalogFixture(t)
			for _, kind := range tc.order {
				f.repo.On("ListLatest", ctx, kind, service.LatestPerKind).Return([]models.Product{}, nil).Once()
			}

			// Act
			groups, err := f.service.LatestProducts(ctx, tc.respectTo)

			// Assert
			require.NoError(t, err)
			require.Len(t, groups, len(tc.order))
			for i, kind := range tc.order {
				assert.Equal(t, kind, groups[i].Kind)
			}
		})
	}
}

func TestCatalogService_CategoryDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newCatalogFixture(t)
		category := &models.Category{ID: 9, Slug: "jeans", Kind: models.VariantPants}
		products := []models.Product{&models.Pants{ClothesBase: models.ClothesBase{ID: 1, Slug: "slim"}}}

		f.repo.On("GetCategoryBySlug", ctx, "jeans").Return(category, nil).Once()
		f.repo.On("ListByCategory", ctx, models.VariantPants, int64(9)).Return(products, nil).Once()

		got, list, err := f.service.CategoryDetail(ctx, "jeans")

		require.NoError(t, err)
		assert.Equal(t, category, got)
		assert.Equal(t, products, list)
	})

	t.Run("Unknown Category", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.repo.On("GetCategoryBySlug", ctx, "nope").Return(nil, sql.ErrNoRows).Once()

		_, _, err := f.service.CategoryDetail(ctx, "nope")

		appErr := requireAppError(t, err, appErrors.ErrCodeNotFound)
		assert.Equal(t, "Category not found", appErr.Message)
	})
}

func TestCatalogService_GetProduct(t *testing.T) {
	ctx := context.Background()
	shoes := newShoes(7, "air", "120.50")
	shoes.BrandID = 2

	t.Run("With Brand", func(t *testing.T) {
		f := newCatalogFixture(t)
		brand := &models.Brand{ID: 2, Name: "Fleet", Slug: "fleet"}

		f.repo.On("GetProductBySlug", ctx, models.VariantShoes, "air").Return(shoes, nil).Once()
		f.repo.On("GetBrandByID", ctx, int64(2)).Return(brand, nil).Once()

		detail, err := f.service.GetProduct(ctx, "shoes", "air")

		require.NoError(t, err)
		assert.Equal(t, models.VariantShoes, detail.Kind)
		assert.Equal(t, "/clothes/shoes/air/", detail.URL)
		assert.Equal(t, brand, detail.Brand)
	})

	t.Run("Missing Brand Is Tolerated", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.repo.On("GetProductBySlug", ctx, models.VariantShoes, "air").Return(shoes, nil).Once()
		f.repo.On("GetBrandByID", ctx, int64(2)).Return(nil, sql.ErrNoRows).Once()

		detail, err := f.service.GetProduct(ctx, "shoes", "air")

		require.NoError(t, err)
		assert.Nil(t, detail.Brand)
	})

	t.Run("Unknown Variant", func(t *testing.T) {
		f := newCatalogFixture(t)

		_, err := f.service.GetProduct(ctx, "hats", "air")

		requireAppError(t, err, appErrors.ErrCodeInvalidVariant)
	})
}

func TestCatalogService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		f := newCatalogFixture(t)

		f.repo.On("CreateProduct", ctx, mock.MatchedBy(func(p models.Product) bool {
			shoes, ok := p.(*models.Shoes)
			return ok && shoes.Description == "<p>Light</p>" && shoes.Color == "white" && shoes.Price.StringFixed(2) == "59.90"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(models.Product).Common().ID = 12
		}).Return(nil).Once()
		f.cache.On("Delete", ctx, cache.NavCategoriesKey).Return(nil).Once()

		// Act
		product, err := f.service.CreateProduct(ctx, "shoes", productRequest("59.899"))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(12), product.GetID())
		assert.Equal(t, models.VariantShoes, product.Kind())
	})

	prices := []struct {
		price  string
		reason string
	}{
		{"0", "must be greater than 0"},
		{"-5", "must be greater than 0"},
		{"100000", "must be at most 99999.99"},
	}

	for _, tc := range prices {
		t.Run(fmt.Sprintf("Invalid Price %s", tc.price), func(t *testing.T) {
			f := newCatalogFixture(t)

			_, err := f.service.CreateProduct(ctx, "pants", productRequest(tc.price))

			appErr := requireAppError(t, err, appErrors.ErrCodeValidation)
			assert.Equal(t, tc.reason, appErr.Fields["price"])
		})
	}

	t.Run("Duplicate Slug", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.repo.On("CreateProduct", ctx, mock.Anything).Return(&pq.Error{Code: "23505"}).Once()

		_, err := f.service.CreateProduct(ctx, "hoodie", productRequest("10"))

		requireAppError(t, err, appErrors.ErrCodeDuplicateEntry)
	})

	t.Run("Unknown Variant", func(t *testing.T) {
		f := newCatalogFixture(t)

		_, err := f.service.CreateProduct(ctx, "hats", productRequest("10"))

		requireAppError(t, err, appErrors.ErrCodeInvalidVariant)
	})
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Keeps Identity And Image", func(t *testing.T) {
		// Arrange
		f := newCatalogFixture(t)
		existing := newShoes(7, "runner", "50")
		existing.Image = "clothes/shoes/old.png"
		existing.CreatedAt = created

		f.repo.On("GetProductBySlug", ctx, models.VariantShoes, "runner").Return(existing, nil).Once()
		f.repo.On("UpdateProduct", ctx, mock.MatchedBy(func(p models.Product) bool {
			c := p.Common()
			return c.ID == 7 && c.Image == "clothes/shoes/old.png" && c.CreatedAt.Equal(created) && c.Price.StringFixed(2) == "75.00"
		})).Return(nil).Once()
		f.cache.On("Delete", ctx, cache.NavCategoriesKey).Return(nil).Once()

		// Act
		product, err := f.service.UpdateProduct(ctx, "shoes", "runner", productRequest("75"))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(7), product.GetID())
	})

	t.Run("Deleted Meanwhile", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.repo.On("GetProductBySlug", ctx, models.VariantShoes, "runner").Return(newShoes(7, "runner", "50"), nil).Once()
		f.repo.On("UpdateProduct", ctx, mock.Anything).Return(sql.ErrNoRows).Once()

		_, err := f.service.UpdateProduct(ctx, "shoes", "runner", productRequest("75"))

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes Row And Image", func(t *testing.T) {
		// Arrange
		f := newCatalogFixture(t)
		existing := newShoes(7, "runner", "50")
		existing.Image = "clothes/shoes/a.png"

		f.repo.On("GetProductBySlug", ctx, models.VariantShoes, "runner").Return(existing, nil).Once()
		f.repo.On("DeleteProduct", ctx, existing.Ref()).Return(nil).Once()
		f.images.On("Delete", "clothes/shoes/a.png").Return(errors.New("permission denied")).Once()
		f.cache.On("Delete", ctx, cache.NavCategoriesKey).Return(nil).Once()

		// Act
		err := f.service.DeleteProduct(ctx, "shoes", "runner")

		// Assert
		assert.NoError(t, err)
	})

	t.Run("Unknown Product", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.repo.On("GetProductBySlug", ctx, models.VariantPants, "gone").Return(nil, sql.ErrNoRows).Once()

		err := f.service.DeleteProduct(ctx, "pants", "gone")

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestCatalogService_UploadProductImage(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces Previous Image", func(t *testing.T) {
		// Arrange
		f := newCatalogFixture(t)
		existing := newShoes(7, "runner", "50")
		existing.Image = "clothes/shoes/old.png"
		body := bytes.NewReader([]byte("png bytes"))

		f.repo.On("GetProductBySlug", ctx, models.VariantShoes, "runner").Return(existing, nil).Once()
		f.images.On("Save", "shoes", body).Return("clothes/shoes/new.png", nil).Once()
		f.repo.On("UpdateProductImage", ctx, existing.Ref(), "clothes/shoes/new.png").Return(nil).Once()
		f.images.On("Delete", "clothes/shoes/old.png").Return(nil).Once()

		// Act
		product, err := f.service.UploadProductImage(ctx, "shoes", "runner", body)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "clothes/shoes/new.png", product.Common().Image)
	})

	t.Run("Rejected File Type", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.repo.On("GetProductBySlug", ctx, models.VariantShoes, "runner").Return(newShoes(7, "runner", "50"), nil).Once()
		f.images.On("Save", "shoes", mock.Anything).Return("", images.ErrUnsupportedType).Once()

		_, err := f.service.UploadProductImage(ctx, "shoes", "runner", bytes.NewReader(nil))

		appErr := requireAppError(t, err, appErrors.ErrCodeValidation)
		assert.Contains(t, appErr.Fields, "image")
	})

	t.Run("Database Failure Removes New File", func(t *testing.T) {
		// Arrange
		f := newCatalogFixture(t)
		existing := newShoes(7, "runner", "50")

		f.repo.On("GetProductBySlug", ctx, models.VariantShoes, "runner").Return(existing, nil).Once()
		f.images.On("Save", "shoes", mock.Anything).Return("clothes/shoes/new.png", nil).Once()
		f.repo.On("UpdateProductImage", ctx, existing.Ref(), "clothes/shoes/new.png").Return(errors.New("timeout")).Once()
		f.images.On("Delete", "clothes/shoes/new.png").Return(nil).Once()

		// Act
		_, err := f.service.UploadProductImage(ctx, "shoes", "runner", bytes.NewReader(nil))

		// Assert
		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
		assert.Empty(t, existing.Image)
	})
}

func TestCatalogService_Brands(t *testing.T) {
	ctx := context.Background()

	t.Run("Create Invalidates List", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.repo.On("CreateBrand", ctx, mock.MatchedBy(func(b *models.Brand) bool { return b.Slug == "fleet" })).Return(nil).Once()
		f.cache.On("Delete", ctx, cache.BrandListKey).Return(nil).Once()

		brand, err := f.service.CreateBrand(ctx, &models.CreateBrandRequest{Name: "Fleet", Slug: "fleet"})

		require.NoError(t, err)
		assert.Equal(t, "Fleet", brand.Name)
	})

	t.Run("Duplicate Brand", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.repo.On("CreateBrand", ctx, mock.Anything).Return(&pq.Error{Code: "23505"}).Once()

		_, err := f.service.CreateBrand(ctx, &models.CreateBrandRequest{Name: "Fleet", Slug: "fleet"})

		requireAppError(t, err, appErrors.ErrCodeDuplicateEntry)
	})

	t.Run("List From Database Then Cache", func(t *testing.T) {
		f := newCatalogFixture(t)
		brands := []models.Brand{{ID: 1, Name: "Fleet", Slug: "fleet"}}

		f.cache.On("Get", ctx, cache.BrandListKey, mock.Anything).Return(false, nil).Once()
		f.repo.On("ListBrands", ctx).Return(brands, nil).Once()
		f.cache.On("Set", ctx, cache.BrandListKey, brands, time.Duration(0)).Return(nil).Once()

		got, err := f.service.ListBrands(ctx)

		require.NoError(t, err)
		assert.Equal(t, brands, got)
	})
}
