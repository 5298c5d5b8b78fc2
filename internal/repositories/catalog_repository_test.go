package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	repository "github.com/aaravmahajanofficial/clothing-store/internal/repositories"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalogRepoTest(t *testing.T) (repository.CatalogRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewCatalogRepo(db), mock
}

var shoesColumns = []string{"id", "category_id", "brand_id", "title", "slug", "image", "description", "price", "created_at", "updated_at",
	"color", "size", "outsole_material", "insole_material", "inner_material", "top_material"}

func TestCatalogRepository_Categories(t *testing.T) {
	repo, mock := setupCatalogRepoTest(t)
	ctx := t.Context()
	now := time.Now()

	t.Run("List Categories", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, slug, kind, created_at FROM categories ORDER BY id")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "kind", "created_at"}).
				AddRow(1, "Shoes", "shoes", "shoes", now).
				AddRow(3, "Hoodies", "hoodies", "hoodie", now))

		categories, err := repo.ListCategories(ctx)

		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, models.VariantHoodie, categories[1].Kind)
		assert.Equal(t, "/category/hoodies/", categories[1].URL())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Get Category - Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM categories WHERE slug = $1")).
			WithArgs("hats").
			WillReturnError(sql.ErrNoRows)

		category, err := repo.GetCategoryBySlug(ctx, "hats")

		require.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, category)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Count Products", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UNION ALL SELECT category_id FROM pants")).
			WillReturnRows(sqlmock.NewRows([]string{"category_id", "count"}).AddRow(1, 4).AddRow(2, 0))

		counts, err := repo.CountProductsByCategory(ctx)

		require.NoError(t, err)
		assert.Equal(t, map[int64]int{1: 4, 2: 0}, counts)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_GetProduct(t *testing.T) {
	repo, mock := setupCatalogRepoTest(t)
	ctx := t.Context()
	now := time.Now()

	selectShoes := regexp.QuoteMeta("SELECT id, category_id, brand_id, title, slug, image, description, price, created_at, updated_at, color, size, outsole_material, insole_material, inner_material, top_material FROM shoes")

	t.Run("By Slug", func(t *testing.T) {
		mock.ExpectQuery(selectShoes+regexp.QuoteMeta(" WHERE slug = $1")).
			WithArgs("runner").
			WillReturnRows(sqlmock.NewRows(shoesColumns).
				AddRow(7, 1, 2, "Runner", "runner", "shoes/runner.png", "", "120.00", now, now, "white", "42", "rubber", "foam", "mesh", "knit"))

		product, err := repo.GetProductBySlug(ctx, models.VariantShoes, "runner")

		require.NoError(t, err)
		shoes, ok := product.(*models.Shoes)
		require.True(t, ok)
		assert.Equal(t, int64(7), shoes.ID)
		assert.Equal(t, "42", shoes.Size)
		assert.Equal(t, "knit", shoes.TopMaterial)
		assert.True(t, decimal.RequireFromString("120").Equal(shoes.Price))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("By Slug - Not Found", func(t *testing.T) {
		mock.ExpectQuery(selectShoes+regexp.QuoteMeta(" WHERE slug = $1")).
			WithArgs("retired").
			WillReturnError(sql.ErrNoRows)

		product, err := repo.GetProductBySlug(ctx, models.VariantShoes, "retired")

		require.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, product)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Kind", func(t *testing.T) {
		product, err := repo.GetProductBySlug(ctx, "hats", "cap")

		require.Error(t, err)
		assert.Nil(t, product)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_ListLatest(t *testing.T) {
	repo, mock := setupCatalogRepoTest(t)
	ctx := t.Context()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM hoodies ORDER BY id DESC LIMIT $1")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "brand_id", "title", "slug", "image", "description", "price", "created_at", "updated_at",
			"color", "length", "length_sleeve", "pattern"}).
			AddRow(2, 3, 1, "Zip", "zip", "", "", "70.00", now, now, "grey", "70", "60", "plain").
			AddRow(1, 3, 1, "Pullover", "pullover", "", "", "50.00", now, now, "black", "68", "61", "logo"))

	products, err := repo.ListLatest(ctx, models.VariantHoodie, 4)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "zip", products[0].GetSlug())
	assert.Equal(t, models.VariantHoodie, products[1].Kind())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_WriteProduct(t *testing.T) {
	repo, mock := setupCatalogRepoTest(t)
	ctx := t.Context()
	now := time.Now()

	newPants := func() *models.Pants {
		return &models.Pants{
			ClothesBase: models.ClothesBase{CategoryID: 2, BrandID: 1, Title: "Chino", Slug: "chino", Price: decimal.RequireFromString("80.00")},
			Color:       "beige",
		}
	}

	insertSQL := regexp.QuoteMeta("INSERT INTO pants (category_id, brand_id, title, slug, description, price, color, length_inside, length_side, bottom_width, pattern, claps) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id, created_at, updated_at")

	t.Run("Create", func(t *testing.T) {
		pants := newPants()

		mock.ExpectQuery(insertSQL).
			WithArgs(int64(2), int64(1), "Chino", "chino", "", pants.Price, "beige", "", "", "", "", "").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(15, now, now))

		err := repo.CreateProduct(ctx, pants)

		require.NoError(t, err)
		assert.Equal(t, int64(15), pants.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Create - Duplicate Slug", func(t *testing.T) {
		mock.ExpectQuery(insertSQL).WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreateProduct(ctx, newPants())

		require.Error(t, err)
		assert.True(t, repository.IsUniqueViolation(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update", func(t *testing.T) {
		pants := newPants()
		pants.ID = 15

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE pants SET category_id = $1, brand_id = $2, title = $3, slug = $4, description = $5, price = $6, color = $7, length_inside = $8, length_side = $9, bottom_width = $10, pattern = $11, claps = $12, updated_at = NOW() WHERE id = $13 RETURNING updated_at")).
			WithArgs(int64(2), int64(1), "Chino", "chino", "", pants.Price, "beige", "", "", "", "", "", int64(15)).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

		require.NoError(t, repo.UpdateProduct(ctx, pants))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update Image", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE pants SET image = $1, updated_at = NOW() WHERE id = $2")).
			WithArgs("pants/chino.png", int64(15)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateProductImage(ctx, models.ProductRef{Kind: models.VariantPants, ID: 15}, "pants/chino.png"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	purgeSQL := regexp.QuoteMeta("DELETE FROM cart_lines l USING locked WHERE l.cart_id = locked.id AND l.product_kind = $1 AND l.product_id = $2")
	deleteSQL := regexp.QuoteMeta("DELETE FROM pants WHERE id = $1")

	t.Run("Delete - Open Cart Lines Go With The Product", func(t *testing.T) {
		// Arrange
		mock.ExpectBegin()
		mock.ExpectExec(purgeSQL).
			WithArgs(models.VariantPants, int64(15)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(deleteSQL).
			WithArgs(int64(15)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		err := repo.DeleteProduct(ctx, models.ProductRef{Kind: models.VariantPants, ID: 15})

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete - Missing Product Keeps Cart Lines", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(purgeSQL).
			WithArgs(models.VariantPants, int64(15)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(deleteSQL).
			WithArgs(int64(15)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.DeleteProduct(ctx, models.ProductRef{Kind: models.VariantPants, ID: 15})

		require.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete - Purge Error Rolls Back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(purgeSQL).WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		err := repo.DeleteProduct(ctx, models.ProductRef{Kind: models.VariantPants, ID: 15})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to remove cart lines")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_Brands(t *testing.T) {
	repo, mock := setupCatalogRepoTest(t)
	ctx := t.Context()
	now := time.Now()

	t.Run("Create Brand", func(t *testing.T) {
		brand := &models.Brand{Name: "Acme", Slug: "acme"}

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO brands (name, slug) VALUES ($1, $2) RETURNING id, created_at")).
			WithArgs("Acme", "acme").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(4, now))

		require.NoError(t, repo.CreateBrand(ctx, brand))
		assert.Equal(t, int64(4), brand.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("List Brands - Query Error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM brands ORDER BY name")).WillReturnError(errors.New("boom"))

		brands, err := repo.ListBrands(ctx)

		require.Error(t, err)
		assert.Nil(t, brands)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Get Brand", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM brands WHERE id = $1")).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "created_at"}).AddRow(4, "Acme", "acme", now))

		brand, err := repo.GetBrandByID(ctx, 4)

		require.NoError(t, err)
		assert.Equal(t, "Acme", brand.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
