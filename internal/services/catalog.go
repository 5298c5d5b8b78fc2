package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	"github.com/aaravmahajanofficial/clothing-store/internal/cache"
	appErrors "github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/aaravmahajanofficial/clothing-store/internal/images"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	repository "github.com/aaravmahajanofficial/clothing-store/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

// LatestPerKind is how many of the newest products of each kind the home page shows.
const LatestPerKind = 4

var maxPrice = decimal.RequireFromString("99999.99")

type CatalogService interface {
	NavCategories(ctx context.Context) ([]models.NavCategory, error)
	LatestProducts(ctx context.Context, respectTo string) ([]models.LatestGroup, error)
	CategoryDetail(ctx context.Context, slug string) (*models.Category, []models.Product, error)
	GetProduct(ctx context.Context, variant string, slug string) (*models.ProductDetail, error)

	CreateProduct(ctx context.Context, variant string, req *models.ProductRequest) (models.Product, error)
	UpdateProduct(ctx context.Context, variant string, slug string, req *models.ProductRequest) (models.Product, error)
	DeleteProduct(ctx context.Context, variant string, slug string) error
	UploadProductImage(ctx context.Context, variant string, slug string, image io.Reader) (models.Product, error)

	CreateBrand(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
}

type catalogService struct {
	repo      repository.CatalogRepository
	cache     cache.Cache
	images    images.Store
	navTTL    time.Duration
	sanitizer *bluemonday.Policy
}

func NewCatalogService(repo repository.CatalogRepository, catalogCache cache.Cache, imageStore images.Store, navTTL time.Duration) CatalogService {
	return &catalogService{
		repo:      repo,
		cache:     catalogCache,
		images:    imageStore,
		navTTL:    navTTL,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *catalogService) NavCategories(ctx context.Context) ([]models.NavCategory, error) {

	logger := middleware.LoggerFromContext(ctx)

	var nav []models.NavCategory

	found, err := s.cache.Get(ctx, cache.NavCategoriesKey, &nav)
	if err != nil {
		logger.Warn("Navigation cache read failed", slog.Any("error", err))
	}

	if found {
		return nav, nil
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list categories").WithError(err)
	}

	counts, err := s.repo.CountProductsByCategory(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to count products").WithError(err)
	}

	nav = make([]models.NavCategory, 0, len(categories))
	for _, c := range categories {
		nav = append(nav, models.NavCategory{Name: c.Name, Slug: c.Slug, URL: c.URL(), Count: counts[c.ID]})
	}

	if err := s.cache.Set(ctx, cache.NavCategoriesKey, nav, s.navTTL); err != nil {
		logger.Warn("Navigation cache write failed", slog.Any("error", err))
	}

	return nav, nil
}

// LatestProducts lists the newest products of every kind. A known respectTo kind is listed first;
// anything else keeps the default order.
func (s *catalogService) LatestProducts(ctx context.Context, respectTo string) ([]models.LatestGroup, error) {

	kinds := models.VariantKinds

	if respectTo != "" {
		if first, err := models.ParseVariantKind(respectTo); err == nil {
			kinds = []models.VariantKind{first}
			for _, kind := range models.VariantKinds {
				if kind != first {
					kinds = append(kinds, kind)
				}
			}
		} else {
			middleware.LoggerFromContext(ctx).Debug("Ignoring unknown respect_to", slog.String("respectTo", respectTo))
		}
	}

	groups := make([]models.LatestGroup, 0, len(kinds))

	for _, kind := range kinds {
		products, err := s.repo.ListLatest(ctx, kind, LatestPerKind)
		if err != nil {
			return nil, appErrors.DatabaseError("Failed to list latest products").WithError(err)
		}

		groups = append(groups, models.LatestGroup{Kind: kind, Products: products})
	}

	return groups, nil
}

func (s *catalogService) CategoryDetail(ctx context.Context, slug string) (*models.Category, []models.Product, error) {

	category, err := s.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.NotFoundError("Category not found")
		}
		return nil, nil, appErrors.DatabaseError("Failed to load category").WithError(err)
	}

	products, err := s.repo.ListByCategory(ctx, category.Kind, category.ID)
	if err != nil {
		return nil, nil, appErrors.DatabaseError("Failed to list category products").WithError(err)
	}

	return category, products, nil
}

func (s *catalogService) findProduct(ctx context.Context, variant string, slug string) (models.Product, error) {

	kind, err := models.ParseVariantKind(variant)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.GetProductBySlug(ctx, kind, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found")
		}
		return nil, appErrors.DatabaseError("Failed to load product").WithError(err)
	}

	return product, nil
}

func (s *catalogService) GetProduct(ctx context.Context, variant string, slug string) (*models.ProductDetail, error) {

	product, err := s.findProduct(ctx, variant, slug)
	if err != nil {
		return nil, err
	}

	detail := &models.ProductDetail{Kind: product.Kind(), URL: models.ProductURL(product), Product: product}

	brand, err := s.repo.GetBrandByID(ctx, product.Common().BrandID)
	switch {
	case err == nil:
		detail.Brand = brand
	case !errors.Is(err, sql.ErrNoRows):
		return nil, appErrors.DatabaseError("Failed to load brand").WithError(err)
	}

	return detail, nil
}

func (s *catalogService) checkRequest(req *models.ProductRequest) error {

	if !req.Price.IsPositive() {
		return appErrors.AddValidationError("price", "must be greater than 0")
	}

	if req.Price.GreaterThan(maxPrice) {
		return appErrors.AddValidationError("price", "must be at most 99999.99")
	}

	req.Description = s.sanitizer.Sanitize(req.Description)

	return nil
}

func productWriteError(err error, action string) error {

	if repository.IsUniqueViolation(err) {
		return appErrors.DuplicateEntryError("A product with this slug already exists").WithError(err)
	}

	return appErrors.DatabaseError("Failed to " + action + " product").WithError(err)
}

func (s *catalogService) invalidateNav(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.NavCategoriesKey); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Navigation cache invalidation failed", slog.Any("error", err))
	}
}

func (s *catalogService) CreateProduct(ctx context.Context, variant string, req *models.ProductRequest) (models.Product, error) {

	kind, err := models.ParseVariantKind(variant)
	if err != nil {
		return nil, err
	}

	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	product, err := models.NewProduct(kind, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, productWriteError(err, "create")
	}

	s.invalidateNav(ctx)

	middleware.LoggerFromContext(ctx).Info("Product created", slog.String("url", models.ProductURL(product)))

	return product, nil
}

// UpdateProduct replaces every editable field of a product; its image is kept.
func (s *catalogService) UpdateProduct(ctx context.Context, variant string, slug string, req *models.ProductRequest) (models.Product, error) {

	existing, err := s.findProduct(ctx, variant, slug)
	if err != nil {
		return nil, err
	}

	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	product, err := models.NewProduct(existing.Kind(), req)
	if err != nil {
		return nil, err
	}

	base := product.Common()
	base.ID = existing.GetID()
	base.Image = existing.Common().Image
	base.CreatedAt = existing.Common().CreatedAt

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found")
		}
		return nil, productWriteError(err, "update")
	}

	// a product may have moved to another category
	s.invalidateNav(ctx)

	return product, nil
}

// DeleteProduct removes the product with its open cart lines, then its image file.
func (s *catalogService) DeleteProduct(ctx context.Context, variant string, slug string) error {

	logger := middleware.LoggerFromContext(ctx)

	product, err := s.findProduct(ctx, variant, slug)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteProduct(ctx, product.Ref()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Item not found")
		}
		return appErrors.DatabaseError("Failed to delete product").WithError(err)
	}

	if err := s.images.Delete(product.Common().Image); err != nil {
		logger.Warn("Product image not removed", slog.String("image", product.Common().Image), slog.Any("error", err))
	}

	s.invalidateNav(ctx)

	logger.Info("Product deleted", slog.String("url", models.ProductURL(product)))

	return nil
}

// UploadProductImage stores a new picture and removes the one it replaces.
func (s *catalogService) UploadProductImage(ctx context.Context, variant string, slug string, image io.Reader) (models.Product, error) {

	logger := middleware.LoggerFromContext(ctx)

	product, err := s.findProduct(ctx, variant, slug)
	if err != nil {
		return nil, err
	}

	name, err := s.images.Save(string(product.Kind()), image)
	if err != nil {
		switch {
		case errors.Is(err, images.ErrUnsupportedType):
			return nil, appErrors.AddValidationError("image", "must be a JPEG, PNG, GIF or WebP picture")
		case errors.Is(err, images.ErrTooLarge):
			return nil, appErrors.AddValidationError("image", "exceeds the upload limit")
		default:
			return nil, appErrors.InternalError("Failed to store image").WithError(err)
		}
	}

	previous := product.Common().Image

	if err := s.repo.UpdateProductImage(ctx, product.Ref(), name); err != nil {
		if cleanupErr := s.images.Delete(name); cleanupErr != nil {
			logger.Warn("Orphaned image not removed", slog.String("image", name), slog.Any("error", cleanupErr))
		}
		return nil, appErrors.DatabaseError("Failed to save product image").WithError(err)
	}

	product.Common().Image = name

	if previous != "" && previous != name {
		if err := s.images.Delete(previous); err != nil {
			logger.Warn("Previous image not removed", slog.String("image", previous), slog.Any("error", err))
		}
	}

	return product, nil
}

func (s *catalogService) CreateBrand(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, error) {

	brand := &models.Brand{Name: req.Name, Slug: req.Slug}

	if err := s.repo.CreateBrand(ctx, brand); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.DuplicateEntryError("A brand with this slug already exists").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to create brand").WithError(err)
	}

	if err := s.cache.Delete(ctx, cache.BrandListKey); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Brand cache invalidation failed", slog.Any("error", err))
	}

	return brand, nil
}

func (s *catalogService) ListBrands(ctx context.Context) ([]models.Brand, error) {

	logger := middleware.LoggerFromContext(ctx)

	var brands []models.Brand

	found, err := s.cache.Get(ctx, cache.BrandListKey, &brands)
	if err != nil {
		logger.Warn("Brand cache read failed", slog.Any("error", err))
	}

	if found {
		return brands, nil
	}

	brands, err = s.repo.ListBrands(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list brands").WithError(err)
	}

	if err := s.cache.Set(ctx, cache.BrandListKey, brands, 0); err != nil {
		logger.Warn("Brand cache write failed", slog.Any("error", err))
	}

	return brands, nil
}
