package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	"github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	service "github.com/aaravmahajanofficial/clothing-store/internal/services"
	"github.com/aaravmahajanofficial/clothing-store/internal/utils"
	"github.com/aaravmahajanofficial/clothing-store/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const imageFormField = "image"

type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
	maxUploadBytes int64
}

func NewCatalogHandler(catalogService service.CatalogService, maxUploadBytes int64) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: utils.NewValidator(), maxUploadBytes: maxUploadBytes}
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			variant	path		string					true	"Product kind"	Enums(shoes, pants, hoodie)
//	@Param			product	body		models.ProductRequest	true	"Product"
//	@Success		201		{object}	models.ClothesBase
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		404		{object}	response.ErrorResponse	"Unknown kind"
//	@Failure		409		{object}	response.ErrorResponse	"Slug already used"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/products/{variant} [post]
func (h *CatalogHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("variant", r.PathValue("variant")))

		var req models.ProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product input")
			return
		}

		product, err := h.catalogService.CreateProduct(r.Context(), r.PathValue("variant"), &req)
		if err != nil {
			logger.Warn("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created", slog.Int64("productId", product.GetID()))
		response.Success(w, http.StatusCreated, product)
	}
}

// UpdateProduct godoc
//
//	@Summary		Replace a product
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			variant	path		string					true	"Product kind"	Enums(shoes, pants, hoodie)
//	@Param			slug	path		string					true	"Product slug"
//	@Param			product	body		models.ProductRequest	true	"Product"
//	@Success		200		{object}	models.ClothesBase
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		404		{object}	response.ErrorResponse	"Item not found"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/products/{variant}/{slug} [put]
func (h *CatalogHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(
			slog.String("variant", r.PathValue("variant")),
			slog.String("slug", r.PathValue("slug")),
		)

		var req models.ProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product input")
			return
		}

		product, err := h.catalogService.UpdateProduct(r.Context(), r.PathValue("variant"), r.PathValue("slug"), &req)
		if err != nil {
			logger.Warn("Failed to update product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated")
		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//
//	@Summary	Delete a product
//	@Tags		Admin
//	@Param		variant	path	string	true	"Product kind"	Enums(shoes, pants, hoodie)
//	@Param		slug	path	string	true	"Product slug"
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse	"Item not found"
//	@Security	BearerAuth
//	@Router		/api/v1/admin/products/{variant}/{slug} [delete]
func (h *CatalogHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.catalogService.DeleteProduct(r.Context(), r.PathValue("variant"), r.PathValue("slug")); err != nil {
			logger.Warn("Failed to delete product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// UploadProductImage godoc
//
//	@Summary		Upload a product picture
//	@Description	Replaces the product image. JPEG, PNG, GIF and WebP are accepted.
//	@Tags			Admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			variant	path		string	true	"Product kind"	Enums(shoes, pants, hoodie)
//	@Param			slug	path		string	true	"Product slug"
//	@Param			image	formData	file	true	"Picture"
//	@Success		200		{object}	models.ClothesBase
//	@Failure		400		{object}	response.ErrorResponse	"Missing or unsupported file"
//	@Failure		404		{object}	response.ErrorResponse	"Item not found"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/products/{variant}/{slug}/image [post]
func (h *CatalogHandler) UploadProductImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+(1<<20))

		file, _, err := r.FormFile(imageFormField)
		if err != nil {
			logger.Warn("Missing image upload", slog.String("error", err.Error()))
			response.Error(w, errors.AddValidationError(imageFormField, "a picture file is required"))
			return
		}
		defer file.Close()

		product, err := h.catalogService.UploadProductImage(r.Context(), r.PathValue("variant"), r.PathValue("slug"), file)
		if err != nil {
			logger.Warn("Failed to upload product image", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product image uploaded", slog.String("image", product.Common().Image))
		response.Success(w, http.StatusOK, product)
	}
}

// CreateBrand godoc
//
//	@Summary		Create a brand
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			brand	body		models.CreateBrandRequest	true	"Brand"
//	@Success		201		{object}	models.Brand
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		409		{object}	response.ErrorResponse	"Slug already used"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/brands [post]
func (h *CatalogHandler) CreateBrand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateBrandRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid brand input")
			return
		}

		brand, err := h.catalogService.CreateBrand(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to create brand", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Brand created", slog.Int64("brandId", brand.ID))
		response.Success(w, http.StatusCreated, brand)
	}
}

// ListBrands godoc
//
//	@Summary	List brands
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{array}		models.Brand
//	@Failure	500	{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/admin/brands [get]
func (h *CatalogHandler) ListBrands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		brands, err := h.catalogService.ListBrands(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list brands", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, brands)
	}
}
