package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	service "github.com/aaravmahajanofficial/clothing-store/internal/services"
	"github.com/aaravmahajanofficial/clothing-store/internal/utils/response"
)

type StorefrontHandler struct {
	catalogService  service.CatalogService
	identityService service.IdentityService
}

func NewStorefrontHandler(catalogService service.CatalogService, identityService service.IdentityService) *StorefrontHandler {
	return &StorefrontHandler{catalogService: catalogService, identityService: identityService}
}

// badge resolves the visitor's cart for the page header. A failure only hides the badge.
func (h *StorefrontHandler) badge(r *http.Request) *models.CartBadge {

	cart, err := h.identityService.ResolveCart(r.Context(), cartOwner(r))
	if err != nil {
		middleware.LoggerFromContext(r.Context()).Warn("Cart badge unavailable", slog.Any("error", err))
		return nil
	}

	return cart.Badge()
}

// Home godoc
//
//	@Summary		Home page
//	@Description	Navigation categories, the newest products of every kind and the cart badge.
//	@Tags			Storefront
//	@Produce		json
//	@Param			respect_to	query		string	false	"Kind listed first"	Enums(shoes, pants, hoodie)
//	@Success		200			{object}	models.HomePage
//	@Failure		500			{object}	response.ErrorResponse
//	@Router			/ [get]
func (h *StorefrontHandler) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		nav, err := h.catalogService.NavCategories(r.Context())
		if err != nil {
			logger.Error("Failed to load navigation", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		latest, err := h.catalogService.LatestProducts(r.Context(), r.URL.Query().Get("respect_to"))
		if err != nil {
			logger.Error("Failed to load latest products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.HomePage{
			Categories: nav,
			Latest:     latest,
			Cart:       h.badge(r),
		})
	}
}

// Category godoc
//
//	@Summary		Category page
//	@Tags			Storefront
//	@Produce		json
//	@Param			slug	path		string	true	"Category slug"
//	@Success		200		{object}	models.CategoryPage
//	@Failure		404		{object}	response.ErrorResponse	"Category not found"
//	@Router			/category/{slug}/ [get]
func (h *StorefrontHandler) Category() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("category", slug))

		category, products, err := h.catalogService.CategoryDetail(r.Context(), slug)
		if err != nil {
			logger.Warn("Failed to load category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		nav, err := h.catalogService.NavCategories(r.Context())
		if err != nil {
			logger.Error("Failed to load navigation", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.CategoryPage{
			Category:   category,
			Products:   products,
			Categories: nav,
			Cart:       h.badge(r),
		})
	}
}

// Product godoc
//
//	@Summary		Product page
//	@Tags			Storefront
//	@Produce		json
//	@Param			variant	path		string	true	"Product kind"	Enums(shoes, pants, hoodie)
//	@Param			slug	path		string	true	"Product slug"
//	@Success		200		{object}	models.ProductDetail
//	@Failure		404		{object}	response.ErrorResponse	"Item not found"
//	@Router			/clothes/{variant}/{slug}/ [get]
func (h *StorefrontHandler) Product() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		detail, err := h.catalogService.GetProduct(r.Context(), r.PathValue("variant"), r.PathValue("slug"))
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to load product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, detail)
	}
}
