package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	"github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	service "github.com/aaravmahajanofficial/clothing-store/internal/services"
	"github.com/aaravmahajanofficial/clothing-store/internal/utils/response"
)

type CartHandler struct {
	identityService service.IdentityService
	cartService     service.CartService
}

func NewCartHandler(identityService service.IdentityService, cartService service.CartService) *CartHandler {
	return &CartHandler{identityService: identityService, cartService: cartService}
}

type cartMutation func(r *http.Request, cart *models.Cart, variant, slug string) (*models.Cart, error)

// mutate resolves the caller's cart, applies change and redirects back to the cart page.
func (h *CartHandler) mutate(action string, change cartMutation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		variant, slug := r.PathValue("variant"), r.PathValue("slug")
		logger := middleware.LoggerFromContext(r.Context()).With(
			slog.String("action", action),
			slog.String("variant", variant),
			slog.String("slug", slug),
		)

		cart, err := h.identityService.ResolveCart(r.Context(), cartOwner(r))
		if err != nil {
			logger.Error("Failed to resolve cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		cart, err = change(r, cart, variant, slug)
		if err != nil {
			logger.Warn("Cart change rejected", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart updated", slog.String("cartId", cart.ID.String()), slog.Int("totalProducts", cart.TotalProducts))

		if wantsJSON(r) {
			response.Success(w, http.StatusOK, cart)
			return
		}

		seeOther(w, r, cartPath)
	}
}

// GetCart godoc
//
//	@Summary		Show the cart
//	@Description	The caller's open cart with every line. Anonymous visitors are identified by the cart session cookie.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.Cart
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/cart/ [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cart, err := h.identityService.ResolveCart(r.Context(), cartOwner(r))
		if err != nil {
			logger.Error("Failed to resolve cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		cart, err = h.cartService.GetCart(r.Context(), cart)
		if err != nil {
			logger.Error("Failed to load cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddToCart godoc
//
//	@Summary		Add a product to the cart
//	@Description	Adds one unit, or keeps the existing line when the product is already in the cart.
//	@Tags			Cart
//	@Param			variant	path	string	true	"Product kind"	Enums(shoes, pants, hoodie)
//	@Param			slug	path	string	true	"Product slug"
//	@Success		303
//	@Failure		404	{object}	response.ErrorResponse	"Item not found"
//	@Router			/add-to-cart/{variant}/{slug}/ [get]
func (h *CartHandler) AddToCart() http.HandlerFunc {
	return h.mutate("add", func(r *http.Request, cart *models.Cart, variant, slug string) (*models.Cart, error) {
		return h.cartService.AddLine(r.Context(), cart, variant, slug)
	})
}

// RemoveFromCart godoc
//
//	@Summary	Remove a product from the cart
//	@Tags		Cart
//	@Param		variant	path	string	true	"Product kind"	Enums(shoes, pants, hoodie)
//	@Param		slug	path	string	true	"Product slug"
//	@Success	303
//	@Failure	404	{object}	response.ErrorResponse	"Item not found"
//	@Router		/remove-from-cart/{variant}/{slug}/ [get]
func (h *CartHandler) RemoveFromCart() http.HandlerFunc {
	return h.mutate("remove", func(r *http.Request, cart *models.Cart, variant, slug string) (*models.Cart, error) {
		return h.cartService.RemoveLine(r.Context(), cart, variant, slug)
	})
}

// ChangeQty godoc
//
//	@Summary	Change the quantity of a cart line
//	@Tags		Cart
//	@Accept		x-www-form-urlencoded
//	@Param		variant	path		string	true	"Product kind"	Enums(shoes, pants, hoodie)
//	@Param		slug	path		string	true	"Product slug"
//	@Param		qty		formData	int		true	"New quantity"
//	@Success	303
//	@Failure	400	{object}	response.ErrorResponse	"qty is not a number"
//	@Failure	404	{object}	response.ErrorResponse	"Item not found"
//	@Router		/change-qty/{variant}/{slug}/ [post]
func (h *CartHandler) ChangeQty() http.HandlerFunc {
	return h.mutate("qty", func(r *http.Request, cart *models.Cart, variant, slug string) (*models.Cart, error) {

		qty, err := strconv.Atoi(r.FormValue("qty"))
		if err != nil {
			return nil, errors.AddValidationError("qty", "must be a whole number")
		}

		return h.cartService.ChangeQuantity(r.Context(), cart, variant, slug, qty)
	})
}
