package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	"github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	service "github.com/aaravmahajanofficial/clothing-store/internal/services"
	"github.com/aaravmahajanofficial/clothing-store/internal/utils"
	"github.com/aaravmahajanofficial/clothing-store/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	identityService service.IdentityService
	cartService     service.CartService
	orderService    service.OrderService
	validator       *validator.Validate
}

func NewOrderHandler(identityService service.IdentityService, cartService service.CartService, orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		identityService: identityService,
		cartService:     cartService,
		orderService:    orderService,
		validator:       utils.NewValidator(),
	}
}

func decodeCheckout(r *http.Request) (*models.CheckoutRequest, error) {

	var req models.CheckoutRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			return nil, errors.BadRequestError("Invalid request body").WithError(err)
		}
		return &req, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, errors.BadRequestError("Invalid order form").WithError(err)
	}

	req.FirstName = r.PostFormValue("first_name")
	req.LastName = r.PostFormValue("last_name")
	req.Phone = r.PostFormValue("phone")
	req.Address = r.PostFormValue("address")
	req.BuyingType = r.PostFormValue("buying_type")
	req.OrderDate = r.PostFormValue("order_date")
	req.Comment = r.PostFormValue("comment")

	return &req, nil
}

// CheckoutPage godoc
//
//	@Summary		Checkout page
//	@Description	The open cart and an empty order form.
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	models.CheckoutPage
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/checkout/ [get]
func (h *OrderHandler) CheckoutPage() http.HandlerFunc {
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

		response.Success(w, http.StatusOK, models.CheckoutPage{Cart: cart})
	}
}

// rejectCheckoutForm answers a browser submit that failed validation with the
// checkout page again, keeping the submitted values and one message per field.
func (h *OrderHandler) rejectCheckoutForm(w http.ResponseWriter, r *http.Request, cart *models.Cart, req *models.CheckoutRequest, appErr *errors.AppError) {

	logger := middleware.LoggerFromContext(r.Context())

	cart, err := h.cartService.GetCart(r.Context(), cart)
	if err != nil {
		logger.Error("Failed to load cart", slog.Any("error", err))
		response.Error(w, err)
		return
	}

	page := models.CheckoutPage{
		Cart:   cart,
		Form:   *req,
		Errors: appErr.FieldNames(),
		Fields: appErr.Fields,
	}

	response.WriteJson(w, http.StatusBadRequest, response.APIResponse{
		Success: false,
		Data:    page,
		Error: &response.ErrorResponse{
			Code:    appErr.Code,
			Message: appErr.Message,
			Fields:  appErr.Fields,
		},
	})
}

// MakeOrder godoc
//
//	@Summary		Place an order
//	@Description	Turns the signed-in client's open cart into an order. Browsers are redirected on success and get the checkout page back on a validation error; callers sending Accept: application/json get the envelope.
//	@Tags			Orders
//	@Accept			x-www-form-urlencoded
//	@Accept			json
//	@Produce		json
//	@Param			first_name	formData	string	true	"First name"
//	@Param			last_name	formData	string	true	"Last name"
//	@Param			phone		formData	string	true	"Phone"
//	@Param			address		formData	string	true	"Address"
//	@Param			buying_type	formData	string	true	"Buying type"	Enums(self, delivery)
//	@Param			order_date	formData	string	true	"Requested date, YYYY-MM-DD"
//	@Param			comment		formData	string	false	"Comment"
//	@Success		201			{object}	models.Order
//	@Success		303
//	@Failure		400	{object}	models.CheckoutPage		"Validation error with the submitted form, or empty cart"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Order failed"
//	@Security		BearerAuth
//	@Router			/make-order/ [post]
func (h *OrderHandler) MakeOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		asJSON := wantsJSON(r)

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Anonymous checkout attempt")
			if asJSON {
				response.Error(w, errors.UnauthorizedError("Authentication required"))
				return
			}
			seeOther(w, r, loginPath)
			return
		}

		req, err := decodeCheckout(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err := h.identityService.ResolveCart(r.Context(), cartOwner(r))
		if err != nil {
			logger.Error("Failed to resolve cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		order, err := h.orderService.Checkout(r.Context(), claims, cart, req)
		if err != nil {
			appErr, isApp := errors.IsAppError(err)

			if isApp && appErr.Code == errors.ErrCodeValidation && !asJSON {
				logger.Info("Order form rejected", slog.Any("fields", appErr.FieldNames()))
				h.rejectCheckoutForm(w, r, cart, req, appErr)
				return
			}

			logger.Error("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed", slog.String("orderId", order.ID.String()))

		if asJSON {
			response.Success(w, http.StatusCreated, order)
			return
		}

		seeOther(w, r, homePath)
	}
}

// UpdateOrderStatus godoc
//
//	@Summary		Advance an order
//	@Description	Moves an order to the next status of new, in_progress, ready, completed.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Order ID (UUID)"	Format(uuid)
//	@Param			status	body		models.UpdateOrderStatusRequest	true	"New status"
//	@Success		200		{object}	models.Order
//	@Failure		400		{object}	response.ErrorResponse	"Invalid id or transition"
//	@Failure		403		{object}	response.ErrorResponse	"Admin privileges required"
//	@Failure		404		{object}	response.ErrorResponse	"Order not found"
//	@Security		BearerAuth
//	@Router			/api/v1/admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("orderId", id.String()))

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update order status input")
			return
		}

		order, err := h.orderService.UpdateOrderStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Warn("Failed to update order status", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order status updated successfully", slog.String("status", string(order.Status)))
		response.Success(w, http.StatusOK, order)
	}
}
