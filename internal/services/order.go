package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/aaravmahajanofficial/clothing-store/internal/events"
	"github.com/aaravmahajanofficial/clothing-store/internal/metrics"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	repository "github.com/aaravmahajanofficial/clothing-store/internal/repositories"
	"github.com/aaravmahajanofficial/clothing-store/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type OrderService interface {
	Checkout(ctx context.Context, principal *models.Claims, cart *models.Cart, req *models.CheckoutRequest) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByClient(ctx context.Context, clientID uuid.UUID, page int, size int) (*models.OrderHistoryResponse, error)
}

type orderService struct {
	orderRepo  repository.OrderRepository
	cartRepo   repository.CartRepository
	clientRepo repository.ClientRepository
	notifier   NotificationService
	publisher  events.Publisher
	validator  *validator.Validate
	sanitizer  *bluemonday.Policy
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, clientRepo repository.ClientRepository, notifier NotificationService, publisher events.Publisher) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		cartRepo:   cartRepo,
		clientRepo: clientRepo,
		notifier:   notifier,
		publisher:  publisher,
		validator:  utils.NewValidator(),
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

func (s *orderService) validate(req *models.CheckoutRequest) error {

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	req.OrderDate = strings.TrimSpace(req.OrderDate)

	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return utils.ValidationAppError(validationErrs)
	}

	return appErrors.ValidationError("Invalid order form").WithError(err)
}

// Checkout turns the open cart into an order. The order insert, the cart seal and the
// order-cart link commit together; the confirmation mail and event follow the commit.
func (s *orderService) Checkout(ctx context.Context, principal *models.Claims, cart *models.Cart, req *models.CheckoutRequest) (*models.Order, error) {

	logger := middleware.LoggerFromContext(ctx)

	if err := s.validate(req); err != nil {
		return nil, err
	}

	orderDate, err := time.Parse(models.OrderDateLayout, req.OrderDate)
	if err != nil {
		return nil, appErrors.AddValidationError("order_date", "must be a calendar date in the format YYYY-MM-DD")
	}

	if principal == nil {
		return nil, appErrors.UnauthorizedError("Authentication required to place an order")
	}

	client, err := s.clientRepo.GetClientByUserID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.UnauthorizedError("No client profile for this account")
		}
		return nil, appErrors.DatabaseError("Failed to load client").WithError(err)
	}

	if err := ensureOpen(cart); err != nil {
		return nil, err
	}

	if cart.OwnerID == nil || *cart.OwnerID != client.ID {
		return nil, appErrors.BadRequestError("Cart does not belong to this client")
	}

	lines, err := s.cartRepo.ListLines(ctx, cart.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart lines").WithError(err)
	}

	if len(lines) == 0 {
		return nil, appErrors.BadRequestError("Cannot place an order with an empty cart")
	}

	order := &models.Order{
		ID:         uuid.New(),
		ClientID:   client.ID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Address:    req.Address,
		Status:     models.OrderStatusNew,
		BuyingType: models.BuyingType(req.BuyingType),
		Comment:    s.sanitizer.Sanitize(req.Comment),
		OrderDate:  orderDate,
	}

	if err := s.orderRepo.PlaceOrder(ctx, order, cart.ID); err != nil {
		logger.Error("Checkout transaction rolled back", slog.String("cartId", cart.ID.String()), slog.Any("error", err))

		if errors.Is(err, repository.ErrCartSealed) {
			return nil, appErrors.OrderFailedError("Order failed").WithDetail("cart is already part of an order").WithError(err)
		}

		return nil, appErrors.OrderFailedError("Order failed").WithError(err)
	}

	cart.InOrder = true
	cart.Lines = lines

	logger.Info("Order placed",
		slog.String("orderId", order.ID.String()),
		slog.String("cartId", cart.ID.String()),
		slog.String("finalPrice", order.FinalPrice.StringFixed(2)))

	s.afterCommit(ctx, principal, order, cart.ID, lines)

	return order, nil
}

// afterCommit never fails the checkout; problems are only logged.
func (s *orderService) afterCommit(ctx context.Context, principal *models.Claims, order *models.Order, cartID uuid.UUID, lines []models.CartLine) {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("orderId", order.ID.String()))

	metrics.RecordOrderPlaced(string(order.BuyingType))

	if _, err := s.notifier.SendOrderConfirmation(ctx, order, principal.Email, lines); err != nil {
		logger.Warn("Order confirmation not delivered", slog.Any("error", err))
	}

	event := &models.OrderPlacedEvent{
		OrderID:    order.ID,
		ClientID:   order.ClientID,
		CartID:     cartID,
		BuyingType: order.BuyingType,
		Lines:      lines,
		FinalPrice: order.FinalPrice,
		PlacedAt:   order.CreatedAt,
	}

	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.Warn("Order event not published", slog.Any("error", err))
	}
}

// UpdateOrderStatus accepts only the single next step of new, in_progress, ready, completed.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, appErrors.BadRequestError(fmt.Sprintf("Cannot move order from %s to %s", order.Status, status))
	}

	updated, err := s.orderRepo.UpdateOrderStatus(ctx, id, order.Status, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.BadRequestError("Order status was changed by another request")
		}
		return nil, appErrors.DatabaseError("Failed to update order status").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Order status changed",
		slog.String("orderId", id.String()),
		slog.String("from", string(order.Status)),
		slog.String("to", string(status)))

	return updated, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found")
		}
		return nil, appErrors.DatabaseError("Failed to load order").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrdersByClient(ctx context.Context, clientID uuid.UUID, page int, size int) (*models.OrderHistoryResponse, error) {

	orders, total, err := s.orderRepo.ListOrdersByClient(ctx, clientID, page, size)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list orders").WithError(err)
	}

	return &models.OrderHistoryResponse{Orders: orders, Total: total, Page: page, Size: size}, nil
}
