package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/aaravmahajanofficial/clothing-store/internal/metrics"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	repository "github.com/aaravmahajanofficial/clothing-store/internal/repositories"
	"github.com/shopspring/decimal"
)

// CartService changes the lines of an open cart. Every mutation ends with a full Recalc.
type CartService interface {
	AddLine(ctx context.Context, cart *models.Cart, variant string, slug string) (*models.Cart, error)
	RemoveLine(ctx context.Context, cart *models.Cart, variant string, slug string) (*models.Cart, error)
	ChangeQuantity(ctx context.Context, cart *models.Cart, variant string, slug string, qty int) (*models.Cart, error)
	Recalc(ctx context.Context, cart *models.Cart) (*models.Cart, error)
	GetCart(ctx context.Context, cart *models.Cart) (*models.Cart, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
}

func NewCartService(cartRepo repository.CartRepository, catalogRepo repository.CatalogRepository) CartService {
	return &cartService{cartRepo: cartRepo, catalogRepo: catalogRepo}
}

func ensureOpen(cart *models.Cart) error {
	if cart == nil {
		return appErrors.BadRequestError("Cart is required")
	}

	if !cart.Open() {
		return appErrors.BadRequestError("Cart is already part of an order")
	}

	return nil
}

// cartSealed records that checkout took the cart before a write reached it.
func cartSealed(cart *models.Cart) error {
	cart.InOrder = true
	return appErrors.BadRequestError("Cart is already part of an order")
}

// lookupProduct resolves a storefront product reference. Unknown kinds and slugs both read as "Item not found".
func (s *cartService) lookupProduct(ctx context.Context, variant string, slug string) (models.Product, error) {

	kind, err := models.ParseVariantKind(variant)
	if err != nil {
		return nil, err
	}

	product, err := s.catalogRepo.GetProductBySlug(ctx, kind, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found")
		}
		return nil, appErrors.DatabaseError("Failed to load product").WithError(err)
	}

	return product, nil
}

func (s *cartService) lookupLine(ctx context.Context, cart *models.Cart, ref models.ProductRef) (*models.CartLine, error) {

	line, err := s.cartRepo.GetLine(ctx, cart.ID, ref)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found in cart")
		}
		return nil, appErrors.DatabaseError("Failed to load cart line").WithError(err)
	}

	return line, nil
}

func (s *cartService) AddLine(ctx context.Context, cart *models.Cart, variant string, slug string) (*models.Cart, error) {

	if err := ensureOpen(cart); err != nil {
		return nil, err
	}

	product, err := s.lookupProduct(ctx, variant, slug)
	if err != nil {
		return nil, err
	}

	line := &models.CartLine{
		ClientID:   cart.OwnerID,
		CartID:     cart.ID,
		Product:    product.Ref(),
		Qty:        1,
		FinalPrice: product.GetPrice(),
	}

	created, err := s.cartRepo.GetOrCreateLine(ctx, line)
	if err != nil {
		if errors.Is(err, repository.ErrCartSealed) {
			return nil, cartSealed(cart)
		}
		return nil, appErrors.DatabaseError("Failed to add item to cart").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Cart line added",
		slog.String("cartId", cart.ID.String()),
		slog.String("product", models.ProductURL(product)),
		slog.Bool("created", created))

	metrics.RecordCartMutation(metrics.CartActionAdd)

	return s.Recalc(ctx, cart)
}

func (s *cartService) RemoveLine(ctx context.Context, cart *models.Cart, variant string, slug string) (*models.Cart, error) {

	if err := ensureOpen(cart); err != nil {
		return nil, err
	}

	product, err := s.lookupProduct(ctx, variant, slug)
	if err != nil {
		return nil, err
	}

	line, err := s.lookupLine(ctx, cart, product.Ref())
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteLine(ctx, cart.ID, line.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrCartSealed):
			return nil, cartSealed(cart)
		case errors.Is(err, sql.ErrNoRows):
			return nil, appErrors.NotFoundError("Item not found in cart")
		}
		return nil, appErrors.DatabaseError("Failed to remove item from cart").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Cart line removed",
		slog.String("cartId", cart.ID.String()),
		slog.Int64("lineId", line.ID))

	metrics.RecordCartMutation(metrics.CartActionRemove)

	return s.Recalc(ctx, cart)
}

// ChangeQuantity stores qty as given and reprices the line at the product's current price.
// Zero and negative quantities are kept; only values the cart columns cannot hold are rejected.
func (s *cartService) ChangeQuantity(ctx context.Context, cart *models.Cart, variant string, slug string, qty int) (*models.Cart, error) {

	if err := ensureOpen(cart); err != nil {
		return nil, err
	}

	product, err := s.lookupProduct(ctx, variant, slug)
	if err != nil {
		return nil, err
	}

	line, err := s.lookupLine(ctx, cart, product.Ref())
	if err != nil {
		return nil, err
	}

	finalPrice := product.GetPrice().Mul(decimal.NewFromInt(int64(qty)))
	cartQty := cart.TotalProducts - line.Qty + qty
	cartPrice := cart.FinalPrice.Sub(line.FinalPrice).Add(finalPrice)

	if !models.FitsCartStorage(qty, finalPrice) || !models.FitsCartStorage(cartQty, cartPrice) {
		return nil, appErrors.AddValidationError("qty", "is too large for the cart")
	}

	line.Qty = qty
	line.FinalPrice = finalPrice

	if err := s.cartRepo.UpdateLine(ctx, line); err != nil {
		switch {
		case errors.Is(err, repository.ErrCartSealed):
			return nil, cartSealed(cart)
		case errors.Is(err, sql.ErrNoRows):
			return nil, appErrors.NotFoundError("Item not found in cart")
		}
		return nil, appErrors.DatabaseError("Failed to change quantity").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Cart line quantity changed",
		slog.String("cartId", cart.ID.String()),
		slog.Int64("lineId", line.ID),
		slog.Int("qty", qty))

	metrics.RecordCartMutation(metrics.CartActionQty)

	return s.Recalc(ctx, cart)
}

// Recalc rebuilds the cart totals from every stored line.
func (s *cartService) Recalc(ctx context.Context, cart *models.Cart) (*models.Cart, error) {

	if err := ensureOpen(cart); err != nil {
		return nil, err
	}

	lines, err := s.cartRepo.ListLines(ctx, cart.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart lines").WithError(err)
	}

	totalProducts := 0
	finalPrice := decimal.Zero

	for _, line := range lines {
		totalProducts += line.Qty
		finalPrice = finalPrice.Add(line.FinalPrice)
	}

	cart.Lines = lines
	cart.TotalProducts = totalProducts
	cart.FinalPrice = finalPrice

	if err := s.cartRepo.UpdateCartTotals(ctx, cart); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cartSealed(cart)
		}
		return nil, appErrors.DatabaseError("Failed to update cart totals").WithError(err)
	}

	return cart, nil
}

func (s *cartService) GetCart(ctx context.Context, cart *models.Cart) (*models.Cart, error) {

	if cart == nil {
		return nil, appErrors.BadRequestError("Cart is required")
	}

	lines, err := s.cartRepo.ListLines(ctx, cart.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart lines").WithError(err)
	}

	cart.Lines = lines

	return cart, nil
}
