package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	repository "github.com/aaravmahajanofficial/clothing-store/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IdentityService binds the caller, signed in or not, to exactly one open cart.
type IdentityService interface {
	ResolveCart(ctx context.Context, owner models.CartOwner) (*models.Cart, error)
	ResolveClient(ctx context.Context, userID uuid.UUID) (*models.Client, error)
}

type identityService struct {
	clientRepo repository.ClientRepository
	cartRepo   repository.CartRepository
}

func NewIdentityService(clientRepo repository.ClientRepository, cartRepo repository.CartRepository) IdentityService {
	return &identityService{clientRepo: clientRepo, cartRepo: cartRepo}
}

// ResolveClient finds the buyer profile of a user, creating it on first use.
func (s *identityService) ResolveClient(ctx context.Context, userID uuid.UUID) (*models.Client, error) {

	client, created, err := s.clientRepo.GetOrCreateClient(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to resolve client").WithError(err)
	}

	if created {
		middleware.LoggerFromContext(ctx).Info("Client created", slog.String("clientId", client.ID.String()))
	}

	return client, nil
}

func (s *identityService) ResolveCart(ctx context.Context, owner models.CartOwner) (*models.Cart, error) {

	if owner.Authenticated() {

		client, err := s.ResolveClient(ctx, *owner.UserID)
		if err != nil {
			return nil, err
		}

		return s.findOrCreate(ctx,
			func() (*models.Cart, error) { return s.cartRepo.GetOpenCartByOwner(ctx, client.ID) },
			&models.Cart{ID: uuid.New(), OwnerID: &client.ID, FinalPrice: decimal.Zero},
		)
	}

	if owner.SessionKey == "" {
		return nil, appErrors.BadRequestError("Missing cart session")
	}

	return s.findOrCreate(ctx,
		func() (*models.Cart, error) { return s.cartRepo.GetOpenCartBySession(ctx, owner.SessionKey) },
		&models.Cart{ID: uuid.New(), SessionKey: owner.SessionKey, Anonymous: true, FinalPrice: decimal.Zero},
	)
}

// findOrCreate returns the open cart found by find, or stores fresh when there is none.
// Losing a creation race to a concurrent request falls back to that request's cart.
func (s *identityService) findOrCreate(ctx context.Context, find func() (*models.Cart, error), fresh *models.Cart) (*models.Cart, error) {

	logger := middleware.LoggerFromContext(ctx)

	cart, err := find()
	if err == nil {
		return cart, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	err = s.cartRepo.CreateCart(ctx, fresh)
	if err == nil {
		fresh.Lines = []models.CartLine{}
		logger.Info("Cart created", slog.String("cartId", fresh.ID.String()), slog.Bool("anonymous", fresh.Anonymous))
		return fresh, nil
	}

	if !repository.IsUniqueViolation(err) {
		return nil, appErrors.DatabaseError("Failed to create cart").WithError(err)
	}

	logger.Debug("Open cart created concurrently, reloading")

	cart, err = find()
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	return cart, nil
}
