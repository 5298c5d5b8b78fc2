package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	"github.com/aaravmahajanofficial/clothing-store/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/clothing-store/internal/services"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func requireAppError(t *testing.T, err error, code string) *appErrors.AppError {
	t.Helper()

	require.Error(t, err)

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)

	return appErr
}

func TestIdentityService_ResolveCart_Authenticated(t *testing.T) {
	userID := uuid.New()
	client := &models.Client{ID: uuid.New(), UserID: userID}
	owner := models.CartOwner{UserID: &userID}

	t.Run("Existing Open Cart", func(t *testing.T) {
		clientRepo := mocks.NewClientRepository(t)
		cartRepo := mocks.NewCartRepository(t)
		identity := service.NewIdentityService(clientRepo, cartRepo)
		ctx := context.Background()

		existing := &models.Cart{ID: uuid.New(), OwnerID: &client.ID, TotalProducts: 2}

		clientRepo.On("GetOrCreateClient", ctx, userID).Return(client, false, nil).Once()
		cartRepo.On("GetOpenCartByOwner", ctx, client.ID).Return(existing, nil).Once()

		cart, err := identity.ResolveCart(ctx, owner)

		require.NoError(t, err)
		assert.Same(t, existing, cart)
	})

	t.Run("First Visit Creates Client And Cart", func(t *testing.T) {
		clientRepo := mocks.NewClientRepository(t)
		cartRepo := mocks.NewCartRepository(t)
		identity := service.NewIdentityService(clientRepo, cartRepo)
		ctx := context.Background()

		clientRepo.On("GetOrCreateClient", ctx, userID).Return(client, true, nil).Once()
		cartRepo.On("GetOpenCartByOwner", ctx, client.ID).Return(nil, sql.ErrNoRows).Once()
		cartRepo.On("CreateCart", ctx, mock.MatchedBy(func(c *models.Cart) bool {
			return c.OwnerID != nil && *c.OwnerID == client.ID && !c.Anonymous && !c.InOrder
		})).Return(nil).Once()

		cart, err := identity.ResolveCart(ctx, owner)

		require.NoError(t, err)
		assert.Equal(t, client.ID, *cart.OwnerID)
		assert.NotEqual(t, uuid.Nil, cart.ID)
		assert.Empty(t, cart.Lines)
		assert.True(t, cart.FinalPrice.IsZero())
	})

	t.Run("Concurrent Creation Reloads", func(t *testing.T) {
		clientRepo := mocks.NewClientRepository(t)
		cartRepo := mocks.NewCartRepository(t)
		identity := service.NewIdentityService(clientRepo, cartRepo)
		ctx := context.Background()

		winner := &models.Cart{ID: uuid.New(), OwnerID: &client.ID}

		clientRepo.On("GetOrCreateClient", ctx, userID).Return(client, false, nil).Once()
		cartRepo.On("GetOpenCartByOwner", ctx, client.ID).Return(nil, sql.ErrNoRows).Once()
		cartRepo.On("CreateCart", ctx, mock.AnythingOfType("*models.Cart")).Return(&pq.Error{Code: "23505"}).Once()
		cartRepo.On("GetOpenCartByOwner", ctx, client.ID).Return(winner, nil).Once()

		cart, err := identity.ResolveCart(ctx, owner)

		require.NoError(t, err)
		assert.Same(t, winner, cart)
	})

	t.Run("Client Storage Failure", func(t *testing.T) {
		clientRepo := mocks.NewClientRepository(t)
		cartRepo := mocks.NewCartRepository(t)
		identity := service.NewIdentityService(clientRepo, cartRepo)
		ctx := context.Background()

		dbErr := errors.New("connection reset")
		clientRepo.On("GetOrCreateClient", ctx, userID).Return(nil, false, dbErr).Once()

		cart, err := identity.ResolveCart(ctx, owner)

		assert.Nil(t, cart)
		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("Cart Lookup Failure", func(t *testing.T) {
		clientRepo := mocks.NewClientRepository(t)
		cartRepo := mocks.NewCartRepository(t)
		identity := service.NewIdentityService(clientRepo, cartRepo)
		ctx := context.Background()

		clientRepo.On("GetOrCreateClient", ctx, userID).Return(client, false, nil).Once()
		cartRepo.On("GetOpenCartByOwner", ctx, client.ID).Return(nil, errors.New("timeout")).Once()

		_, err := identity.ResolveCart(ctx, owner)

		appErr := requireAppError(t, err, appErrors.ErrCodeDatabaseError)
		assert.Equal(t, "Failed to load cart", appErr.Message)
	})
}

func TestIdentityService_ResolveCart_Anonymous(t *testing.T) {
	t.Run("Session Cart Reused", func(t *testing.T) {
		cartRepo := mocks.NewCartRepository(t)
		identity := service.NewIdentityService(mocks.NewClientRepository(t), cartRepo)
		ctx := context.Background()

		existing := &models.Cart{ID: uuid.New(), SessionKey: "visitor-a", Anonymous: true}
		cartRepo.On("GetOpenCartBySession", ctx, "visitor-a").Return(existing, nil).Once()

		cart, err := identity.ResolveCart(ctx, models.CartOwner{SessionKey: "visitor-a"})

		require.NoError(t, err)
		assert.Same(t, existing, cart)
	})

	t.Run("New Session Gets Own Cart", func(t *testing.T) {
		cartRepo := mocks.NewCartRepository(t)
		identity := service.NewIdentityService(mocks.NewClientRepository(t), cartRepo)
		ctx := context.Background()

		cartRepo.On("GetOpenCartBySession", ctx, "visitor-b").Return(nil, sql.ErrNoRows).Once()
		cartRepo.On("CreateCart", ctx, mock.MatchedBy(func(c *models.Cart) bool {
			return c.Anonymous && c.OwnerID == nil && c.SessionKey == "visitor-b"
		})).Return(nil).Once()

		cart, err := identity.ResolveCart(ctx, models.CartOwner{SessionKey: "visitor-b"})

		require.NoError(t, err)
		assert.True(t, cart.Anonymous)
		assert.Equal(t, "visitor-b", cart.SessionKey)
	})

	t.Run("Missing Session Key", func(t *testing.T) {
		identity := service.NewIdentityService(mocks.NewClientRepository(t), mocks.NewCartRepository(t))

		_, err := identity.ResolveCart(context.Background(), models.CartOwner{})

		requireAppError(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("Create Failure", func(t *testing.T) {
		cartRepo := mocks.NewCartRepository(t)
		identity := service.NewIdentityService(mocks.NewClientRepository(t), cartRepo)
		ctx := context.Background()

		cartRepo.On("GetOpenCartBySession", ctx, "visitor-c").Return(nil, sql.ErrNoRows).Once()
		cartRepo.On("CreateCart", ctx, mock.AnythingOfType("*models.Cart")).Return(errors.New("disk full")).Once()

		_, err := identity.ResolveCart(ctx, models.CartOwner{SessionKey: "visitor-c"})

		appErr := requireAppError(t, err, appErrors.ErrCodeDatabaseError)
		assert.Equal(t, "Failed to create cart", appErr.Message)
	})
}

func TestIdentityService_ResolveClient(t *testing.T) {
	clientRepo := mocks.NewClientRepository(t)
	identity := service.NewIdentityService(clientRepo, mocks.NewCartRepository(t))
	ctx := context.Background()
	userID := uuid.New()
	client := &models.Client{ID: uuid.New(), UserID: userID, Phone: "+100"}

	clientRepo.On("GetOrCreateClient", ctx, userID).Return(client, false, nil).Once()

	got, err := identity.ResolveClient(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, client, got)
}
