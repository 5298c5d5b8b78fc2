package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	"github.com/aaravmahajanofficial/clothing-store/internal/utils"
	"github.com/google/uuid"
)

type ClientRepository interface {
	GetClientByUserID(ctx context.Context, userID uuid.UUID) (*models.Client, error)
	GetOrCreateClient(ctx context.Context, userID uuid.UUID) (*models.Client, bool, error)
}

type clientRepository struct {
	DB *sql.DB
}

func NewClientRepo(db *sql.DB) ClientRepository {
	return &clientRepository{DB: db}
}

func (r *clientRepository) GetClientByUserID(ctx context.Context, userID uuid.UUID) (*models.Client, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, user_id, phone, address, created_at FROM clients WHERE user_id = $1`

	client := &models.Client{}

	err := r.DB.QueryRowContext(dbCtx, query, userID).Scan(&client.ID, &client.UserID, &client.Phone, &client.Address, &client.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return client, nil
}

// GetOrCreateClient returns the user's client, creating an empty one on a miss.
// The boolean reports whether a row was created.
func (r *clientRepository) GetOrCreateClient(ctx context.Context, userID uuid.UUID) (*models.Client, bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO clients (id, user_id, phone, address, created_at)
		VALUES ($1, $2, '', '', NOW())
		ON CONFLICT (user_id) DO NOTHING
		RETURNING id, user_id, phone, address, created_at
	`

	client := &models.Client{}

	err := r.DB.QueryRowContext(dbCtx, query, uuid.New(), userID).Scan(&client.ID, &client.UserID, &client.Phone, &client.Address, &client.CreatedAt)
	if err == nil {
		return client, true, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to insert client: %w", err)
	}

	existing, err := r.GetClientByUserID(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	return existing, false, nil
}
