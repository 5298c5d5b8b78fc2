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

type CartRepository interface {
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetOpenCartByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Cart, error)
	GetOpenCartBySession(ctx context.Context, sessionKey string) (*models.Cart, error)
	UpdateCartTotals(ctx context.Context, cart *models.Cart) error

	ListLines(ctx context.Context, cartID uuid.UUID) ([]models.CartLine, error)
	GetLine(ctx context.Context, cartID uuid.UUID, ref models.ProductRef) (*models.CartLine, error)
	GetOrCreateLine(ctx context.Context, line *models.CartLine) (bool, error)
	UpdateLine(ctx context.Context, line *models.CartLine) error
	DeleteLine(ctx context.Context, cartID uuid.UUID, id int64) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

const cartColumns = "id, owner_id, session_key, total_products, final_price, in_order, anonymous, created_at, updated_at"

func scanCart(row *sql.Row) (*models.Cart, error) {
	cart := &models.Cart{}

	var ownerID uuid.NullUUID
	var sessionKey sql.NullString

	err := row.Scan(&cart.ID, &ownerID, &sessionKey, &cart.TotalProducts, &cart.FinalPrice, &cart.InOrder, &cart.Anonymous, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	if ownerID.Valid {
		cart.OwnerID = &ownerID.UUID
	}

	cart.SessionKey = sessionKey.String

	return cart, nil
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var sessionKey sql.NullString
	if cart.SessionKey != "" {
		sessionKey = sql.NullString{String: cart.SessionKey, Valid: true}
	}

	query := `
		INSERT INTO carts (id, owner_id, session_key, total_products, final_price, in_order, anonymous, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, false, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, cart.ID, cart.OwnerID, sessionKey, cart.TotalProducts, cart.FinalPrice, cart.Anonymous).
		Scan(&cart.CreatedAt, &cart.UpdatedAt)
}

func (r *cartRepository) GetOpenCartByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := "SELECT " + cartColumns + " FROM carts WHERE owner_id = $1 AND in_order = false"

	return scanCart(r.DB.QueryRowContext(dbCtx, query, ownerID))
}

func (r *cartRepository) GetOpenCartBySession(ctx context.Context, sessionKey string) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := "SELECT " + cartColumns + " FROM carts WHERE session_key = $1 AND anonymous = true AND in_order = false"

	return scanCart(r.DB.QueryRowContext(dbCtx, query, sessionKey))
}

// UpdateCartTotals persists the recomputed totals of an open cart.
// A sealed or missing cart yields sql.ErrNoRows.
func (r *cartRepository) UpdateCartTotals(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE carts
		SET total_products = $1, final_price = $2, updated_at = NOW()
		WHERE id = $3 AND in_order = false
	`

	return execAffectingOne(dbCtx, r.DB, query, cart.TotalProducts, cart.FinalPrice, cart.ID)
}

func (r *cartRepository) ListLines(ctx context.Context, cartID uuid.UUID) ([]models.CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT l.id, l.client_id, l.cart_id, l.product_kind, l.product_id, l.qty, l.final_price,
			COALESCE(s.title, p.title, h.title, ''),
			COALESCE(s.slug, p.slug, h.slug, ''),
			COALESCE(s.price, p.price, h.price, 0)
		FROM cart_lines l
		LEFT JOIN shoes s ON l.product_kind = 'shoes' AND s.id = l.product_id
		LEFT JOIN pants p ON l.product_kind = 'pants' AND p.id = l.product_id
		LEFT JOIN hoodies h ON l.product_kind = 'hoodie' AND h.id = l.product_id
		WHERE l.cart_id = $1
		ORDER BY l.id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart lines: %w", err)
	}
	defer rows.Close()

	lines := []models.CartLine{}

	for rows.Next() {
		var line models.CartLine
		var clientID uuid.NullUUID

		err := rows.Scan(&line.ID, &clientID, &line.CartID, &line.Product.Kind, &line.Product.ID, &line.Qty, &line.FinalPrice,
			&line.Title, &line.Slug, &line.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}

		if clientID.Valid {
			line.ClientID = &clientID.UUID
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return lines, nil
}

// queryRower is satisfied by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// lockOpenCart takes the row lock checkout also takes on the cart, so a line
// write and a seal never interleave. A sealed cart yields ErrCartSealed.
func lockOpenCart(ctx context.Context, tx queryRower, cartID uuid.UUID) error {
	var inOrder bool

	err := tx.QueryRowContext(ctx, `SELECT in_order FROM carts WHERE id = $1 FOR UPDATE`, cartID).Scan(&inOrder)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("failed to lock cart: %w", err)
	}

	if inOrder {
		return ErrCartSealed
	}

	return nil
}

// inOpenCart runs fn in a transaction holding the lock of an open cart.
func (r *cartRepository) inOpenCart(ctx context.Context, cartID uuid.UUID, fn func(tx *sql.Tx) error) (err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rbErr))
			}
		}
	}()

	if err = lockOpenCart(ctx, tx, cartID); err != nil {
		return err
	}

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *cartRepository) GetLine(ctx context.Context, cartID uuid.UUID, ref models.ProductRef) (*models.CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return getLine(dbCtx, r.DB, cartID, ref)
}

func getLine(ctx context.Context, db queryRower, cartID uuid.UUID, ref models.ProductRef) (*models.CartLine, error) {
	query := `
		SELECT id, client_id, cart_id, product_kind, product_id, qty, final_price
		FROM cart_lines
		WHERE cart_id = $1 AND product_kind = $2 AND product_id = $3
	`

	line := &models.CartLine{}

	var clientID uuid.NullUUID

	err := db.QueryRowContext(ctx, query, cartID, ref.Kind, ref.ID).
		Scan(&line.ID, &clientID, &line.CartID, &line.Product.Kind, &line.Product.ID, &line.Qty, &line.FinalPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	if clientID.Valid {
		line.ClientID = &clientID.UUID
	}

	return line, nil
}

// GetOrCreateLine inserts line unless the cart already holds the product.
// On a hit line is overwritten with the stored row and false is returned.
// A sealed cart yields ErrCartSealed and nothing is written.
func (r *cartRepository) GetOrCreateLine(ctx context.Context, line *models.CartLine) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_lines (client_id, cart_id, product_kind, product_id, qty, final_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (cart_id, product_kind, product_id) DO NOTHING
		RETURNING id
	`

	created := false

	err := r.inOpenCart(dbCtx, line.CartID, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(dbCtx, query, line.ClientID, line.CartID, line.Product.Kind, line.Product.ID, line.Qty, line.FinalPrice).Scan(&line.ID)
		if err == nil {
			created = true
			return nil
		}

		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to insert cart line: %w", err)
		}

		existing, err := getLine(dbCtx, tx, line.CartID, line.Product)
		if err != nil {
			return fmt.Errorf("failed to load existing cart line: %w", err)
		}

		*line = *existing

		return nil
	})
	if err != nil {
		return false, err
	}

	return created, nil
}

// UpdateLine rewrites qty and final price of a line in an open cart.
func (r *cartRepository) UpdateLine(ctx context.Context, line *models.CartLine) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE cart_lines SET qty = $1, final_price = $2 WHERE id = $3 AND cart_id = $4`

	return r.inOpenCart(dbCtx, line.CartID, func(tx *sql.Tx) error {
		return execAffectingOne(dbCtx, tx, query, line.Qty, line.FinalPrice, line.ID, line.CartID)
	})
}

func (r *cartRepository) DeleteLine(ctx context.Context, cartID uuid.UUID, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.inOpenCart(dbCtx, cartID, func(tx *sql.Tx) error {
		return execAffectingOne(dbCtx, tx, `DELETE FROM cart_lines WHERE id = $1 AND cart_id = $2`, id, cartID)
	})
}
