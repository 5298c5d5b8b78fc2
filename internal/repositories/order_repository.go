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

// ErrCartSealed is returned when a cart write or checkout finds the cart already attached to an order.
var ErrCartSealed = errors.New("cart is already in an order")

type OrderRepository interface {
	PlaceOrder(ctx context.Context, order *models.Order, cartID uuid.UUID) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByClient(ctx context.Context, clientID uuid.UUID, page int, size int) ([]models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, from models.OrderStatus, to models.OrderStatus) (*models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// PlaceOrder inserts the order, seals the cart and links the two in one transaction.
// Nothing is persisted unless all three writes succeed. The cart row is locked
// first, so the sealed totals are summed from lines no writer can still change.
func (r *orderRepository) PlaceOrder(ctx context.Context, order *models.Order, cartID uuid.UUID) (err error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
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

	if err = lockOpenCart(dbCtx, tx, cartID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = fmt.Errorf("cart not found: %w", err)
		}
		return err
	}

	insertQuery := `
		INSERT INTO orders (id, client_id, first_name, last_name, phone, address, status, buying_type, comment, order_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, insertQuery, order.ID, order.ClientID, order.FirstName, order.LastName, order.Phone, order.Address,
		order.Status, order.BuyingType, order.Comment, order.OrderDate).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	sealQuery := `
		UPDATE carts
		SET in_order = true,
			total_products = (SELECT COALESCE(SUM(qty), 0) FROM cart_lines WHERE cart_id = $1),
			final_price = (SELECT COALESCE(SUM(final_price), 0) FROM cart_lines WHERE cart_id = $1),
			updated_at = NOW()
		WHERE id = $1 AND in_order = false
		RETURNING final_price
	`

	err = tx.QueryRowContext(dbCtx, sealQuery, cartID).Scan(&order.FinalPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrCartSealed
			return err
		}
		return fmt.Errorf("failed to seal cart: %w", err)
	}

	linkQuery := `UPDATE orders SET cart_id = $1 WHERE id = $2`

	if err = execAffectingOne(dbCtx, tx, linkQuery, cartID, order.ID); err != nil {
		return fmt.Errorf("failed to link cart to order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	order.CartID = &cartID

	return nil
}

const orderSelect = `
	SELECT o.id, o.client_id, o.first_name, o.last_name, o.phone, o.address, o.status, o.buying_type, o.comment,
		o.created_at, o.updated_at, o.order_date, o.cart_id, COALESCE(c.final_price, 0)
	FROM orders o
	LEFT JOIN carts c ON c.id = o.cart_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{}

	var cartID uuid.NullUUID

	err := row.Scan(&order.ID, &order.ClientID, &order.FirstName, &order.LastName, &order.Phone, &order.Address, &order.Status,
		&order.BuyingType, &order.Comment, &order.CreatedAt, &order.UpdatedAt, &order.OrderDate, &cartID, &order.FinalPrice)
	if err != nil {
		return nil, err
	}

	if cartID.Valid {
		order.CartID = &cartID.UUID
	}

	return order, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, orderSelect+" WHERE o.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return order, nil
}

func (r *orderRepository) ListOrdersByClient(ctx context.Context, clientID uuid.UUID, page int, size int) ([]models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM orders WHERE client_id = $1`
	if err := r.DB.QueryRowContext(dbCtx, countQuery, clientID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * size

	rows, err := r.DB.QueryContext(dbCtx, orderSelect+" WHERE o.client_id = $1 ORDER BY o.created_at DESC LIMIT $2 OFFSET $3", clientID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}

		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return orders, total, nil
}

// UpdateOrderStatus moves an order from one status to another.
// sql.ErrNoRows means the order is missing or no longer in the from status.
func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from models.OrderStatus, to models.OrderStatus) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`

	if err := execAffectingOne(dbCtx, r.DB, query, to, id, from); err != nil {
		return nil, err
	}

	return r.GetOrderByID(ctx, id)
}
