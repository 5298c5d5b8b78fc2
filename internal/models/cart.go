package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Cart struct {
	ID            uuid.UUID       `json:"id"`
	OwnerID       *uuid.UUID      `json:"owner_id,omitempty"`
	SessionKey    string          `json:"-"`
	Lines         []CartLine      `json:"lines"`
	TotalProducts int             `json:"total_products"`
	FinalPrice    decimal.Decimal `json:"final_price"`
	InOrder       bool            `json:"in_order"`
	Anonymous     bool            `json:"anonymous"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// MaxStoredPrice is the largest magnitude a NUMERIC(9, 2) price column holds.
var MaxStoredPrice = decimal.RequireFromString("9999999.99")

// FitsCartStorage reports whether a quantity and price fit the INTEGER and
// NUMERIC(9, 2) columns of cart_lines and carts.
func FitsCartStorage(qty int, price decimal.Decimal) bool {
	if qty > math.MaxInt32 || qty < math.MinInt32 {
		return false
	}

	return !price.Round(2).Abs().GreaterThan(MaxStoredPrice)
}

// Open reports whether the cart still accepts line changes.
func (c *Cart) Open() bool {
	return !c.InOrder
}

// CartLine is one product entry in a cart. Title, Slug and UnitPrice are
// read from the product row when lines are listed.
type CartLine struct {
	ID         int64           `json:"id"`
	ClientID   *uuid.UUID      `json:"client_id,omitempty"`
	CartID     uuid.UUID       `json:"cart_id"`
	Product    ProductRef      `json:"product"`
	Qty        int             `json:"qty"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Title      string          `json:"title,omitempty"`
	Slug       string          `json:"slug,omitempty"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// CartOwner is the identity a cart is resolved for: a user, or an anonymous session key.
type CartOwner struct {
	UserID     *uuid.UUID
	SessionKey string
}

func (o CartOwner) Authenticated() bool {
	return o.UserID != nil
}

// CartBadge is the small cart summary shown on every page.
type CartBadge struct {
	ID            uuid.UUID       `json:"id"`
	TotalProducts int             `json:"total_products"`
	FinalPrice    decimal.Decimal `json:"final_price"`
}

func (c *Cart) Badge() *CartBadge {
	return &CartBadge{ID: c.ID, TotalProducts: c.TotalProducts, FinalPrice: c.FinalPrice}
}

type CheckoutPage struct {
	Cart   *Cart             `json:"cart"`
	Form   CheckoutRequest   `json:"form"`
	Errors []string          `json:"errors,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}
