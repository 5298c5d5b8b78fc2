package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusCompleted  OrderStatus = "completed"
)

var orderStatusFlow = map[OrderStatus]OrderStatus{
	OrderStatusNew:        OrderStatusInProgress,
	OrderStatusInProgress: OrderStatusReady,
	OrderStatusReady:      OrderStatusCompleted,
}

// Next returns the status that follows s, if any.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next, ok := orderStatusFlow[s]
	return next, ok
}

// CanTransitionTo allows only the single forward step of the order workflow.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	next, ok := s.Next()
	return ok && next == target
}

type BuyingType string

const (
	BuyingTypeSelf     BuyingType = "self"
	BuyingTypeDelivery BuyingType = "delivery"
)

// OrderDateLayout is the accepted format of the requested delivery date.
const OrderDateLayout = "2006-01-02"

type Order struct {
	ID         uuid.UUID       `json:"id"`
	ClientID   uuid.UUID       `json:"client_id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	Status     OrderStatus     `json:"status"`
	BuyingType BuyingType      `json:"buying_type"`
	Comment    string          `json:"comment,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	OrderDate  time.Time       `json:"order_date"`
	CartID     *uuid.UUID      `json:"cart_id,omitempty"`
	FinalPrice decimal.Decimal `json:"final_price"`
}

// CheckoutRequest is the submitted order form.
type CheckoutRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=255"`
	LastName   string `json:"last_name" validate:"required,max=255"`
	Phone      string `json:"phone" validate:"required,max=20"`
	Address    string `json:"address" validate:"required,max=1024"`
	BuyingType string `json:"buying_type" validate:"required,oneof=self delivery"`
	OrderDate  string `json:"order_date" validate:"required,datetime=2006-01-02"`
	Comment    string `json:"comment" validate:"max=2000"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=new in_progress ready completed"`
}

type OrderHistoryResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Size   int     `json:"size"`
}

// OrderPlacedEvent is published once a checkout commits.
type OrderPlacedEvent struct {
	OrderID    uuid.UUID       `json:"order_id"`
	ClientID   uuid.UUID       `json:"client_id"`
	CartID     uuid.UUID       `json:"cart_id"`
	BuyingType BuyingType      `json:"buying_type"`
	Lines      []CartLine      `json:"lines"`
	FinalPrice decimal.Decimal `json:"final_price"`
	PlacedAt   time.Time       `json:"placed_at"`
}
