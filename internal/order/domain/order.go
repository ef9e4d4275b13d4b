package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusFailed    OrderStatus = "failed"
	StatusCancelled OrderStatus = "cancelled"
	StatusFulfilled OrderStatus = "fulfilled"
)

type Customer struct {
	FullName string `bson:"full_name" json:"full_name" binding:"required"`
	Phone    string `bson:"phone" json:"phone" binding:"required"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Address  string `bson:"address,omitempty" json:"address,omitempty"`
}

// OrderItem snapshots the product name and unit price at order time.
// Quantity is a float to support fractional kg amounts.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id" binding:"required"`
	Name      string  `bson:"name" json:"name" binding:"required"`
	Quantity  float64 `bson:"quantity" json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `bson:"unit_price" json:"unit_price" binding:"gte=0"`
	Total     float64 `bson:"total" json:"total" binding:"gte=0"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Customer      Customer           `bson:"customer" json:"customer"`
	Items         []OrderItem        `bson:"items" json:"items"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	PaymentMethod string             `bson:"payment_method" json:"payment_method"`
	Status        OrderStatus        `bson:"status" json:"status"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateOrderRequest leaves the items list unconstrained in size: an empty
// order with a zero subtotal passes the subtotal check and is accepted.
type CreateOrderRequest struct {
	Customer      Customer    `json:"customer" binding:"required"`
	Items         []OrderItem `json:"items" binding:"dive"`
	Subtotal      *float64    `json:"subtotal" binding:"required,gte=0"`
	PaymentMethod string      `json:"payment_method" binding:"required"`
	Status        OrderStatus `json:"status"`
	Notes         string      `json:"notes"`
}

type CreateOrderResponse struct {
	OrderID string      `json:"order_id"`
	Status  OrderStatus `json:"status"`
}

// OrderFilter narrows admin listings. A zero Limit falls back to the
// service default.
type OrderFilter struct {
	Status string
	Limit  int64
}

// OrderUpdate carries the admin status transition. Any status in the
// vocabulary may follow any other; there is no transition graph. Notes are
// only written when present.
type OrderUpdate struct {
	Status OrderStatus `json:"status" binding:"required,oneof=pending paid failed cancelled fulfilled"`
	Notes  *string     `json:"notes"`
}
