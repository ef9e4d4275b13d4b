package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MethodMobileMoney = "mobile_money"
	MethodCard        = "card"

	StatusInitiated = "initiated"
	StatusPending   = "pending"
)

// Payment records an intent to pay, not a completed transaction.
type Payment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID   string             `bson:"order_id" json:"order_id"`
	Method    string             `bson:"method" json:"method"`
	Amount    float64            `bson:"amount" json:"amount"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Status    string             `bson:"status" json:"status"`
	Reference string             `bson:"reference" json:"reference"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type InitPaymentRequest struct {
	OrderID string   `json:"order_id" binding:"required"`
	Method  string   `json:"method" binding:"required,oneof=mobile_money card"`
	Amount  *float64 `json:"amount" binding:"required,gte=0"`
	Phone   string   `json:"phone"`
}

type InitPaymentResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

type PaymentStatusResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}
