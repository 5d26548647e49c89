package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentPending        = "pending"
	PaymentSucceeded      = "succeeded"
	PaymentRequiresAction = "requires_action"
	PaymentFailed         = "failed"
)

// PaymentLine is a denormalized snapshot of one cart line at checkout time.
// Prices here are the ones charged, independent of later listing changes.
type PaymentLine struct {
	ProductId   string  `bson:"productId" json:"productId"`
	UnitId      string  `bson:"unitId" json:"unitId"`
	SellerEmail string  `bson:"sellerEmail" json:"sellerEmail"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unitPrice" json:"unitPrice"`
	Subtotal    float64 `bson:"subtotal" json:"subtotal"`
}

// PaymentRecord is written with status pending before the processor is
// called; its status is reconciled from the processor outcome afterwards.
type PaymentRecord struct {
	Id    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Items []PaymentLine      `bson:"items" json:"items"`

	CalculatedTotal float64 `bson:"calculatedTotal" json:"calculatedTotal"`
	ShippingFee     float64 `bson:"shippingFee" json:"shippingFee"`
	FinalAmount     float64 `bson:"finalAmount" json:"finalAmount"`
	Currency        string  `bson:"currency" json:"currency"`

	ProcessorOrderId   string `bson:"processorOrderId,omitempty" json:"processorOrderId,omitempty"`
	ProcessorPaymentId string `bson:"processorPaymentId,omitempty" json:"processorPaymentId,omitempty"`
	Status             string `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
