package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartLine references a product unit selected by a customer.
type CartLine struct {
	UnitId      string `bson:"unitId" json:"unitId" validate:"required"`
	ProductId   string `bson:"productId" json:"productId" validate:"required"`
	SellerEmail string `bson:"sellerEmail" json:"sellerEmail"`
	Quantity    int    `bson:"quantity" json:"quantity" validate:"required,min=1"`
}

// Cart is the single cart document of one customer, keyed by email.
type Cart struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Items     []CartLine         `bson:"items" json:"items"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// LineByUnit returns the index of the line holding unitId, or -1.
func (c *Cart) LineByUnit(unitId string) int {
	for i, line := range c.Items {
		if line.UnitId == unitId {
			return i
		}
	}
	return -1
}
