package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProductPending  = "pending"
	ProductReleased = "released"
	ProductRejected = "rejected"
)

// Unit is one priced package variant of a product, e.g. "500 g" vs "1 kg".
type Unit struct {
	UnitId   string  `bson:"unitId" json:"unitId" validate:"required"`
	Value    int     `bson:"value" json:"value" validate:"required,gt=0"`
	Type     string  `bson:"type" json:"type" validate:"required"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"required,min=1"`
	Price    float64 `bson:"price" json:"price" validate:"required,gt=0"`
}

type Rating struct {
	Email string  `bson:"email" json:"email"`
	Value float64 `bson:"value" json:"value" validate:"min=0,max=5"`
}

type Product struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProductId   string             `bson:"productId" json:"productId"`
	SellerEmail string             `bson:"sellerEmail" json:"sellerEmail"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	Images      []string           `bson:"images" json:"images" validate:"required,min=1,dive,url"`
	Units       []Unit             `bson:"units" json:"units" validate:"required,min=1,dive"`
	Ratings     []Rating           `bson:"ratings" json:"ratings"`

	Status          string     `bson:"status" json:"status"`
	StatusChangedBy string     `bson:"statusChangedBy,omitempty" json:"statusChangedBy,omitempty"`
	StatusChangedAt *time.Time `bson:"statusChangedAt,omitempty" json:"statusChangedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// UnitById returns the unit with the given id, if present.
func (p *Product) UnitById(unitId string) (Unit, bool) {
	for _, u := range p.Units {
		if u.UnitId == unitId {
			return u, true
		}
	}
	return Unit{}, false
}

// AverageRating returns 0 for unrated products.
func (p *Product) AverageRating() float64 {
	if len(p.Ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range p.Ratings {
		sum += r.Value
	}
	return sum / float64(len(p.Ratings))
}
