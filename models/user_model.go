package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	RoleSeller   = "seller"
)

// AdminProfile is the role payload attached to admin accounts.
type AdminProfile struct {
	Salary float64 `bson:"salary" json:"salary"`
}

// CustomerProfile is the role payload attached to customer accounts.
type CustomerProfile struct {
	Points   int      `bson:"points" json:"points"`
	Wishlist []string `bson:"wishlist" json:"wishlist"`
}

// SellerProfile is the role payload attached to seller accounts.
type SellerProfile struct {
	Revenue  float64 `bson:"revenue" json:"revenue"`
	Released int     `bson:"released" json:"released"`
	Rejected int     `bson:"rejected" json:"rejected"`
}

type User struct {
	Id       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Email    string             `bson:"email" json:"email" validate:"required,email"`
	Password string             `bson:"password" json:"-"`
	ImageUrl string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Address  string             `bson:"address,omitempty" json:"address,omitempty"`
	Role     string             `bson:"role" json:"role" validate:"required,oneof=admin customer seller"`
	Banned   bool               `bson:"banned" json:"banned"`

	// Exactly one of these is set, matching Role.
	Admin    *AdminProfile    `bson:"admin,omitempty" json:"admin,omitempty"`
	Customer *CustomerProfile `bson:"customer,omitempty" json:"customer,omitempty"`
	Seller   *SellerProfile   `bson:"seller,omitempty" json:"seller,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

var ErrRolePayloadMismatch = errors.New("role payload does not match role")

// CheckRolePayload verifies that the payload matching Role is the only one set.
func (u *User) CheckRolePayload() error {
	switch u.Role {
	case RoleAdmin:
		if u.Admin == nil || u.Customer != nil || u.Seller != nil {
			return ErrRolePayloadMismatch
		}
	case RoleCustomer:
		if u.Customer == nil || u.Admin != nil || u.Seller != nil {
			return ErrRolePayloadMismatch
		}
	case RoleSeller:
		if u.Seller == nil || u.Admin != nil || u.Customer != nil {
			return ErrRolePayloadMismatch
		}
	default:
		return ErrRolePayloadMismatch
	}
	return nil
}
