package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TicketPending    = "pending"
	TicketInProgress = "in-progress"
	TicketResolved   = "resolved"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// ContactMessage is a support ticket raised by a customer or seller.
type ContactMessage struct {
	Id       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TicketId string             `bson:"ticketId" json:"ticketId"`
	Email    string             `bson:"email" json:"email" validate:"required,email"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Subject  string             `bson:"subject" json:"subject" validate:"required"`
	Message  string             `bson:"message" json:"message" validate:"required"`
	Priority string             `bson:"priority" json:"priority" validate:"required,oneof=low normal high"`

	Status     string     `bson:"status" json:"status"`
	AdminRead  bool       `bson:"adminRead" json:"adminRead"`
	ClientRead bool       `bson:"clientRead" json:"clientRead"`
	Reply      string     `bson:"reply,omitempty" json:"reply,omitempty"`
	ResolvedAt *time.Time `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
