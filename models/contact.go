package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Contact request statuses.
const (
	ContactStatusPending  = "pending"
	ContactStatusApproved = "approved"
)

// ContactRequest is a paid request for a biodata's contact details. At most
// one exists per (biodataId, email) pair.
type ContactRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BiodataID     int                `bson:"biodataId" json:"biodataId"`
	Email         string             `bson:"email" json:"email"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	Fee           int64              `bson:"fee" json:"fee"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Status        string             `bson:"status" json:"status"`
	RequestedAt   string             `bson:"requestedAt" json:"requestedAt"`
}
