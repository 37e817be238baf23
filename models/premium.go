package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PremiumRequest is a pending upgrade request. Its existence is the pending
// state; approval deletes it after promoting the biodata.
type PremiumRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	BiodataID   int                `bson:"biodataId" json:"biodataId"`
	RequestedAt string             `bson:"requestedAt" json:"requestedAt"`
}
