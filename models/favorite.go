package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Favorite holds the set of requester emails that marked one biodata as a
// favorite. Requesters is never empty while the record exists: removing the
// last requester deletes the record.
type Favorite struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BiodataID  int                `bson:"biodataId" json:"biodataId"`
	Requesters []string           `bson:"requesters" json:"requesters"`
}
