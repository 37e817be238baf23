package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SuccessStory is a married couple's writeup, one per submitter email.
type SuccessStory struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email            string             `bson:"email" json:"email"`
	SelfBiodataID    int                `bson:"selfBiodataId" json:"selfBiodataId"`
	PartnerBiodataID int                `bson:"partnerBiodataId" json:"partnerBiodataId"`
	ImageURL         string             `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
	Story            string             `bson:"story" json:"story"`
	MarriageDate     string             `bson:"marriageDate" json:"marriageDate"`
	CreatedAt        string             `bson:"createdAt" json:"createdAt"`
}
