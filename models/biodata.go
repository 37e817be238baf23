package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Biodata is a matchmaking profile. BiodataID is the sequential domain
// identifier shown to users; it is assigned once at creation and never
// accepted from clients afterwards.
type Biodata struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BiodataID          int                `bson:"biodataId" json:"biodataId"`
	Email              string             `bson:"email" json:"email"`
	BiodataType        string             `bson:"biodataType" json:"biodataType"` // Male, Female, premium, ...
	Name               string             `bson:"name" json:"name"`
	ProfileImage       string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	PermanentDivision  string             `bson:"permanentDivision" json:"permanentDivision"`
	PresentDivision    string             `bson:"presentDivision,omitempty" json:"presentDivision,omitempty"`
	Age                int                `bson:"age" json:"age"`
	Height             string             `bson:"height,omitempty" json:"height,omitempty"`
	Weight             string             `bson:"weight,omitempty" json:"weight,omitempty"`
	Occupation         string             `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Race               string             `bson:"race,omitempty" json:"race,omitempty"`
	FathersName        string             `bson:"fathersName,omitempty" json:"fathersName,omitempty"`
	MothersName        string             `bson:"mothersName,omitempty" json:"mothersName,omitempty"`
	ExpectedPartnerAge string             `bson:"expectedPartnerAge,omitempty" json:"expectedPartnerAge,omitempty"`
	MobileNumber       string             `bson:"mobileNumber,omitempty" json:"mobileNumber,omitempty"`

	// Populated per-caller on single-profile reads, never stored.
	IsFavorite bool `bson:"-" json:"isFavorite,omitempty"`
}
