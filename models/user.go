package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account roles.
const (
	RoleNormal  = "normal"
	RolePremium = "premium"
	RoleAdmin   = "admin"
)

// User is an account mirrored from the identity provider on first login.
// Timestamps are RFC3339 strings.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PhotoURL     string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    string             `bson:"created_at" json:"created_at"`
	LastLoggedIn string             `bson:"last_loggedIn" json:"last_loggedIn"`
}

// ValidRole reports whether r is an assignable account role.
func ValidRole(r string) bool {
	return r == RoleNormal || r == RolePremium || r == RoleAdmin
}
