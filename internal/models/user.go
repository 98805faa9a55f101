package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin is the only recognized role value; every other user is a plain
// member and the role field is simply absent from their document.
const RoleAdmin = "admin"

// User is the typed view of a users-collection document. Profiles are
// client-shaped, so only the fields the backend itself reads are declared;
// everything else stays in Extra.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
	Extra map[string]any     `bson:",inline" json:"-"`
}

// IsAdmin reports whether the user holds the admin role. Safe on a zero
// User, which is how an absent record is represented.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
