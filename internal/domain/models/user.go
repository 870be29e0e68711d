package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin      = "admin"
	RoleEmployee   = "employee"
	RoleSupervisor = "supervisor"
)

// User is a document in the users collection. Password holds the bcrypt hash,
// never the plaintext value.
type User struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username             string             `bson:"username" json:"username"`
	Email                string             `bson:"email" json:"email"`
	Password             string             `bson:"password" json:"-"`
	Role                 string             `bson:"role" json:"role"`
	Gender               string             `bson:"gender,omitempty" json:"gender,omitempty"`
	JobTitle             string             `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	Preferences          Preferences        `bson:"preferences" json:"preferences"`
	Token                string             `bson:"token,omitempty" json:"-"`
	ResetPasswordToken   string             `bson:"resetPasswordToken,omitempty" json:"-"`
	ResetPasswordExpires time.Time          `bson:"resetPasswordExpires,omitempty" json:"-"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Preferences struct {
	CabinClass  string `bson:"cabinClass" json:"cabinClass"`
	HotelRating int    `bson:"hotelRating" json:"hotelRating"`
}

// Public returns the fields safe to echo back in API responses.
func (u User) Public() map[string]any {
	return map[string]any{
		"id":          u.ID.Hex(),
		"username":    u.Username,
		"email":       u.Email,
		"role":        u.Role,
		"gender":      u.Gender,
		"jobTitle":    u.JobTitle,
		"preferences": u.Preferences,
		"updatedAt":   u.UpdatedAt,
	}
}
