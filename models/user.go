// File: models/user.go
package models

import "time"

// User roles.
const (
	RoleBuyer     = "buyer"
	RoleSeller    = "seller"
	RoleArchitect = "architect"
	RoleAdmin     = "admin"
)

// User represents a platform account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	DisplayName  string    `bson:"displayName" json:"displayName"`
	Role         string    `bson:"role" json:"role"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Company      string    `bson:"company,omitempty" json:"company,omitempty"`
	License      string    `bson:"license,omitempty" json:"license,omitempty"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserUpdateRequest carries the profile fields a user may edit.
type UserUpdateRequest struct {
	DisplayName string `json:"displayName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Company     string `json:"company,omitempty"`
	License     string `json:"license,omitempty"`
}
