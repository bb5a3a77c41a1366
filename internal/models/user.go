// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User role constants.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
	RoleOwner  = "owner"
)

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleClient, RoleOwner:
		return true
	}
	return false
}

// User represents a platform account (admin/owner or client/tenant).
// Wallet state lives on the user document itself: a running balance plus an
// embedded transaction list, newest first.
type User struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email              string             `json:"email" bson:"email" example:"tenant@example.com"`
	Password           string             `json:"-" bson:"password"` // "-" = never include in JSON response
	Role               string             `json:"role" bson:"role" example:"client"`
	FirstName          string             `json:"firstName,omitempty" bson:"firstName,omitempty" example:"Juan"`
	LastName           string             `json:"lastName,omitempty" bson:"lastName,omitempty" example:"Dela Cruz"`
	ContactNumber      string             `json:"contactNumber,omitempty" bson:"contactNumber,omitempty" example:"+63 912 345 6789"`
	IsActive           bool               `json:"isActive" bson:"isActive" example:"true"`
	WalletBalance      float64            `json:"walletBalance" bson:"walletBalance" example:"1500"`
	WalletTransactions []Transaction      `json:"walletTransactions" bson:"walletTransactions"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// UserSummary is a minimal user representation for embedding in joined responses.
type UserSummary struct {
	ID        primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439011"`
	Email     string             `json:"email" example:"tenant@example.com"`
	FirstName string             `json:"firstName,omitempty" example:"Juan"`
	LastName  string             `json:"lastName,omitempty" example:"Dela Cruz"`
	Role      string             `json:"role" example:"client"`
}

// Summary returns the minimal representation of a user for joined listings.
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

// SignupRequest is the payload for self-service registration. Role is always
// fixed to client; admins create other roles through the users resource.
type SignupRequest struct {
	Email         string `json:"email" binding:"required,email" example:"tenant@example.com"`
	Password      string `json:"password" binding:"required,min=6" example:"secret123"`
	FirstName     string `json:"firstName" binding:"omitempty,max=100" example:"Juan"`
	LastName      string `json:"lastName" binding:"omitempty,max=100" example:"Dela Cruz"`
	ContactNumber string `json:"contactNumber" binding:"omitempty,max=30" example:"+63 912 345 6789"`
}

// CreateUserRequest is the payload for creating a user with an explicit role.
type CreateUserRequest struct {
	Email         string `json:"email" binding:"required,email" example:"owner@example.com"`
	Password      string `json:"password" binding:"required,min=6" example:"secret123"`
	Role          string `json:"role" binding:"required,oneof=admin client owner" example:"owner"`
	FirstName     string `json:"firstName" binding:"omitempty,max=100" example:"Maria"`
	LastName      string `json:"lastName" binding:"omitempty,max=100" example:"Santos"`
	ContactNumber string `json:"contactNumber" binding:"omitempty,max=30" example:"+63 917 000 1111"`
}

// UpdateUserRequest is the payload for updating a user. Password changes are
// deliberately excluded from this path.
type UpdateUserRequest struct {
	Email         *string `json:"email" binding:"omitempty,email" example:"new@example.com"`
	Role          *string `json:"role" binding:"omitempty,oneof=admin client owner" example:"owner"`
	FirstName     *string `json:"firstName" binding:"omitempty,max=100" example:"Maria"`
	LastName      *string `json:"lastName" binding:"omitempty,max=100" example:"Santos"`
	ContactNumber *string `json:"contactNumber" binding:"omitempty,max=30" example:"+63 917 000 1111"`
	IsActive      *bool   `json:"isActive" example:"true"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"tenant@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// TenantProfilesResponse bundles client users with their profile settings for
// the admin tenant-oversight view.
type TenantProfilesResponse struct {
	Users    []User            `json:"users"`
	Profiles []ProfileSettings `json:"profiles"`
}
