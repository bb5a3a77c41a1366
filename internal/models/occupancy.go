package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OccupancyStatus represents the state of a room occupancy record.
type OccupancyStatus string

const (
	OccupancyPlanned    OccupancyStatus = "planned"
	OccupancyCheckedIn  OccupancyStatus = "checked-in"
	OccupancyCheckedOut OccupancyStatus = "checked-out"
	OccupancyVacant     OccupancyStatus = "vacant"
	OccupancyOverdue    OccupancyStatus = "overdue"
)

// ValidOccupancyStatus reports whether s is a known occupancy status.
func ValidOccupancyStatus(s OccupancyStatus) bool {
	switch s {
	case OccupancyPlanned, OccupancyCheckedIn, OccupancyCheckedOut, OccupancyVacant, OccupancyOverdue:
		return true
	}
	return false
}

// OccupancyRecord tracks a tenant's stay in a room. Unlike contracts and
// invoices these are scheduling records and are hard-deleted.
type OccupancyRecord struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID       primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	PropertyName string             `json:"propertyName" bson:"propertyName" example:"Dorm A"`
	RoomNumber   string             `json:"roomNumber,omitempty" bson:"roomNumber,omitempty" example:"204"`
	MoveInDate   time.Time          `json:"moveInDate" bson:"moveInDate" example:"2024-01-01T00:00:00Z"`
	MoveOutDate  *time.Time         `json:"moveOutDate,omitempty" bson:"moveOutDate,omitempty"`
	Status       OccupancyStatus    `json:"status" bson:"status" example:"planned"`
	Notes        string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// OccupancyWithUser is an occupancy record joined with its tenant's summary.
type OccupancyWithUser struct {
	OccupancyRecord
	User *UserSummary `json:"user,omitempty"`
}

// CreateOccupancyRequest is the payload for creating an occupancy record.
type CreateOccupancyRequest struct {
	UserID       string          `json:"userId" binding:"required,objectid" example:"507f1f77bcf86cd799439012"`
	PropertyName string          `json:"propertyName" binding:"required,max=200" example:"Dorm A"`
	RoomNumber   string          `json:"roomNumber" binding:"omitempty,max=20" example:"204"`
	MoveInDate   string          `json:"moveInDate" binding:"required" example:"2024-01-01"`
	MoveOutDate  string          `json:"moveOutDate" binding:"omitempty" example:"2024-06-30"`
	Status       OccupancyStatus `json:"status" example:"planned"`
	Notes        string          `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateOccupancyRequest is the payload for updating an occupancy record.
type UpdateOccupancyRequest struct {
	PropertyName *string          `json:"propertyName" binding:"omitempty,max=200" example:"Dorm B"`
	RoomNumber   *string          `json:"roomNumber" binding:"omitempty,max=20" example:"305"`
	MoveInDate   *string          `json:"moveInDate" binding:"omitempty" example:"2024-02-01"`
	MoveOutDate  *string          `json:"moveOutDate" binding:"omitempty" example:"2024-07-31"`
	Status       *OccupancyStatus `json:"status" example:"checked-in"`
	Notes        *string          `json:"notes" binding:"omitempty,max=1000"`
}

// ReservationRequest is the payload for the client portal's reservation
// shortcut, which creates a planned occupancy record.
type ReservationRequest struct {
	UserID       string `json:"userId" binding:"required,objectid" example:"507f1f77bcf86cd799439012"`
	PropertyName string `json:"propertyName" binding:"required,max=200" example:"Dorm A"`
	RoomNumber   string `json:"roomNumber" binding:"omitempty,max=20" example:"204"`
	MoveInDate   string `json:"moveInDate" binding:"required" example:"2024-03-01"`
}
