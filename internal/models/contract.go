package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContractStatus represents the lifecycle state of a rental contract.
type ContractStatus string

const (
	ContractDraft      ContractStatus = "draft"
	ContractPending    ContractStatus = "pending"
	ContractActive     ContractStatus = "active"
	ContractTerminated ContractStatus = "terminated"
	ContractCompleted  ContractStatus = "completed"
)

// ValidContractStatus reports whether s is a known contract status.
func ValidContractStatus(s ContractStatus) bool {
	switch s {
	case ContractDraft, ContractPending, ContractActive, ContractTerminated, ContractCompleted:
		return true
	}
	return false
}

// Contract represents a rental agreement between the boarding house and a tenant.
type Contract struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID       primitive.ObjectID  `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	PropertyName string              `json:"propertyName" bson:"propertyName" example:"Dorm A"`
	RoomNumber   string              `json:"roomNumber,omitempty" bson:"roomNumber,omitempty" example:"204"`
	StartDate    time.Time           `json:"startDate" bson:"startDate" example:"2024-01-01T00:00:00Z"`
	EndDate      *time.Time          `json:"endDate,omitempty" bson:"endDate,omitempty"`
	RentAmount   float64             `json:"rentAmount" bson:"rentAmount" example:"4500"`
	Currency     string              `json:"currency" bson:"currency" example:"PHP"`
	Status       ContractStatus      `json:"status" bson:"status" example:"pending"`
	Terms        string              `json:"terms,omitempty" bson:"terms,omitempty"`
	CreatedAt    time.Time           `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt    time.Time           `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// ContractSummary is a minimal contract representation for embedding.
type ContractSummary struct {
	ID           primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439011"`
	PropertyName string             `json:"propertyName" example:"Dorm A"`
	RoomNumber   string             `json:"roomNumber,omitempty" example:"204"`
	Status       ContractStatus     `json:"status" example:"active"`
	StartDate    time.Time          `json:"startDate" example:"2024-01-01T00:00:00Z"`
	EndDate      *time.Time         `json:"endDate,omitempty"`
}

// Summary returns the minimal representation of a contract for joined listings.
func (c *Contract) Summary() *ContractSummary {
	return &ContractSummary{
		ID:           c.ID,
		PropertyName: c.PropertyName,
		RoomNumber:   c.RoomNumber,
		Status:       c.Status,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
	}
}

// ContractWithUser is a contract joined with its tenant's summary.
type ContractWithUser struct {
	Contract
	User *UserSummary `json:"user,omitempty"`
}

// CreateContractRequest is the payload for creating a contract. A status value
// outside the allowed enum silently falls back to pending.
type CreateContractRequest struct {
	UserID       string         `json:"userId" binding:"required,objectid" example:"507f1f77bcf86cd799439012"`
	PropertyName string         `json:"propertyName" binding:"required,max=200" example:"Dorm A"`
	RoomNumber   string         `json:"roomNumber" binding:"omitempty,max=20" example:"204"`
	StartDate    string         `json:"startDate" binding:"required" example:"2024-01-01"`
	EndDate      string         `json:"endDate" binding:"omitempty" example:"2024-12-31"`
	RentAmount   *float64       `json:"rentAmount" binding:"required,gte=0" example:"4500"`
	Currency     string         `json:"currency" binding:"omitempty,max=10" example:"PHP"`
	Status       ContractStatus `json:"status" example:"pending"`
	Terms        string         `json:"terms" binding:"omitempty,max=5000"`
}

// UpdateContractRequest is the payload for updating a contract. An out-of-enum
// status value is rejected.
type UpdateContractRequest struct {
	PropertyName *string         `json:"propertyName" binding:"omitempty,max=200" example:"Dorm B"`
	RoomNumber   *string         `json:"roomNumber" binding:"omitempty,max=20" example:"305"`
	StartDate    *string         `json:"startDate" binding:"omitempty" example:"2024-02-01"`
	EndDate      *string         `json:"endDate" binding:"omitempty" example:"2025-01-31"`
	RentAmount   *float64        `json:"rentAmount" binding:"omitempty,gte=0" example:"5000"`
	Currency     *string         `json:"currency" binding:"omitempty,max=10" example:"PHP"`
	Status       *ContractStatus `json:"status" example:"active"`
	Terms        *string         `json:"terms" binding:"omitempty,max=5000"`
}
