package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceRequestStatus represents the state of a service ticket.
type ServiceRequestStatus string

const (
	ServiceRequestOpen       ServiceRequestStatus = "open"
	ServiceRequestInProgress ServiceRequestStatus = "in-progress"
	ServiceRequestResolved   ServiceRequestStatus = "resolved"
	ServiceRequestCancelled  ServiceRequestStatus = "cancelled"
)

// ValidServiceRequestStatus reports whether s is a known ticket status.
func ValidServiceRequestStatus(s ServiceRequestStatus) bool {
	switch s {
	case ServiceRequestOpen, ServiceRequestInProgress, ServiceRequestResolved, ServiceRequestCancelled:
		return true
	}
	return false
}

// ServiceRequest is a maintenance/service ticket raised by a tenant.
type ServiceRequest struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID      primitive.ObjectID   `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	Category    string               `json:"category" bson:"category" example:"maintenance"`
	Subject     string               `json:"subject" bson:"subject" example:"Leaking faucet"`
	Description string               `json:"description,omitempty" bson:"description,omitempty"`
	Priority    string               `json:"priority" bson:"priority" example:"medium"`
	Status      ServiceRequestStatus `json:"status" bson:"status" example:"open"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// ServiceRequestWithUser is a ticket joined with its reporter's summary.
type ServiceRequestWithUser struct {
	ServiceRequest
	User *UserSummary `json:"user,omitempty"`
}

// CreateServiceRequestRequest is the payload for opening a ticket.
type CreateServiceRequestRequest struct {
	UserID      string `json:"userId" binding:"required,objectid" example:"507f1f77bcf86cd799439012"`
	Category    string `json:"category" binding:"required,oneof=maintenance cleaning billing other" example:"maintenance"`
	Subject     string `json:"subject" binding:"required,max=200" example:"Leaking faucet"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high" example:"medium"`
}

// UpdateServiceRequestRequest is the payload for updating a ticket.
type UpdateServiceRequestRequest struct {
	Category    *string               `json:"category" binding:"omitempty,oneof=maintenance cleaning billing other"`
	Subject     *string               `json:"subject" binding:"omitempty,max=200"`
	Description *string               `json:"description" binding:"omitempty,max=2000"`
	Priority    *string               `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      *ServiceRequestStatus `json:"status" example:"in-progress"`
}
