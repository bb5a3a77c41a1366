package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvoiceStatus represents the lifecycle state of a billing invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceIssued  InvoiceStatus = "issued"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
	InvoiceVoid    InvoiceStatus = "void"
)

// ValidInvoiceStatus reports whether s is a known invoice status.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceDraft, InvoiceIssued, InvoicePaid, InvoiceOverdue, InvoiceVoid:
		return true
	}
	return false
}

// InvoiceItem is a single line item on an invoice.
type InvoiceItem struct {
	Label  string  `json:"label" bson:"label" binding:"required,max=200" example:"Monthly rent"`
	Amount float64 `json:"amount" bson:"amount" binding:"gte=0" example:"4500"`
}

// BillingInvoice represents a tenant invoice, optionally tied to a contract.
// Invoices are never hard-deleted; DELETE voids them for auditability.
type BillingInvoice struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID        primitive.ObjectID  `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	ContractID    *primitive.ObjectID `json:"contractId,omitempty" bson:"contractId,omitempty" example:"507f1f77bcf86cd799439013"`
	InvoiceNumber string              `json:"invoiceNumber" bson:"invoiceNumber" example:"INV-8F3A21C4"`
	Items         []InvoiceItem       `json:"items" bson:"items"`
	AmountDue     float64             `json:"amountDue" bson:"amountDue" example:"4500"`
	Currency      string              `json:"currency" bson:"currency" example:"PHP"`
	DueDate       time.Time           `json:"dueDate" bson:"dueDate" example:"2024-02-01T00:00:00Z"`
	Status        InvoiceStatus       `json:"status" bson:"status" example:"issued"`
	IssuedAt      time.Time           `json:"issuedAt" bson:"issuedAt" example:"2024-01-15T09:30:00Z"`
	PaidAt        *time.Time          `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
	Notes         string              `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time           `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt     time.Time           `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// InvoiceWithDetails is an invoice joined with tenant and contract summaries.
type InvoiceWithDetails struct {
	BillingInvoice
	User     *UserSummary     `json:"user,omitempty"`
	Contract *ContractSummary `json:"contract,omitempty"`
}

// CreateInvoiceRequest is the payload for creating an invoice. When a non-empty
// items list is supplied, amountDue is recomputed as the sum of item amounts,
// overriding any client-supplied figure.
type CreateInvoiceRequest struct {
	UserID        string        `json:"userId" binding:"required,objectid" example:"507f1f77bcf86cd799439012"`
	ContractID    string        `json:"contractId" binding:"omitempty" example:"507f1f77bcf86cd799439013"`
	InvoiceNumber string        `json:"invoiceNumber" binding:"omitempty,max=50" example:"INV-2024-0001"`
	Items         []InvoiceItem `json:"items" binding:"omitempty,dive"`
	AmountDue     *float64      `json:"amountDue" binding:"omitempty,gte=0" example:"4500"`
	Currency      string        `json:"currency" binding:"omitempty,max=10" example:"PHP"`
	DueDate       string        `json:"dueDate" binding:"required" example:"2024-02-01"`
	Status        InvoiceStatus `json:"status" example:"issued"`
	Notes         string        `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateInvoiceRequest is the payload for updating an invoice.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string        `json:"invoiceNumber" binding:"omitempty,max=50" example:"INV-2024-0002"`
	Items         *[]InvoiceItem `json:"items" binding:"omitempty,dive"`
	AmountDue     *float64       `json:"amountDue" binding:"omitempty,gte=0" example:"5000"`
	Currency      *string        `json:"currency" binding:"omitempty,max=10" example:"PHP"`
	DueDate       *string        `json:"dueDate" binding:"omitempty" example:"2024-03-01"`
	Status        *InvoiceStatus `json:"status" example:"paid"`
	Notes         *string        `json:"notes" binding:"omitempty,max=1000"`
}
