package service

import (
	"context"
	"strings"
	"time"

	apperrors "boardinghouse/internal/errors"
	"boardinghouse/internal/models"
	"boardinghouse/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvoiceService handles business logic for billing invoices.
type InvoiceService struct {
	repo         repository.InvoiceRepository
	userRepo     repository.UserRepository
	contractRepo repository.ContractRepository
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(repo repository.InvoiceRepository, userRepo repository.UserRepository, contractRepo repository.ContractRepository) *InvoiceService {
	return &InvoiceService{
		repo:         repo,
		userRepo:     userRepo,
		contractRepo: contractRepo,
	}
}

// newInvoiceNumber generates an invoice number like INV-8F3A21C4.
func newInvoiceNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "INV-" + strings.ToUpper(raw[:8])
}

// itemTotal sums line item amounts.
func itemTotal(items []models.InvoiceItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount
	}
	return total
}

// CreateInvoice creates an invoice for an existing tenant. When line items are
// supplied, amountDue is their sum regardless of what the client sent.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.BillingInvoice, error) {
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	var contractID *primitive.ObjectID
	if req.ContractID != "" {
		cid, err := primitive.ObjectIDFromHex(req.ContractID)
		if err != nil {
			return nil, apperrors.ErrContractNotFound
		}
		if _, err := s.contractRepo.FindByID(ctx, cid); err != nil {
			return nil, err
		}
		contractID = &cid
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	status := req.Status
	if !models.ValidInvoiceStatus(status) {
		status = models.InvoiceIssued
	}

	invoiceNumber := req.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber = newInvoiceNumber()
	}

	items := req.Items
	if items == nil {
		items = []models.InvoiceItem{}
	}

	amountDue := 0.0
	switch {
	case len(items) > 0:
		amountDue = itemTotal(items)
	case req.AmountDue != nil:
		amountDue = *req.AmountDue
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	now := time.Now()
	invoice := &models.BillingInvoice{
		UserID:        userID,
		ContractID:    contractID,
		InvoiceNumber: invoiceNumber,
		Items:         items,
		AmountDue:     amountDue,
		Currency:      currency,
		DueDate:       dueDate,
		Status:        status,
		IssuedAt:      now,
		Notes:         req.Notes,
	}
	if status == models.InvoicePaid {
		invoice.PaidAt = &now
	}

	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// ListInvoices returns invoices matching the filter, joined with tenant and
// contract summaries.
func (s *InvoiceService) ListInvoices(ctx context.Context, filter repository.InvoiceFilter) ([]models.InvoiceWithDetails, error) {
	invoices, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.UserID)
	}
	summaries, err := userSummaries(ctx, s.userRepo, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.InvoiceWithDetails, 0, len(invoices))
	for _, inv := range invoices {
		detail := models.InvoiceWithDetails{
			BillingInvoice: inv,
			User:           summaries[inv.UserID],
		}
		if inv.ContractID != nil {
			if contract, err := s.contractRepo.FindByID(ctx, *inv.ContractID); err == nil {
				detail.Contract = contract.Summary()
			}
		}
		result = append(result, detail)
	}

	return result, nil
}

// GetInvoice returns an invoice joined with tenant and contract summaries.
func (s *InvoiceService) GetInvoice(ctx context.Context, id primitive.ObjectID) (*models.InvoiceWithDetails, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &models.InvoiceWithDetails{BillingInvoice: *invoice}
	if user, err := s.userRepo.FindByID(ctx, invoice.UserID); err == nil {
		result.User = user.Summary()
	}
	if invoice.ContractID != nil {
		if contract, err := s.contractRepo.FindByID(ctx, *invoice.ContractID); err == nil {
			result.Contract = contract.Summary()
		}
	}

	return result, nil
}

// UpdateInvoice applies partial changes to an invoice. Replacing the line
// items recomputes amountDue; marking an invoice paid stamps paidAt.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id primitive.ObjectID, req *models.UpdateInvoiceRequest) (*models.BillingInvoice, error) {
	update := bson.M{}

	if req.InvoiceNumber != nil {
		update["invoiceNumber"] = *req.InvoiceNumber
	}
	if req.Items != nil {
		items := *req.Items
		if items == nil {
			items = []models.InvoiceItem{}
		}
		update["items"] = items
		if len(items) > 0 {
			update["amountDue"] = itemTotal(items)
		}
	}
	if req.AmountDue != nil {
		if _, recomputed := update["amountDue"]; !recomputed {
			update["amountDue"] = *req.AmountDue
		}
	}
	if req.Currency != nil {
		update["currency"] = *req.Currency
	}
	if req.DueDate != nil {
		t, err := parseDate(*req.DueDate)
		if err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		update["dueDate"] = t
	}
	if req.Status != nil {
		if !models.ValidInvoiceStatus(*req.Status) {
			return nil, apperrors.ErrInvalidInvoiceStatus
		}
		update["status"] = *req.Status
		if *req.Status == models.InvoicePaid {
			update["paidAt"] = time.Now()
		}
	}
	if req.Notes != nil {
		update["notes"] = *req.Notes
	}

	return s.repo.Update(ctx, id, update)
}

// VoidInvoice moves an invoice to void status.
func (s *InvoiceService) VoidInvoice(ctx context.Context, id primitive.ObjectID) (*models.BillingInvoice, error) {
	return s.repo.Void(ctx, id)
}
