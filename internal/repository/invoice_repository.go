package repository

import (
	"context"
	"errors"
	"time"

	apperrors "boardinghouse/internal/errors"
	"boardinghouse/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InvoiceFilter narrows invoice listings. Zero values match everything.
type InvoiceFilter struct {
	UserID primitive.ObjectID
	Status models.InvoiceStatus
}

// InvoiceRepository defines the interface for billing invoice operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.BillingInvoice) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BillingInvoice, error)
	FindByNumber(ctx context.Context, invoiceNumber string) (*models.BillingInvoice, error)
	FindAll(ctx context.Context, filter InvoiceFilter) ([]models.BillingInvoice, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.BillingInvoice, error)
	// Void moves an invoice to void status. Invoices are never hard-deleted
	// for auditability.
	Void(ctx context.Context, id primitive.ObjectID) (*models.BillingInvoice, error)
}

// invoiceRepository implements InvoiceRepository using MongoDB
type invoiceRepository struct {
	collection *mongo.Collection
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(db *mongo.Database) InvoiceRepository {
	return &invoiceRepository{
		collection: db.Collection("billing_invoices"),
	}
}

// Create inserts a new invoice into the database
func (r *invoiceRepository) Create(ctx context.Context, invoice *models.BillingInvoice) error {
	// Invoice numbers must be unique
	existing, _ := r.FindByNumber(ctx, invoice.InvoiceNumber)
	if existing != nil {
		return apperrors.ErrInvoiceNumberTaken
	}

	now := time.Now()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now
	if invoice.Items == nil {
		invoice.Items = []models.InvoiceItem{}
	}

	result, err := r.collection.InsertOne(ctx, invoice)
	if err != nil {
		return err
	}

	invoice.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds an invoice by its ID
func (r *invoiceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BillingInvoice, error) {
	var invoice models.BillingInvoice

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&invoice)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, err
	}

	return &invoice, nil
}

// FindByNumber finds an invoice by its invoice number
func (r *invoiceRepository) FindByNumber(ctx context.Context, invoiceNumber string) (*models.BillingInvoice, error) {
	var invoice models.BillingInvoice

	err := r.collection.FindOne(ctx, bson.M{"invoiceNumber": invoiceNumber}).Decode(&invoice)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, err
	}

	return &invoice, nil
}

// FindAll returns invoices matching the filter, newest first
func (r *invoiceRepository) FindAll(ctx context.Context, filter InvoiceFilter) ([]models.BillingInvoice, error) {
	query := bson.M{}
	if !filter.UserID.IsZero() {
		query["userId"] = filter.UserID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invoices []models.BillingInvoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}

	if invoices == nil {
		invoices = []models.BillingInvoice{}
	}

	return invoices, nil
}

// Update applies a $set document to an invoice and returns the updated copy
func (r *invoiceRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.BillingInvoice, error) {
	// Renumbering must not collide with another invoice
	if number, ok := update["invoiceNumber"].(string); ok {
		existing, _ := r.FindByNumber(ctx, number)
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrInvoiceNumberTaken
		}
	}

	update["updatedAt"] = time.Now()

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var invoice models.BillingInvoice
	if err := result.Decode(&invoice); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, err
	}

	return &invoice, nil
}

// Void marks an invoice as void
func (r *invoiceRepository) Void(ctx context.Context, id primitive.ObjectID) (*models.BillingInvoice, error) {
	return r.Update(ctx, id, bson.M{"status": models.InvoiceVoid})
}
