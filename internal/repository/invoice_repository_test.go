package repository

import (
	"context"
	"testing"
	"time"

	apperrors "boardinghouse/internal/errors"
	"boardinghouse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestInvoice(userID primitive.ObjectID, number string) *models.BillingInvoice {
	return &models.BillingInvoice{
		UserID:        userID,
		InvoiceNumber: number,
		Items: []models.InvoiceItem{
			{Label: "Monthly rent", Amount: 4500},
		},
		AmountDue: 4500,
		Currency:  "PHP",
		DueDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:    models.InvoiceIssued,
		IssuedAt:  time.Now(),
	}
}

func TestInvoiceRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewInvoiceRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully creates invoice", func(t *testing.T) {
		tdb.ClearCollection(t, "billing_invoices")

		invoice := newTestInvoice(primitive.NewObjectID(), "INV-2024-0001")

		err := repo.Create(ctx, invoice)

		require.NoError(t, err)
		assert.False(t, invoice.ID.IsZero())
	})

	t.Run("rejects duplicate invoice number", func(t *testing.T) {
		tdb.ClearCollection(t, "billing_invoices")

		first := newTestInvoice(primitive.NewObjectID(), "INV-2024-0002")
		require.NoError(t, repo.Create(ctx, first))

		second := newTestInvoice(primitive.NewObjectID(), "INV-2024-0002")
		err := repo.Create(ctx, second)

		assert.ErrorIs(t, err, apperrors.ErrInvoiceNumberTaken)
	})
}

func TestInvoiceRepository_FindAll(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewInvoiceRepository(tdb.Database)
	ctx := context.Background()

	t.Run("filters by user and status", func(t *testing.T) {
		tdb.ClearCollection(t, "billing_invoices")

		tenant := primitive.NewObjectID()

		issued := newTestInvoice(tenant, "INV-A")
		require.NoError(t, repo.Create(ctx, issued))

		paid := newTestInvoice(tenant, "INV-B")
		paid.Status = models.InvoicePaid
		require.NoError(t, repo.Create(ctx, paid))

		other := newTestInvoice(primitive.NewObjectID(), "INV-C")
		require.NoError(t, repo.Create(ctx, other))

		byUser, err := repo.FindAll(ctx, InvoiceFilter{UserID: tenant})
		require.NoError(t, err)
		assert.Len(t, byUser, 2)

		byStatus, err := repo.FindAll(ctx, InvoiceFilter{Status: models.InvoicePaid})
		require.NoError(t, err)
		assert.Len(t, byStatus, 1)
	})
}

func TestInvoiceRepository_Update(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewInvoiceRepository(tdb.Database)
	ctx := context.Background()

	t.Run("updates fields", func(t *testing.T) {
		tdb.ClearCollection(t, "billing_invoices")

		invoice := newTestInvoice(primitive.NewObjectID(), "INV-UPD-1")
		require.NoError(t, repo.Create(ctx, invoice))

		updated, err := repo.Update(ctx, invoice.ID, bson.M{"status": models.InvoicePaid})

		require.NoError(t, err)
		assert.Equal(t, models.InvoicePaid, updated.Status)
	})

	t.Run("rejects renumbering to a taken invoice number", func(t *testing.T) {
		tdb.ClearCollection(t, "billing_invoices")

		first := newTestInvoice(primitive.NewObjectID(), "INV-TAKEN")
		require.NoError(t, repo.Create(ctx, first))
		second := newTestInvoice(primitive.NewObjectID(), "INV-FREE")
		require.NoError(t, repo.Create(ctx, second))

		_, err := repo.Update(ctx, second.ID, bson.M{"invoiceNumber": "INV-TAKEN"})

		assert.ErrorIs(t, err, apperrors.ErrInvoiceNumberTaken)
	})

	t.Run("allows keeping own invoice number", func(t *testing.T) {
		tdb.ClearCollection(t, "billing_invoices")

		invoice := newTestInvoice(primitive.NewObjectID(), "INV-SELF")
		require.NoError(t, repo.Create(ctx, invoice))

		updated, err := repo.Update(ctx, invoice.ID, bson.M{
			"invoiceNumber": "INV-SELF",
			"status":        models.InvoiceOverdue,
		})

		require.NoError(t, err)
		assert.Equal(t, models.InvoiceOverdue, updated.Status)
	})
}

func TestInvoiceRepository_Void(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewInvoiceRepository(tdb.Database)
	ctx := context.Background()

	t.Run("voids without deleting the document", func(t *testing.T) {
		tdb.ClearCollection(t, "billing_invoices")

		invoice := newTestInvoice(primitive.NewObjectID(), "INV-VOID-1")
		require.NoError(t, repo.Create(ctx, invoice))

		voided, err := repo.Void(ctx, invoice.ID)
		require.NoError(t, err)
		assert.Equal(t, models.InvoiceVoid, voided.Status)

		found, err := repo.FindByID(ctx, invoice.ID)
		require.NoError(t, err)
		assert.Equal(t, models.InvoiceVoid, found.Status)
	})

	t.Run("returns error for nonexistent invoice", func(t *testing.T) {
		_, err := repo.Void(ctx, primitive.NewObjectID())

		assert.ErrorIs(t, err, apperrors.ErrInvoiceNotFound)
	})
}
