package repository

import (
	"context"
	"time"

	apperrors "boardinghouse/internal/errors"
	"boardinghouse/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProcessingTransaction pairs a pending transaction with its wallet owner.
// Used by startup reconciliation to re-enqueue settlements.
type ProcessingTransaction struct {
	UserID      primitive.ObjectID
	Transaction models.Transaction
}

// WalletRepository defines the interface for wallet ledger operations.
// The ledger is embedded on the user document, so all operations address
// the users collection.
type WalletRepository interface {
	AppendTransaction(ctx context.Context, userID primitive.ObjectID, tx *models.Transaction) error
	FindTransaction(ctx context.Context, userID primitive.ObjectID, txID string) (*models.Transaction, error)
	// Settle atomically moves a Processing transaction to a terminal status and
	// applies delta to the wallet balance. When requireFunds is true the update
	// only matches if the balance covers the debit. Returns false when no
	// matching Processing transaction (or insufficient balance) was found.
	Settle(ctx context.Context, userID primitive.ObjectID, txID string, status models.TransactionStatus, delta float64, requireFunds bool) (bool, error)
	FindAllProcessing(ctx context.Context) ([]ProcessingTransaction, error)
}

// walletRepository implements WalletRepository using MongoDB.
type walletRepository struct {
	collection *mongo.Collection
}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(db *mongo.Database) WalletRepository {
	return &walletRepository{
		collection: db.Collection("users"),
	}
}

// AppendTransaction prepends a transaction to the user's ledger so the list
// stays newest-first.
func (r *walletRepository) AppendTransaction(ctx context.Context, userID primitive.ObjectID, tx *models.Transaction) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": userID},
		bson.M{
			"$push": bson.M{
				"walletTransactions": bson.M{
					"$each":     []models.Transaction{*tx},
					"$position": 0,
				},
			},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// FindTransaction returns a single ledger entry by its transaction ID.
func (r *walletRepository) FindTransaction(ctx context.Context, userID primitive.ObjectID, txID string) (*models.Transaction, error) {
	var user models.User

	err := r.collection.FindOne(
		ctx,
		bson.M{"_id": userID, "walletTransactions.id": txID},
		options.FindOne().SetProjection(bson.M{
			"walletTransactions": bson.M{"$elemMatch": bson.M{"id": txID}},
		}),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, err
	}

	if len(user.WalletTransactions) == 0 {
		return nil, apperrors.ErrTransactionNotFound
	}

	tx := user.WalletTransactions[0]
	return &tx, nil
}

// Settle performs the compare-and-set settlement update. The status filter on
// the embedded transaction makes settlement idempotent: a second attempt on
// the same transaction matches nothing.
func (r *walletRepository) Settle(ctx context.Context, userID primitive.ObjectID, txID string, status models.TransactionStatus, delta float64, requireFunds bool) (bool, error) {
	filter := bson.M{
		"_id": userID,
		"walletTransactions": bson.M{
			"$elemMatch": bson.M{
				"id":     txID,
				"status": models.StatusProcessing,
			},
		},
	}
	if requireFunds {
		filter["walletBalance"] = bson.M{"$gte": -delta}
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"walletTransactions.$.status":    status,
			"walletTransactions.$.settledAt": now,
			"updatedAt":                      now,
		},
	}
	if delta != 0 {
		update["$inc"] = bson.M{"walletBalance": delta}
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}

	return result.ModifiedCount > 0, nil
}

// FindAllProcessing returns every Processing ledger entry across all users.
func (r *walletRepository) FindAllProcessing(ctx context.Context) ([]ProcessingTransaction, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"walletTransactions.status": models.StatusProcessing},
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	var pending []ProcessingTransaction
	for _, user := range users {
		for _, tx := range user.WalletTransactions {
			if tx.Status == models.StatusProcessing {
				pending = append(pending, ProcessingTransaction{
					UserID:      user.ID,
					Transaction: tx,
				})
			}
		}
	}

	return pending, nil
}
