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

// ContractFilter narrows contract listings. Zero values match everything.
type ContractFilter struct {
	UserID primitive.ObjectID
	Status models.ContractStatus
}

// ContractRepository defines the interface for contract data operations
type ContractRepository interface {
	Create(ctx context.Context, contract *models.Contract) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contract, error)
	FindAll(ctx context.Context, filter ContractFilter) ([]models.Contract, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Contract, error)
	// Terminate moves a contract to terminated status. Contracts are never
	// hard-deleted so billing history keeps a valid reference.
	Terminate(ctx context.Context, id primitive.ObjectID) (*models.Contract, error)
}

// contractRepository implements ContractRepository using MongoDB
type contractRepository struct {
	collection *mongo.Collection
}

// NewContractRepository creates a new ContractRepository
func NewContractRepository(db *mongo.Database) ContractRepository {
	return &contractRepository{
		collection: db.Collection("contracts"),
	}
}

// Create inserts a new contract into the database
func (r *contractRepository) Create(ctx context.Context, contract *models.Contract) error {
	now := time.Now()
	contract.CreatedAt = now
	contract.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, contract)
	if err != nil {
		return err
	}

	contract.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a contract by its ID
func (r *contractRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contract, error) {
	var contract models.Contract

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&contract)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrContractNotFound
		}
		return nil, err
	}

	return &contract, nil
}

// FindAll returns contracts matching the filter, newest first
func (r *contractRepository) FindAll(ctx context.Context, filter ContractFilter) ([]models.Contract, error) {
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

	var contracts []models.Contract
	if err := cursor.All(ctx, &contracts); err != nil {
		return nil, err
	}

	if contracts == nil {
		contracts = []models.Contract{}
	}

	return contracts, nil
}

// Update applies a $set document to a contract and returns the updated copy
func (r *contractRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Contract, error) {
	update["updatedAt"] = time.Now()

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var contract models.Contract
	if err := result.Decode(&contract); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrContractNotFound
		}
		return nil, err
	}

	return &contract, nil
}

// Terminate marks a contract as terminated
func (r *contractRepository) Terminate(ctx context.Context, id primitive.ObjectID) (*models.Contract, error) {
	return r.Update(ctx, id, bson.M{"status": models.ContractTerminated})
}
