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

// OccupancyFilter narrows occupancy listings. Zero values match everything.
type OccupancyFilter struct {
	UserID primitive.ObjectID
	Status models.OccupancyStatus
}

// OccupancyRepository defines the interface for occupancy record operations
type OccupancyRepository interface {
	Create(ctx context.Context, record *models.OccupancyRecord) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.OccupancyRecord, error)
	FindAll(ctx context.Context, filter OccupancyFilter) ([]models.OccupancyRecord, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.OccupancyRecord, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// occupancyRepository implements OccupancyRepository using MongoDB
type occupancyRepository struct {
	collection *mongo.Collection
}

// NewOccupancyRepository creates a new OccupancyRepository
func NewOccupancyRepository(db *mongo.Database) OccupancyRepository {
	return &occupancyRepository{
		collection: db.Collection("occupancy_records"),
	}
}

// Create inserts a new occupancy record into the database
func (r *occupancyRepository) Create(ctx context.Context, record *models.OccupancyRecord) error {
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return err
	}

	record.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds an occupancy record by its ID
func (r *occupancyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.OccupancyRecord, error) {
	var record models.OccupancyRecord

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrOccupancyNotFound
		}
		return nil, err
	}

	return &record, nil
}

// FindAll returns occupancy records matching the filter, newest first
func (r *occupancyRepository) FindAll(ctx context.Context, filter OccupancyFilter) ([]models.OccupancyRecord, error) {
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

	var records []models.OccupancyRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.OccupancyRecord{}
	}

	return records, nil
}

// Update applies a $set document to an occupancy record and returns the updated copy
func (r *occupancyRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.OccupancyRecord, error) {
	update["updatedAt"] = time.Now()

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var record models.OccupancyRecord
	if err := result.Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrOccupancyNotFound
		}
		return nil, err
	}

	return &record, nil
}

// Delete removes an occupancy record. Occupancy is scheduling data, so hard
// deletion is fine here.
func (r *occupancyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrOccupancyNotFound
	}

	return nil
}
