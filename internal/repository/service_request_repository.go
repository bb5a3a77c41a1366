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

// ServiceRequestFilter narrows ticket listings. Zero values match everything.
type ServiceRequestFilter struct {
	UserID primitive.ObjectID
	Status models.ServiceRequestStatus
}

// ServiceRequestRepository defines the interface for service ticket operations
type ServiceRequestRepository interface {
	Create(ctx context.Context, request *models.ServiceRequest) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ServiceRequest, error)
	FindAll(ctx context.Context, filter ServiceRequestFilter) ([]models.ServiceRequest, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.ServiceRequest, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// serviceRequestRepository implements ServiceRequestRepository using MongoDB
type serviceRequestRepository struct {
	collection *mongo.Collection
}

// NewServiceRequestRepository creates a new ServiceRequestRepository
func NewServiceRequestRepository(db *mongo.Database) ServiceRequestRepository {
	return &serviceRequestRepository{
		collection: db.Collection("service_requests"),
	}
}

// Create inserts a new service request into the database
func (r *serviceRequestRepository) Create(ctx context.Context, request *models.ServiceRequest) error {
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return err
	}

	request.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a service request by its ID
func (r *serviceRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ServiceRequest, error) {
	var request models.ServiceRequest

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrServiceRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// FindAll returns service requests matching the filter, newest first
func (r *serviceRequestRepository) FindAll(ctx context.Context, filter ServiceRequestFilter) ([]models.ServiceRequest, error) {
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

	var requests []models.ServiceRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	if requests == nil {
		requests = []models.ServiceRequest{}
	}

	return requests, nil
}

// Update applies a $set document to a service request and returns the updated copy
func (r *serviceRequestRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.ServiceRequest, error) {
	update["updatedAt"] = time.Now()

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var request models.ServiceRequest
	if err := result.Decode(&request); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrServiceRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// Delete removes a service request
func (r *serviceRequestRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrServiceRequestNotFound
	}

	return nil
}
