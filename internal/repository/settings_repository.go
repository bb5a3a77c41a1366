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

// SettingsRepository defines the interface for home and profile settings.
// Both are one-document-per-user collections keyed by userId.
type SettingsRepository interface {
	FindHomeByUserID(ctx context.Context, userID primitive.ObjectID) (*models.HomeSettings, error)
	InsertHome(ctx context.Context, settings *models.HomeSettings) error
	UpsertHome(ctx context.Context, userID primitive.ObjectID, update bson.M) (*models.HomeSettings, error)

	FindProfileByUserID(ctx context.Context, userID primitive.ObjectID) (*models.ProfileSettings, error)
	InsertProfile(ctx context.Context, settings *models.ProfileSettings) error
	UpsertProfile(ctx context.Context, userID primitive.ObjectID, update bson.M) (*models.ProfileSettings, error)
	FindProfilesByUserIDs(ctx context.Context, userIDs []primitive.ObjectID) ([]models.ProfileSettings, error)
}

// settingsRepository implements SettingsRepository using MongoDB
type settingsRepository struct {
	home    *mongo.Collection
	profile *mongo.Collection
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *mongo.Database) SettingsRepository {
	return &settingsRepository{
		home:    db.Collection("home_settings"),
		profile: db.Collection("profile_settings"),
	}
}

// FindHomeByUserID finds a user's home settings document
func (r *settingsRepository) FindHomeByUserID(ctx context.Context, userID primitive.ObjectID) (*models.HomeSettings, error) {
	var settings models.HomeSettings

	err := r.home.FindOne(ctx, bson.M{"userId": userID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSettingsNotFound
		}
		return nil, err
	}

	return &settings, nil
}

// InsertHome creates a home settings document. Fails if one already exists.
func (r *settingsRepository) InsertHome(ctx context.Context, settings *models.HomeSettings) error {
	existing, _ := r.FindHomeByUserID(ctx, settings.UserID)
	if existing != nil {
		return apperrors.ErrSettingsAlreadyExist
	}

	now := time.Now()
	settings.CreatedAt = now
	settings.UpdatedAt = now

	result, err := r.home.InsertOne(ctx, settings)
	if err != nil {
		return err
	}

	settings.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// UpsertHome applies a $set document to a user's home settings, creating the
// document with defaults baked into update when absent.
func (r *settingsRepository) UpsertHome(ctx context.Context, userID primitive.ObjectID, update bson.M) (*models.HomeSettings, error) {
	update["updatedAt"] = time.Now()

	result := r.home.FindOneAndUpdate(
		ctx,
		bson.M{"userId": userID},
		bson.M{
			"$set":         update,
			"$setOnInsert": bson.M{"userId": userID, "createdAt": time.Now()},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var settings models.HomeSettings
	if err := result.Decode(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// FindProfileByUserID finds a user's profile settings document
func (r *settingsRepository) FindProfileByUserID(ctx context.Context, userID primitive.ObjectID) (*models.ProfileSettings, error) {
	var settings models.ProfileSettings

	err := r.profile.FindOne(ctx, bson.M{"userId": userID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSettingsNotFound
		}
		return nil, err
	}

	return &settings, nil
}

// InsertProfile creates a profile settings document. Fails if one already exists.
func (r *settingsRepository) InsertProfile(ctx context.Context, settings *models.ProfileSettings) error {
	existing, _ := r.FindProfileByUserID(ctx, settings.UserID)
	if existing != nil {
		return apperrors.ErrSettingsAlreadyExist
	}

	now := time.Now()
	settings.CreatedAt = now
	settings.UpdatedAt = now

	result, err := r.profile.InsertOne(ctx, settings)
	if err != nil {
		return err
	}

	settings.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// UpsertProfile applies a $set document to a user's profile settings,
// creating the document when absent.
func (r *settingsRepository) UpsertProfile(ctx context.Context, userID primitive.ObjectID, update bson.M) (*models.ProfileSettings, error) {
	update["updatedAt"] = time.Now()

	result := r.profile.FindOneAndUpdate(
		ctx,
		bson.M{"userId": userID},
		bson.M{
			"$set":         update,
			"$setOnInsert": bson.M{"userId": userID, "createdAt": time.Now()},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var settings models.ProfileSettings
	if err := result.Decode(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// FindProfilesByUserIDs returns the profile documents for the given users
func (r *settingsRepository) FindProfilesByUserIDs(ctx context.Context, userIDs []primitive.ObjectID) ([]models.ProfileSettings, error) {
	if len(userIDs) == 0 {
		return []models.ProfileSettings{}, nil
	}

	cursor, err := r.profile.Find(ctx, bson.M{"userId": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []models.ProfileSettings
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}

	if profiles == nil {
		profiles = []models.ProfileSettings{}
	}

	return profiles, nil
}
