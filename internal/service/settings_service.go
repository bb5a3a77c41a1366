package service

import (
	"context"
	"time"

	apperrors "boardinghouse/internal/errors"
	"boardinghouse/internal/models"
	"boardinghouse/internal/repository"
	"boardinghouse/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	avatarURLExpiry    = 1 * time.Hour
	avatarUploadExpiry = 15 * time.Minute
)

// avatarExtensions maps allowed upload content types to file extensions.
var avatarExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// SettingsService handles business logic for home/profile settings and the
// admin tenant-profiles view.
type SettingsService struct {
	repo     repository.SettingsRepository
	userRepo repository.UserRepository
	storage  storage.Storage
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo repository.SettingsRepository, userRepo repository.UserRepository, store storage.Storage) *SettingsService {
	return &SettingsService{
		repo:     repo,
		userRepo: userRepo,
		storage:  store,
	}
}

// GetHomeSettings returns a user's home settings, falling back to defaults
// when none are stored yet.
func (s *SettingsService) GetHomeSettings(ctx context.Context, userID primitive.ObjectID) (*models.HomeSettings, error) {
	settings, err := s.repo.FindHomeByUserID(ctx, userID)
	if err == apperrors.ErrSettingsNotFound {
		return models.DefaultHomeSettings(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// CreateHomeSettings stores a user's first home settings document, layered
// over the defaults. Fails if the user already has one.
func (s *SettingsService) CreateHomeSettings(ctx context.Context, userID primitive.ObjectID, req *models.UpdateHomeSettingsRequest) (*models.HomeSettings, error) {
	settings := models.DefaultHomeSettings(userID)
	applyHomeSettings(settings, req)

	if err := s.repo.InsertHome(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// UpdateHomeSettings applies partial changes to a user's home settings,
// creating the document from defaults when missing.
func (s *SettingsService) UpdateHomeSettings(ctx context.Context, userID primitive.ObjectID, req *models.UpdateHomeSettingsRequest) (*models.HomeSettings, error) {
	update := bson.M{}

	if req.Theme != nil {
		update["theme"] = *req.Theme
	}
	if req.Language != nil {
		update["language"] = *req.Language
	}
	if req.Notifications != nil {
		update["notifications"] = *req.Notifications
	}
	if req.Layout != nil {
		update["layout"] = *req.Layout
	}
	if req.Dashboard != nil {
		update["dashboard"] = *req.Dashboard
	}

	return s.repo.UpsertHome(ctx, userID, update)
}

// applyHomeSettings overlays request fields on a settings document.
func applyHomeSettings(settings *models.HomeSettings, req *models.UpdateHomeSettingsRequest) {
	if req.Theme != nil {
		settings.Theme = *req.Theme
	}
	if req.Language != nil {
		settings.Language = *req.Language
	}
	if req.Notifications != nil {
		settings.Notifications = *req.Notifications
	}
	if req.Layout != nil {
		settings.Layout = *req.Layout
	}
	if req.Dashboard != nil {
		settings.Dashboard = *req.Dashboard
	}
}

// GetProfileSettings returns a user's profile settings with a pre-signed
// avatar URL, falling back to defaults when none are stored yet.
func (s *SettingsService) GetProfileSettings(ctx context.Context, userID primitive.ObjectID) (*models.ProfileSettings, error) {
	settings, err := s.repo.FindProfileByUserID(ctx, userID)
	if err == apperrors.ErrSettingsNotFound {
		return models.DefaultProfileSettings(userID), nil
	}
	if err != nil {
		return nil, err
	}

	s.attachAvatarURL(ctx, settings)

	return settings, nil
}

// CreateProfileSettings stores a user's first profile settings document.
// Fails if the user already has one.
func (s *SettingsService) CreateProfileSettings(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileSettingsRequest) (*models.ProfileSettings, error) {
	settings := models.DefaultProfileSettings(userID)
	applyProfileSettings(settings, req)

	if err := s.repo.InsertProfile(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// UpdateProfileSettings applies partial changes to a user's profile settings,
// creating the document from defaults when missing.
func (s *SettingsService) UpdateProfileSettings(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileSettingsRequest) (*models.ProfileSettings, error) {
	update := bson.M{}

	if req.DisplayName != nil {
		update["displayName"] = *req.DisplayName
	}
	if req.Bio != nil {
		update["bio"] = *req.Bio
	}
	if req.Phone != nil {
		update["phone"] = *req.Phone
	}
	if req.Address != nil {
		update["address"] = *req.Address
	}
	if req.Preferences != nil {
		update["preferences"] = *req.Preferences
	}
	if req.Privacy != nil {
		update["privacy"] = *req.Privacy
	}
	if req.Social != nil {
		update["social"] = *req.Social
	}

	settings, err := s.repo.UpsertProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.attachAvatarURL(ctx, settings)

	return settings, nil
}

// applyProfileSettings overlays request fields on a settings document.
func applyProfileSettings(settings *models.ProfileSettings, req *models.UpdateProfileSettingsRequest) {
	if req.DisplayName != nil {
		settings.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		settings.Bio = *req.Bio
	}
	if req.Phone != nil {
		settings.Phone = *req.Phone
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.Preferences != nil {
		settings.Preferences = *req.Preferences
	}
	if req.Privacy != nil {
		settings.Privacy = *req.Privacy
	}
	if req.Social != nil {
		settings.Social = *req.Social
	}
}

// RequestAvatarUpload generates a pre-signed upload URL for a new avatar and
// records the object key on the user's profile.
func (s *SettingsService) RequestAvatarUpload(ctx context.Context, userID primitive.ObjectID, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error) {
	ext := avatarExtensions[req.ContentType]

	key := "avatars/" + userID.Hex() + "/" + uuid.NewString() + ext

	uploadURL, err := s.storage.GetPresignedPutURL(ctx, key, req.ContentType, avatarUploadExpiry)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.UpsertProfile(ctx, userID, bson.M{"avatar": key}); err != nil {
		return nil, err
	}

	return &models.AvatarUploadResponse{
		UploadURL: uploadURL,
		AvatarKey: key,
	}, nil
}

// TenantProfiles returns all client users alongside their stored profile
// settings for the admin oversight view.
func (s *SettingsService) TenantProfiles(ctx context.Context) (*models.TenantProfilesResponse, error) {
	users, err := s.userRepo.FindAll(ctx, models.RoleClient)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	profiles, err := s.repo.FindProfilesByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range profiles {
		s.attachAvatarURL(ctx, &profiles[i])
	}

	return &models.TenantProfilesResponse{
		Users:    users,
		Profiles: profiles,
	}, nil
}

// attachAvatarURL fills AvatarURL with a pre-signed link when the profile has
// a stored avatar key. Presign failures leave the URL empty.
func (s *SettingsService) attachAvatarURL(ctx context.Context, settings *models.ProfileSettings) {
	if settings.Avatar == "" {
		return
	}

	url, err := s.storage.GetPresignedURL(ctx, settings.Avatar, avatarURLExpiry)
	if err != nil {
		logrus.WithError(err).WithField("key", settings.Avatar).Warn("Could not presign avatar URL")
		return
	}
	settings.AvatarURL = url
}
