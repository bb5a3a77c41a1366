package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationSettings holds the per-channel notification flags.
type NotificationSettings struct {
	Email bool `json:"email" bson:"email" example:"true"`
	Push  bool `json:"push" bson:"push" example:"true"`
	SMS   bool `json:"sms" bson:"sms" example:"false"`
}

// LayoutSettings holds dashboard layout flags.
type LayoutSettings struct {
	SidebarCollapsed bool `json:"sidebarCollapsed" bson:"sidebarCollapsed" example:"false"`
	GridView         bool `json:"gridView" bson:"gridView" example:"true"`
}

// DashboardSettings holds the dashboard widget configuration.
type DashboardSettings struct {
	Widgets     []string `json:"widgets" bson:"widgets" example:"overview,activity,stats"`
	DefaultView string   `json:"defaultView" bson:"defaultView" example:"dashboard"`
}

// HomeSettings is a user's one-to-one dashboard preference document.
type HomeSettings struct {
	ID            primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID        primitive.ObjectID   `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	Theme         string               `json:"theme" bson:"theme" example:"light"`
	Language      string               `json:"language" bson:"language" example:"en"`
	Notifications NotificationSettings `json:"notifications" bson:"notifications"`
	Layout        LayoutSettings       `json:"layout" bson:"layout"`
	Dashboard     DashboardSettings    `json:"dashboard" bson:"dashboard"`
	CreatedAt     time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt     time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// DefaultHomeSettings returns a home settings document with the stock defaults.
func DefaultHomeSettings(userID primitive.ObjectID) *HomeSettings {
	return &HomeSettings{
		UserID:   userID,
		Theme:    "light",
		Language: "en",
		Notifications: NotificationSettings{
			Email: true,
			Push:  true,
			SMS:   false,
		},
		Layout: LayoutSettings{
			SidebarCollapsed: false,
			GridView:         true,
		},
		Dashboard: DashboardSettings{
			Widgets:     []string{"overview", "activity", "stats"},
			DefaultView: "dashboard",
		},
	}
}

// UpdateHomeSettingsRequest carries partial home settings changes. Absent
// fields keep their stored (or default) values.
type UpdateHomeSettingsRequest struct {
	Theme         *string               `json:"theme" binding:"omitempty,oneof=light dark auto" example:"dark"`
	Language      *string               `json:"language" binding:"omitempty,max=10" example:"en"`
	Notifications *NotificationSettings `json:"notifications"`
	Layout        *LayoutSettings       `json:"layout"`
	Dashboard     *DashboardSettings    `json:"dashboard"`
}

// Address is a tenant's mailing address block.
type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty" example:"123 Mabini St"`
	City    string `json:"city,omitempty" bson:"city,omitempty" example:"Quezon City"`
	State   string `json:"state,omitempty" bson:"state,omitempty" example:"Metro Manila"`
	Country string `json:"country,omitempty" bson:"country,omitempty" example:"Philippines"`
	ZipCode string `json:"zipCode,omitempty" bson:"zipCode,omitempty" example:"1100"`
}

// PreferenceSettings holds locale and currency preferences.
type PreferenceSettings struct {
	Timezone   string `json:"timezone" bson:"timezone" example:"UTC"`
	DateFormat string `json:"dateFormat" bson:"dateFormat" example:"MM/DD/YYYY"`
	Currency   string `json:"currency" bson:"currency" example:"PHP"`
}

// PrivacySettings holds profile visibility flags.
type PrivacySettings struct {
	ProfileVisible bool `json:"profileVisible" bson:"profileVisible" example:"true"`
	ShowEmail      bool `json:"showEmail" bson:"showEmail" example:"false"`
	ShowPhone      bool `json:"showPhone" bson:"showPhone" example:"false"`
}

// SocialLinks holds optional social profile links.
type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Website  string `json:"website,omitempty" bson:"website,omitempty"`
}

// ProfileSettings is a user's one-to-one public profile document. The avatar
// field stores an object key; handlers expose it through a pre-signed URL.
type ProfileSettings struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	DisplayName string             `json:"displayName,omitempty" bson:"displayName,omitempty" example:"Juan D."`
	Bio         string             `json:"bio,omitempty" bson:"bio,omitempty" example:"Tenant since 2023"`
	Avatar      string             `json:"-" bson:"avatar,omitempty"`
	AvatarURL   string             `json:"avatarUrl,omitempty" bson:"-" example:"https://bucket.s3.amazonaws.com/avatars/..."`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty" example:"+63 912 345 6789"`
	Address     Address            `json:"address" bson:"address"`
	Preferences PreferenceSettings `json:"preferences" bson:"preferences"`
	Privacy     PrivacySettings    `json:"privacy" bson:"privacy"`
	Social      SocialLinks        `json:"social" bson:"social"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// DefaultProfileSettings returns a profile settings document with the stock defaults.
func DefaultProfileSettings(userID primitive.ObjectID) *ProfileSettings {
	return &ProfileSettings{
		UserID: userID,
		Preferences: PreferenceSettings{
			Timezone:   "UTC",
			DateFormat: "MM/DD/YYYY",
			Currency:   "PHP",
		},
		Privacy: PrivacySettings{
			ProfileVisible: true,
			ShowEmail:      false,
			ShowPhone:      false,
		},
	}
}

// UpdateProfileSettingsRequest carries partial profile settings changes.
type UpdateProfileSettingsRequest struct {
	DisplayName *string             `json:"displayName" binding:"omitempty,max=100" example:"Juan D."`
	Bio         *string             `json:"bio" binding:"omitempty,max=500"`
	Phone       *string             `json:"phone" binding:"omitempty,max=30" example:"+63 912 345 6789"`
	Address     *Address            `json:"address"`
	Preferences *PreferenceSettings `json:"preferences"`
	Privacy     *PrivacySettings    `json:"privacy"`
	Social      *SocialLinks        `json:"social"`
}

// AvatarUploadRequest is the payload for requesting an avatar upload URL.
type AvatarUploadRequest struct {
	ContentType string `json:"contentType" binding:"required,oneof=image/png image/jpeg image/webp" example:"image/png"`
}

// AvatarUploadResponse carries the pre-signed upload URL and the stored key.
type AvatarUploadResponse struct {
	UploadURL string `json:"uploadUrl" example:"https://s3.amazonaws.com/bucket/avatars/...?X-Amz-Algorithm=..."`
	AvatarKey string `json:"avatarKey" example:"avatars/507f1f77bcf86cd799439012/9f3b2c.png"`
}
