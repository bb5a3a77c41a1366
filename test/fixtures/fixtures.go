// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"boardinghouse/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Email:     fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			Role:      models.RoleClient,
			FirstName: "Test",
			LastName:  "User",
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

func (b *UserBuilder) WithName(first, last string) *UserBuilder {
	b.user.FirstName = first
	b.user.LastName = last
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.user.Role = role
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.Role = models.RoleAdmin
	return b
}

func (b *UserBuilder) AsOwner() *UserBuilder {
	b.user.Role = models.RoleOwner
	return b
}

func (b *UserBuilder) AsClient() *UserBuilder {
	b.user.Role = models.RoleClient
	return b
}

func (b *UserBuilder) Inactive() *UserBuilder {
	b.user.IsActive = false
	return b
}

func (b *UserBuilder) WithWalletBalance(balance float64) *UserBuilder {
	b.user.WalletBalance = balance
	return b
}

func (b *UserBuilder) WithTransaction(tx models.Transaction) *UserBuilder {
	b.user.WalletTransactions = append(b.user.WalletTransactions, tx)
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Transaction Fixtures =====

// TransactionBuilder provides fluent API for building wallet ledger entries.
type TransactionBuilder struct {
	tx models.Transaction
}

// NewTransaction creates a new TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		tx: models.Transaction{
			ID:        fmt.Sprintf("TX-%s", primitive.NewObjectID().Hex()[:8]),
			Type:      models.TransactionTopUp,
			Amount:    500,
			Reference: "GCash top-up",
			Status:    models.StatusProcessing,
			CreatedAt: time.Now(),
		},
	}
}

func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.tx.ID = id
	return b
}

func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.tx.Amount = amount
	return b
}

func (b *TransactionBuilder) AsTopUp() *TransactionBuilder {
	b.tx.Type = models.TransactionTopUp
	return b
}

func (b *TransactionBuilder) AsPayment() *TransactionBuilder {
	b.tx.Type = models.TransactionPayment
	return b
}

func (b *TransactionBuilder) Settled(status models.TransactionStatus) *TransactionBuilder {
	now := time.Now()
	b.tx.Status = status
	b.tx.SettledAt = &now
	return b
}

func (b *TransactionBuilder) Build() models.Transaction {
	return b.tx
}

// ===== Contract Fixtures =====

// ContractBuilder provides fluent API for building test contracts.
type ContractBuilder struct {
	contract models.Contract
}

// NewContract creates a new ContractBuilder with sensible defaults.
func NewContract() *ContractBuilder {
	return &ContractBuilder{
		contract: models.Contract{
			ID:           primitive.NewObjectID(),
			UserID:       primitive.NewObjectID(),
			PropertyName: "Dorm A",
			RoomNumber:   "204",
			StartDate:    time.Now().Truncate(time.Hour),
			RentAmount:   4500,
			Currency:     "PHP",
			Status:       models.ContractPending,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
	}
}

func (b *ContractBuilder) WithID(id primitive.ObjectID) *ContractBuilder {
	b.contract.ID = id
	return b
}

func (b *ContractBuilder) WithUserID(userID primitive.ObjectID) *ContractBuilder {
	b.contract.UserID = userID
	return b
}

func (b *ContractBuilder) WithProperty(name, room string) *ContractBuilder {
	b.contract.PropertyName = name
	b.contract.RoomNumber = room
	return b
}

func (b *ContractBuilder) WithRent(amount float64) *ContractBuilder {
	b.contract.RentAmount = amount
	return b
}

func (b *ContractBuilder) WithDates(start time.Time, end *time.Time) *ContractBuilder {
	b.contract.StartDate = start
	b.contract.EndDate = end
	return b
}

func (b *ContractBuilder) WithStatus(status models.ContractStatus) *ContractBuilder {
	b.contract.Status = status
	return b
}

func (b *ContractBuilder) Active() *ContractBuilder {
	b.contract.Status = models.ContractActive
	return b
}

func (b *ContractBuilder) Terminated() *ContractBuilder {
	b.contract.Status = models.ContractTerminated
	return b
}

func (b *ContractBuilder) Build() models.Contract {
	return b.contract
}

func (b *ContractBuilder) BuildPtr() *models.Contract {
	return &b.contract
}

// ===== Occupancy Fixtures =====

// OccupancyBuilder provides fluent API for building test occupancy records.
type OccupancyBuilder struct {
	record models.OccupancyRecord
}

// NewOccupancy creates a new OccupancyBuilder with sensible defaults.
func NewOccupancy() *OccupancyBuilder {
	return &OccupancyBuilder{
		record: models.OccupancyRecord{
			ID:           primitive.NewObjectID(),
			UserID:       primitive.NewObjectID(),
			PropertyName: "Dorm A",
			RoomNumber:   "204",
			MoveInDate:   time.Now().Truncate(time.Hour),
			Status:       models.OccupancyPlanned,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
	}
}

func (b *OccupancyBuilder) WithID(id primitive.ObjectID) *OccupancyBuilder {
	b.record.ID = id
	return b
}

func (b *OccupancyBuilder) WithUserID(userID primitive.ObjectID) *OccupancyBuilder {
	b.record.UserID = userID
	return b
}

func (b *OccupancyBuilder) WithStatus(status models.OccupancyStatus) *OccupancyBuilder {
	b.record.Status = status
	return b
}

func (b *OccupancyBuilder) CheckedIn() *OccupancyBuilder {
	b.record.Status = models.OccupancyCheckedIn
	return b
}

func (b *OccupancyBuilder) WithMoveIn(t time.Time) *OccupancyBuilder {
	b.record.MoveInDate = t
	return b
}

func (b *OccupancyBuilder) Build() models.OccupancyRecord {
	return b.record
}

func (b *OccupancyBuilder) BuildPtr() *models.OccupancyRecord {
	return &b.record
}

// ===== Invoice Fixtures =====

// InvoiceBuilder provides fluent API for building test billing invoices.
type InvoiceBuilder struct {
	invoice models.BillingInvoice
}

// NewInvoice creates a new InvoiceBuilder with sensible defaults.
func NewInvoice() *InvoiceBuilder {
	return &InvoiceBuilder{
		invoice: models.BillingInvoice{
			ID:            primitive.NewObjectID(),
			UserID:        primitive.NewObjectID(),
			InvoiceNumber: fmt.Sprintf("INV-%s", primitive.NewObjectID().Hex()[:8]),
			Items: []models.InvoiceItem{
				{Label: "Monthly rent", Amount: 4500},
			},
			AmountDue: 4500,
			Currency:  "PHP",
			DueDate:   time.Now().Add(14 * 24 * time.Hour),
			Status:    models.InvoiceIssued,
			IssuedAt:  time.Now(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *InvoiceBuilder) WithID(id primitive.ObjectID) *InvoiceBuilder {
	b.invoice.ID = id
	return b
}

func (b *InvoiceBuilder) WithUserID(userID primitive.ObjectID) *InvoiceBuilder {
	b.invoice.UserID = userID
	return b
}

func (b *InvoiceBuilder) WithContractID(contractID primitive.ObjectID) *InvoiceBuilder {
	b.invoice.ContractID = &contractID
	return b
}

func (b *InvoiceBuilder) WithNumber(number string) *InvoiceBuilder {
	b.invoice.InvoiceNumber = number
	return b
}

func (b *InvoiceBuilder) WithItems(items ...models.InvoiceItem) *InvoiceBuilder {
	b.invoice.Items = items
	var total float64
	for _, item := range items {
		total += item.Amount
	}
	b.invoice.AmountDue = total
	return b
}

func (b *InvoiceBuilder) WithStatus(status models.InvoiceStatus) *InvoiceBuilder {
	b.invoice.Status = status
	return b
}

func (b *InvoiceBuilder) Paid() *InvoiceBuilder {
	now := time.Now()
	b.invoice.Status = models.InvoicePaid
	b.invoice.PaidAt = &now
	return b
}

func (b *InvoiceBuilder) Void() *InvoiceBuilder {
	b.invoice.Status = models.InvoiceVoid
	return b
}

func (b *InvoiceBuilder) Build() models.BillingInvoice {
	return b.invoice
}

func (b *InvoiceBuilder) BuildPtr() *models.BillingInvoice {
	return &b.invoice
}

// ===== ServiceRequest Fixtures =====

// ServiceRequestBuilder provides fluent API for building test service requests.
type ServiceRequestBuilder struct {
	request models.ServiceRequest
}

// NewServiceRequest creates a new ServiceRequestBuilder with sensible defaults.
func NewServiceRequest() *ServiceRequestBuilder {
	return &ServiceRequestBuilder{
		request: models.ServiceRequest{
			ID:          primitive.NewObjectID(),
			UserID:      primitive.NewObjectID(),
			Category:    "maintenance",
			Subject:     "Leaking faucet",
			Description: "The bathroom faucet drips constantly.",
			Priority:    "medium",
			Status:      models.ServiceRequestOpen,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
}

func (b *ServiceRequestBuilder) WithID(id primitive.ObjectID) *ServiceRequestBuilder {
	b.request.ID = id
	return b
}

func (b *ServiceRequestBuilder) WithUserID(userID primitive.ObjectID) *ServiceRequestBuilder {
	b.request.UserID = userID
	return b
}

func (b *ServiceRequestBuilder) WithCategory(category string) *ServiceRequestBuilder {
	b.request.Category = category
	return b
}

func (b *ServiceRequestBuilder) WithStatus(status models.ServiceRequestStatus) *ServiceRequestBuilder {
	b.request.Status = status
	return b
}

func (b *ServiceRequestBuilder) Resolved() *ServiceRequestBuilder {
	b.request.Status = models.ServiceRequestResolved
	return b
}

func (b *ServiceRequestBuilder) Build() models.ServiceRequest {
	return b.request
}

func (b *ServiceRequestBuilder) BuildPtr() *models.ServiceRequest {
	return &b.request
}

// ===== Settings Fixtures =====

// HomeSettingsBuilder provides fluent API for building test home settings.
type HomeSettingsBuilder struct {
	settings models.HomeSettings
}

// NewHomeSettings creates a new HomeSettingsBuilder with sensible defaults.
func NewHomeSettings() *HomeSettingsBuilder {
	return &HomeSettingsBuilder{
		settings: models.HomeSettings{
			ID:       primitive.NewObjectID(),
			UserID:   primitive.NewObjectID(),
			Theme:    "light",
			Language: "en",
			Notifications: models.NotificationSettings{
				Email: true,
				Push:  true,
			},
			Dashboard: models.DashboardSettings{
				Widgets:     []string{"overview", "activity"},
				DefaultView: "dashboard",
			},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *HomeSettingsBuilder) WithUserID(userID primitive.ObjectID) *HomeSettingsBuilder {
	b.settings.UserID = userID
	return b
}

func (b *HomeSettingsBuilder) WithTheme(theme string) *HomeSettingsBuilder {
	b.settings.Theme = theme
	return b
}

func (b *HomeSettingsBuilder) Build() models.HomeSettings {
	return b.settings
}

func (b *HomeSettingsBuilder) BuildPtr() *models.HomeSettings {
	return &b.settings
}

// ProfileSettingsBuilder provides fluent API for building test profile settings.
type ProfileSettingsBuilder struct {
	settings models.ProfileSettings
}

// NewProfileSettings creates a new ProfileSettingsBuilder with sensible defaults.
func NewProfileSettings() *ProfileSettingsBuilder {
	return &ProfileSettingsBuilder{
		settings: models.ProfileSettings{
			ID:          primitive.NewObjectID(),
			UserID:      primitive.NewObjectID(),
			DisplayName: "Juan D.",
			Bio:         "Tenant since 2023",
			Preferences: models.PreferenceSettings{
				Timezone:   "Asia/Manila",
				DateFormat: "MM/DD/YYYY",
				Currency:   "PHP",
			},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *ProfileSettingsBuilder) WithUserID(userID primitive.ObjectID) *ProfileSettingsBuilder {
	b.settings.UserID = userID
	return b
}

func (b *ProfileSettingsBuilder) WithAvatar(key string) *ProfileSettingsBuilder {
	b.settings.Avatar = key
	return b
}

func (b *ProfileSettingsBuilder) Build() models.ProfileSettings {
	return b.settings
}

func (b *ProfileSettingsBuilder) BuildPtr() *models.ProfileSettings {
	return &b.settings
}

// ===== RefreshToken Fixtures =====

// RefreshTokenBuilder provides fluent API for building test refresh tokens.
type RefreshTokenBuilder struct {
	token models.RefreshToken
}

// NewRefreshToken creates a new RefreshTokenBuilder with sensible defaults.
func NewRefreshToken() *RefreshTokenBuilder {
	return &RefreshTokenBuilder{
		token: models.RefreshToken{
			ID:        primitive.NewObjectID(),
			Token:     fmt.Sprintf("rf_%s", primitive.NewObjectID().Hex()),
			UserID:    primitive.NewObjectID(),
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour), // 7 days from now
			CreatedAt: time.Now(),
		},
	}
}

func (b *RefreshTokenBuilder) WithID(id primitive.ObjectID) *RefreshTokenBuilder {
	b.token.ID = id
	return b
}

func (b *RefreshTokenBuilder) WithToken(token string) *RefreshTokenBuilder {
	b.token.Token = token
	return b
}

func (b *RefreshTokenBuilder) WithUserID(userID primitive.ObjectID) *RefreshTokenBuilder {
	b.token.UserID = userID
	return b
}

func (b *RefreshTokenBuilder) Expired() *RefreshTokenBuilder {
	b.token.ExpiresAt = time.Now().Add(-24 * time.Hour) // Expired 1 day ago
	return b
}

func (b *RefreshTokenBuilder) Build() models.RefreshToken {
	return b.token
}

func (b *RefreshTokenBuilder) BuildPtr() *models.RefreshToken {
	return &b.token
}
