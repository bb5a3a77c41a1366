// Package service contains business logic for the application.
package service

import (
	"context"

	"boardinghouse/internal/models"
	"boardinghouse/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	Logout(ctx context.Context, req *models.LogoutRequest) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetAllUsers(ctx context.Context, role string) ([]models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeactivateUser(ctx context.Context, id primitive.ObjectID) error
}

// WalletServicer defines the interface for wallet operations.
type WalletServicer interface {
	GetWallet(ctx context.Context, userID primitive.ObjectID) (*models.WalletResponse, error)
	CreateTransaction(ctx context.Context, userID primitive.ObjectID, req *models.CreateTransactionRequest) (*models.Transaction, error)
	SettleTransaction(ctx context.Context, userID primitive.ObjectID, req *models.SettleTransactionRequest) (*models.Transaction, error)
}

// ContractServicer defines the interface for rental contract operations.
type ContractServicer interface {
	CreateContract(ctx context.Context, req *models.CreateContractRequest) (*models.Contract, error)
	ListContracts(ctx context.Context, filter repository.ContractFilter) ([]models.ContractWithUser, error)
	GetContract(ctx context.Context, id primitive.ObjectID) (*models.ContractWithUser, error)
	UpdateContract(ctx context.Context, id primitive.ObjectID, req *models.UpdateContractRequest) (*models.Contract, error)
	TerminateContract(ctx context.Context, id primitive.ObjectID) (*models.Contract, error)
}

// OccupancyServicer defines the interface for occupancy record operations.
type OccupancyServicer interface {
	CreateOccupancy(ctx context.Context, req *models.CreateOccupancyRequest) (*models.OccupancyRecord, error)
	CreateReservation(ctx context.Context, req *models.ReservationRequest) (*models.OccupancyRecord, error)
	ListOccupancies(ctx context.Context, filter repository.OccupancyFilter) ([]models.OccupancyWithUser, error)
	GetOccupancy(ctx context.Context, id primitive.ObjectID) (*models.OccupancyWithUser, error)
	UpdateOccupancy(ctx context.Context, id primitive.ObjectID, req *models.UpdateOccupancyRequest) (*models.OccupancyRecord, error)
	DeleteOccupancy(ctx context.Context, id primitive.ObjectID) error
}

// InvoiceServicer defines the interface for billing invoice operations.
type InvoiceServicer interface {
	CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.BillingInvoice, error)
	ListInvoices(ctx context.Context, filter repository.InvoiceFilter) ([]models.InvoiceWithDetails, error)
	GetInvoice(ctx context.Context, id primitive.ObjectID) (*models.InvoiceWithDetails, error)
	UpdateInvoice(ctx context.Context, id primitive.ObjectID, req *models.UpdateInvoiceRequest) (*models.BillingInvoice, error)
	VoidInvoice(ctx context.Context, id primitive.ObjectID) (*models.BillingInvoice, error)
}

// SettingsServicer defines the interface for home/profile settings operations.
type SettingsServicer interface {
	GetHomeSettings(ctx context.Context, userID primitive.ObjectID) (*models.HomeSettings, error)
	CreateHomeSettings(ctx context.Context, userID primitive.ObjectID, req *models.UpdateHomeSettingsRequest) (*models.HomeSettings, error)
	UpdateHomeSettings(ctx context.Context, userID primitive.ObjectID, req *models.UpdateHomeSettingsRequest) (*models.HomeSettings, error)

	GetProfileSettings(ctx context.Context, userID primitive.ObjectID) (*models.ProfileSettings, error)
	CreateProfileSettings(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileSettingsRequest) (*models.ProfileSettings, error)
	UpdateProfileSettings(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileSettingsRequest) (*models.ProfileSettings, error)
	RequestAvatarUpload(ctx context.Context, userID primitive.ObjectID, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error)

	TenantProfiles(ctx context.Context) (*models.TenantProfilesResponse, error)
}

// ServiceRequestServicer defines the interface for service ticket operations.
type ServiceRequestServicer interface {
	CreateServiceRequest(ctx context.Context, req *models.CreateServiceRequestRequest) (*models.ServiceRequest, error)
	ListServiceRequests(ctx context.Context, filter repository.ServiceRequestFilter) ([]models.ServiceRequestWithUser, error)
	GetServiceRequest(ctx context.Context, id primitive.ObjectID) (*models.ServiceRequestWithUser, error)
	UpdateServiceRequest(ctx context.Context, id primitive.ObjectID, req *models.UpdateServiceRequestRequest) (*models.ServiceRequest, error)
	DeleteServiceRequest(ctx context.Context, id primitive.ObjectID) error
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer           = (*AuthService)(nil)
	_ UserServicer           = (*UserService)(nil)
	_ WalletServicer         = (*WalletService)(nil)
	_ ContractServicer       = (*ContractService)(nil)
	_ OccupancyServicer      = (*OccupancyService)(nil)
	_ InvoiceServicer        = (*InvoiceService)(nil)
	_ SettingsServicer       = (*SettingsService)(nil)
	_ ServiceRequestServicer = (*ServiceRequestService)(nil)
)
