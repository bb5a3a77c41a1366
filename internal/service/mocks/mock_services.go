// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"boardinghouse/internal/models"
	"boardinghouse/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	SignupFunc  func(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	LoginFunc   func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RefreshFunc func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	LogoutFunc  func(ctx context.Context, req *models.LogoutRequest) error
}

func (m *MockAuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, req *models.LogoutRequest) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, req)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	CreateUserFunc     func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetUserFunc        func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetAllUsersFunc    func(ctx context.Context, role string) ([]models.User, error)
	UpdateUserFunc     func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeactivateUserFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) GetAllUsers(ctx context.Context, role string) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx, role)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) DeactivateUser(ctx context.Context, id primitive.ObjectID) error {
	if m.DeactivateUserFunc != nil {
		return m.DeactivateUserFunc(ctx, id)
	}
	return nil
}

// MockWalletService is a mock implementation of WalletServicer.
type MockWalletService struct {
	GetWalletFunc         func(ctx context.Context, userID primitive.ObjectID) (*models.WalletResponse, error)
	CreateTransactionFunc func(ctx context.Context, userID primitive.ObjectID, req *models.CreateTransactionRequest) (*models.Transaction, error)
	SettleTransactionFunc func(ctx context.Context, userID primitive.ObjectID, req *models.SettleTransactionRequest) (*models.Transaction, error)
}

func (m *MockWalletService) GetWallet(ctx context.Context, userID primitive.ObjectID) (*models.WalletResponse, error) {
	if m.GetWalletFunc != nil {
		return m.GetWalletFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockWalletService) CreateTransaction(ctx context.Context, userID primitive.ObjectID, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if m.CreateTransactionFunc != nil {
		return m.CreateTransactionFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockWalletService) SettleTransaction(ctx context.Context, userID primitive.ObjectID, req *models.SettleTransactionRequest) (*models.Transaction, error) {
	if m.SettleTransactionFunc != nil {
		return m.SettleTransactionFunc(ctx, userID, req)
	}
	return nil, nil
}

// MockContractService is a mock implementation of ContractServicer.
type MockContractService struct {
	CreateContractFunc    func(ctx context.Context, req *models.CreateContractRequest) (*models.Contract, error)
	ListContractsFunc     func(ctx context.Context, filter repository.ContractFilter) ([]models.ContractWithUser, error)
	GetContractFunc       func(ctx context.Context, id primitive.ObjectID) (*models.ContractWithUser, error)
	UpdateContractFunc    func(ctx context.Context, id primitive.ObjectID, req *models.UpdateContractRequest) (*models.Contract, error)
	TerminateContractFunc func(ctx context.Context, id primitive.ObjectID) (*models.Contract, error)
}

func (m *MockContractService) CreateContract(ctx context.Context, req *models.CreateContractRequest) (*models.Contract, error) {
	if m.CreateContractFunc != nil {
		return m.CreateContractFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockContractService) ListContracts(ctx context.Context, filter repository.ContractFilter) ([]models.ContractWithUser, error) {
	if m.ListContractsFunc != nil {
		return m.ListContractsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockContractService) GetContract(ctx context.Context, id primitive.ObjectID) (*models.ContractWithUser, error) {
	if m.GetContractFunc != nil {
		return m.GetContractFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockContractService) UpdateContract(ctx context.Context, id primitive.ObjectID, req *models.UpdateContractRequest) (*models.Contract, error) {
	if m.UpdateContractFunc != nil {
		return m.UpdateContractFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockContractService) TerminateContract(ctx context.Context, id primitive.ObjectID) (*models.Contract, error) {
	if m.TerminateContractFunc != nil {
		return m.TerminateContractFunc(ctx, id)
	}
	return nil, nil
}

// MockOccupancyService is a mock implementation of OccupancyServicer.
type MockOccupancyService struct {
	CreateOccupancyFunc   func(ctx context.Context, req *models.CreateOccupancyRequest) (*models.OccupancyRecord, error)
	CreateReservationFunc func(ctx context.Context, req *models.ReservationRequest) (*models.OccupancyRecord, error)
	ListOccupanciesFunc   func(ctx context.Context, filter repository.OccupancyFilter) ([]models.OccupancyWithUser, error)
	GetOccupancyFunc      func(ctx context.Context, id primitive.ObjectID) (*models.OccupancyWithUser, error)
	UpdateOccupancyFunc   func(ctx context.Context, id primitive.ObjectID, req *models.UpdateOccupancyRequest) (*models.OccupancyRecord, error)
	DeleteOccupancyFunc   func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockOccupancyService) CreateOccupancy(ctx context.Context, req *models.CreateOccupancyRequest) (*models.OccupancyRecord, error) {
	if m.CreateOccupancyFunc != nil {
		return m.CreateOccupancyFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockOccupancyService) CreateReservation(ctx context.Context, req *models.ReservationRequest) (*models.OccupancyRecord, error) {
	if m.CreateReservationFunc != nil {
		return m.CreateReservationFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockOccupancyService) ListOccupancies(ctx context.Context, filter repository.OccupancyFilter) ([]models.OccupancyWithUser, error) {
	if m.ListOccupanciesFunc != nil {
		return m.ListOccupanciesFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockOccupancyService) GetOccupancy(ctx context.Context, id primitive.ObjectID) (*models.OccupancyWithUser, error) {
	if m.GetOccupancyFunc != nil {
		return m.GetOccupancyFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOccupancyService) UpdateOccupancy(ctx context.Context, id primitive.ObjectID, req *models.UpdateOccupancyRequest) (*models.OccupancyRecord, error) {
	if m.UpdateOccupancyFunc != nil {
		return m.UpdateOccupancyFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockOccupancyService) DeleteOccupancy(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteOccupancyFunc != nil {
		return m.DeleteOccupancyFunc(ctx, id)
	}
	return nil
}

// MockInvoiceService is a mock implementation of InvoiceServicer.
type MockInvoiceService struct {
	CreateInvoiceFunc func(ctx context.Context, req *models.CreateInvoiceRequest) (*models.BillingInvoice, error)
	ListInvoicesFunc  func(ctx context.Context, filter repository.InvoiceFilter) ([]models.InvoiceWithDetails, error)
	GetInvoiceFunc    func(ctx context.Context, id primitive.ObjectID) (*models.InvoiceWithDetails, error)
	UpdateInvoiceFunc func(ctx context.Context, id primitive.ObjectID, req *models.UpdateInvoiceRequest) (*models.BillingInvoice, error)
	VoidInvoiceFunc   func(ctx context.Context, id primitive.ObjectID) (*models.BillingInvoice, error)
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.BillingInvoice, error) {
	if m.CreateInvoiceFunc != nil {
		return m.CreateInvoiceFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context, filter repository.InvoiceFilter) ([]models.InvoiceWithDetails, error) {
	if m.ListInvoicesFunc != nil {
		return m.ListInvoicesFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockInvoiceService) GetInvoice(ctx context.Context, id primitive.ObjectID) (*models.InvoiceWithDetails, error) {
	if m.GetInvoiceFunc != nil {
		return m.GetInvoiceFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, id primitive.ObjectID, req *models.UpdateInvoiceRequest) (*models.BillingInvoice, error) {
	if m.UpdateInvoiceFunc != nil {
		return m.UpdateInvoiceFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockInvoiceService) VoidInvoice(ctx context.Context, id primitive.ObjectID) (*models.BillingInvoice, error) {
	if m.VoidInvoiceFunc != nil {
		return m.VoidInvoiceFunc(ctx, id)
	}
	return nil, nil
}

// MockSettingsService is a mock implementation of SettingsServicer.
type MockSettingsService struct {
	GetHomeSettingsFunc       func(ctx context.Context, userID primitive.ObjectID) (*models.HomeSettings, error)
	CreateHomeSettingsFunc    func(ctx context.Context, userID primitive.ObjectID, req *models.UpdateHomeSettingsRequest) (*models.HomeSettings, error)
	UpdateHomeSettingsFunc    func(ctx context.Context, userID primitive.ObjectID, req *models.UpdateHomeSettingsRequest) (*models.HomeSettings, error)
	GetProfileSettingsFunc    func(ctx context.Context, userID primitive.ObjectID) (*models.ProfileSettings, error)
	CreateProfileSettingsFunc func(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileSettingsRequest) (*models.ProfileSettings, error)
	UpdateProfileSettingsFunc func(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileSettingsRequest) (*models.ProfileSettings, error)
	RequestAvatarUploadFunc   func(ctx context.Context, userID primitive.ObjectID, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error)
	TenantProfilesFunc        func(ctx context.Context) (*models.TenantProfilesResponse, error)
}

func (m *MockSettingsService) GetHomeSettings(ctx context.Context, userID primitive.ObjectID) (*models.HomeSettings, error) {
	if m.GetHomeSettingsFunc != nil {
		return m.GetHomeSettingsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockSettingsService) CreateHomeSettings(ctx context.Context, userID primitive.ObjectID, req *models.UpdateHomeSettingsRequest) (*models.HomeSettings, error) {
	if m.CreateHomeSettingsFunc != nil {
		return m.CreateHomeSettingsFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockSettingsService) UpdateHomeSettings(ctx context.Context, userID primitive.ObjectID, req *models.UpdateHomeSettingsRequest) (*models.HomeSettings, error) {
	if m.UpdateHomeSettingsFunc != nil {
		return m.UpdateHomeSettingsFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockSettingsService) GetProfileSettings(ctx context.Context, userID primitive.ObjectID) (*models.ProfileSettings, error) {
	if m.GetProfileSettingsFunc != nil {
		return m.GetProfileSettingsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockSettingsService) CreateProfileSettings(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileSettingsRequest) (*models.ProfileSettings, error) {
	if m.CreateProfileSettingsFunc != nil {
		return m.CreateProfileSettingsFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockSettingsService) UpdateProfileSettings(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileSettingsRequest) (*models.ProfileSettings, error) {
	if m.UpdateProfileSettingsFunc != nil {
		return m.UpdateProfileSettingsFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockSettingsService) RequestAvatarUpload(ctx context.Context, userID primitive.ObjectID, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error) {
	if m.RequestAvatarUploadFunc != nil {
		return m.RequestAvatarUploadFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockSettingsService) TenantProfiles(ctx context.Context) (*models.TenantProfilesResponse, error) {
	if m.TenantProfilesFunc != nil {
		return m.TenantProfilesFunc(ctx)
	}
	return nil, nil
}

// MockServiceRequestService is a mock implementation of ServiceRequestServicer.
type MockServiceRequestService struct {
	CreateServiceRequestFunc func(ctx context.Context, req *models.CreateServiceRequestRequest) (*models.ServiceRequest, error)
	ListServiceRequestsFunc  func(ctx context.Context, filter repository.ServiceRequestFilter) ([]models.ServiceRequestWithUser, error)
	GetServiceRequestFunc    func(ctx context.Context, id primitive.ObjectID) (*models.ServiceRequestWithUser, error)
	UpdateServiceRequestFunc func(ctx context.Context, id primitive.ObjectID, req *models.UpdateServiceRequestRequest) (*models.ServiceRequest, error)
	DeleteServiceRequestFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockServiceRequestService) CreateServiceRequest(ctx context.Context, req *models.CreateServiceRequestRequest) (*models.ServiceRequest, error) {
	if m.CreateServiceRequestFunc != nil {
		return m.CreateServiceRequestFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockServiceRequestService) ListServiceRequests(ctx context.Context, filter repository.ServiceRequestFilter) ([]models.ServiceRequestWithUser, error) {
	if m.ListServiceRequestsFunc != nil {
		return m.ListServiceRequestsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockServiceRequestService) GetServiceRequest(ctx context.Context, id primitive.ObjectID) (*models.ServiceRequestWithUser, error) {
	if m.GetServiceRequestFunc != nil {
		return m.GetServiceRequestFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockServiceRequestService) UpdateServiceRequest(ctx context.Context, id primitive.ObjectID, req *models.UpdateServiceRequestRequest) (*models.ServiceRequest, error) {
	if m.UpdateServiceRequestFunc != nil {
		return m.UpdateServiceRequestFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockServiceRequestService) DeleteServiceRequest(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteServiceRequestFunc != nil {
		return m.DeleteServiceRequestFunc(ctx, id)
	}
	return nil
}
