package service

import (
	"context"
	"time"

	apperrors "boardinghouse/internal/errors"
	"boardinghouse/internal/models"
	"boardinghouse/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultCurrency = "PHP"

// parseDate accepts a bare date (2024-01-01) or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ContractService handles business logic for rental contracts.
type ContractService struct {
	repo     repository.ContractRepository
	userRepo repository.UserRepository
}

// NewContractService creates a new ContractService.
func NewContractService(repo repository.ContractRepository, userRepo repository.UserRepository) *ContractService {
	return &ContractService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// CreateContract creates a rental contract for an existing tenant. An
// unrecognized status value falls back to pending rather than erroring.
func (s *ContractService) CreateContract(ctx context.Context, req *models.CreateContractRequest) (*models.Contract, error) {
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	var endDate *time.Time
	if req.EndDate != "" {
		t, err := parseDate(req.EndDate)
		if err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		endDate = &t
	}

	status := req.Status
	if !models.ValidContractStatus(status) {
		status = models.ContractPending
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	contract := &models.Contract{
		UserID:       userID,
		PropertyName: req.PropertyName,
		RoomNumber:   req.RoomNumber,
		StartDate:    startDate,
		EndDate:      endDate,
		RentAmount:   *req.RentAmount,
		Currency:     currency,
		Status:       status,
		Terms:        req.Terms,
	}

	if err := s.repo.Create(ctx, contract); err != nil {
		return nil, err
	}

	return contract, nil
}

// ListContracts returns contracts matching the filter, joined with their
// tenants' summaries.
func (s *ContractService) ListContracts(ctx context.Context, filter repository.ContractFilter) ([]models.ContractWithUser, error) {
	contracts, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(contracts))
	for _, c := range contracts {
		ids = append(ids, c.UserID)
	}
	summaries, err := userSummaries(ctx, s.userRepo, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.ContractWithUser, 0, len(contracts))
	for _, c := range contracts {
		result = append(result, models.ContractWithUser{
			Contract: c,
			User:     summaries[c.UserID],
		})
	}

	return result, nil
}

// GetContract returns a contract joined with its tenant's summary.
func (s *ContractService) GetContract(ctx context.Context, id primitive.ObjectID) (*models.ContractWithUser, error) {
	contract, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &models.ContractWithUser{Contract: *contract}
	if user, err := s.userRepo.FindByID(ctx, contract.UserID); err == nil {
		result.User = user.Summary()
	}

	return result, nil
}

// UpdateContract applies partial changes to a contract. Unlike creation, an
// unrecognized status value here is rejected.
func (s *ContractService) UpdateContract(ctx context.Context, id primitive.ObjectID, req *models.UpdateContractRequest) (*models.Contract, error) {
	update := bson.M{}

	if req.PropertyName != nil {
		update["propertyName"] = *req.PropertyName
	}
	if req.RoomNumber != nil {
		update["roomNumber"] = *req.RoomNumber
	}
	if req.StartDate != nil {
		t, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		update["startDate"] = t
	}
	if req.EndDate != nil {
		t, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		update["endDate"] = t
	}
	if req.RentAmount != nil {
		update["rentAmount"] = *req.RentAmount
	}
	if req.Currency != nil {
		update["currency"] = *req.Currency
	}
	if req.Status != nil {
		if !models.ValidContractStatus(*req.Status) {
			return nil, apperrors.ErrInvalidContractStatus
		}
		update["status"] = *req.Status
	}
	if req.Terms != nil {
		update["terms"] = *req.Terms
	}

	return s.repo.Update(ctx, id, update)
}

// TerminateContract moves a contract to terminated status.
func (s *ContractService) TerminateContract(ctx context.Context, id primitive.ObjectID) (*models.Contract, error) {
	return s.repo.Terminate(ctx, id)
}

// userSummaries loads the given users and indexes their summaries by ID.
// Missing users are simply absent from the map.
func userSummaries(ctx context.Context, repo repository.UserRepository, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.UserSummary, error) {
	if len(ids) == 0 {
		return map[primitive.ObjectID]*models.UserSummary{}, nil
	}

	users, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries := make(map[primitive.ObjectID]*models.UserSummary, len(users))
	for i := range users {
		summaries[users[i].ID] = users[i].Summary()
	}

	return summaries, nil
}
