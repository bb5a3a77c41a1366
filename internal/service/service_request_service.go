package service

import (
	"context"

	apperrors "boardinghouse/internal/errors"
	"boardinghouse/internal/models"
	"boardinghouse/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceRequestService handles business logic for maintenance tickets.
type ServiceRequestService struct {
	repo     repository.ServiceRequestRepository
	userRepo repository.UserRepository
}

// NewServiceRequestService creates a new ServiceRequestService.
func NewServiceRequestService(repo repository.ServiceRequestRepository, userRepo repository.UserRepository) *ServiceRequestService {
	return &ServiceRequestService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// CreateServiceRequest opens a ticket for an existing user. New tickets always
// start open with medium priority unless stated otherwise.
func (s *ServiceRequestService) CreateServiceRequest(ctx context.Context, req *models.CreateServiceRequestRequest) (*models.ServiceRequest, error) {
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	ticket := &models.ServiceRequest{
		UserID:      userID,
		Category:    req.Category,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    priority,
		Status:      models.ServiceRequestOpen,
	}

	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

// ListServiceRequests returns tickets matching the filter, joined with their
// reporters' summaries.
func (s *ServiceRequestService) ListServiceRequests(ctx context.Context, filter repository.ServiceRequestFilter) ([]models.ServiceRequestWithUser, error) {
	tickets, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.UserID)
	}
	summaries, err := userSummaries(ctx, s.userRepo, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.ServiceRequestWithUser, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, models.ServiceRequestWithUser{
			ServiceRequest: t,
			User:           summaries[t.UserID],
		})
	}

	return result, nil
}

// GetServiceRequest returns a ticket joined with its reporter's summary.
func (s *ServiceRequestService) GetServiceRequest(ctx context.Context, id primitive.ObjectID) (*models.ServiceRequestWithUser, error) {
	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &models.ServiceRequestWithUser{ServiceRequest: *ticket}
	if user, err := s.userRepo.FindByID(ctx, ticket.UserID); err == nil {
		result.User = user.Summary()
	}

	return result, nil
}

// UpdateServiceRequest applies partial changes to a ticket.
func (s *ServiceRequestService) UpdateServiceRequest(ctx context.Context, id primitive.ObjectID, req *models.UpdateServiceRequestRequest) (*models.ServiceRequest, error) {
	update := bson.M{}

	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.Subject != nil {
		update["subject"] = *req.Subject
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Priority != nil {
		update["priority"] = *req.Priority
	}
	if req.Status != nil {
		if !models.ValidServiceRequestStatus(*req.Status) {
			return nil, apperrors.ErrInvalidServiceRequestStatus
		}
		update["status"] = *req.Status
	}

	return s.repo.Update(ctx, id, update)
}

// DeleteServiceRequest removes a ticket.
func (s *ServiceRequestService) DeleteServiceRequest(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
