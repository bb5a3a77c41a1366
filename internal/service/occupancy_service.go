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

// reservationNote marks occupancy records created through the client portal's
// reservation shortcut.
const reservationNote = "Reservation made via client portal"

// OccupancyService handles business logic for occupancy records.
type OccupancyService struct {
	repo     repository.OccupancyRepository
	userRepo repository.UserRepository
}

// NewOccupancyService creates a new OccupancyService.
func NewOccupancyService(repo repository.OccupancyRepository, userRepo repository.UserRepository) *OccupancyService {
	return &OccupancyService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// CreateOccupancy creates an occupancy record for an existing tenant.
func (s *OccupancyService) CreateOccupancy(ctx context.Context, req *models.CreateOccupancyRequest) (*models.OccupancyRecord, error) {
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	moveIn, err := parseDate(req.MoveInDate)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	var moveOut *time.Time
	if req.MoveOutDate != "" {
		t, err := parseDate(req.MoveOutDate)
		if err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		moveOut = &t
	}

	status := req.Status
	if !models.ValidOccupancyStatus(status) {
		status = models.OccupancyPlanned
	}

	record := &models.OccupancyRecord{
		UserID:       userID,
		PropertyName: req.PropertyName,
		RoomNumber:   req.RoomNumber,
		MoveInDate:   moveIn,
		MoveOutDate:  moveOut,
		Status:       status,
		Notes:        req.Notes,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// CreateReservation creates a planned occupancy record from the client
// portal's reservation shortcut.
func (s *OccupancyService) CreateReservation(ctx context.Context, req *models.ReservationRequest) (*models.OccupancyRecord, error) {
	return s.CreateOccupancy(ctx, &models.CreateOccupancyRequest{
		UserID:       req.UserID,
		PropertyName: req.PropertyName,
		RoomNumber:   req.RoomNumber,
		MoveInDate:   req.MoveInDate,
		Status:       models.OccupancyPlanned,
		Notes:        reservationNote,
	})
}

// ListOccupancies returns occupancy records matching the filter, joined with
// their tenants' summaries.
func (s *OccupancyService) ListOccupancies(ctx context.Context, filter repository.OccupancyFilter) ([]models.OccupancyWithUser, error) {
	records, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.UserID)
	}
	summaries, err := userSummaries(ctx, s.userRepo, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.OccupancyWithUser, 0, len(records))
	for _, r := range records {
		result = append(result, models.OccupancyWithUser{
			OccupancyRecord: r,
			User:            summaries[r.UserID],
		})
	}

	return result, nil
}

// GetOccupancy returns an occupancy record joined with its tenant's summary.
func (s *OccupancyService) GetOccupancy(ctx context.Context, id primitive.ObjectID) (*models.OccupancyWithUser, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &models.OccupancyWithUser{OccupancyRecord: *record}
	if user, err := s.userRepo.FindByID(ctx, record.UserID); err == nil {
		result.User = user.Summary()
	}

	return result, nil
}

// UpdateOccupancy applies partial changes to an occupancy record.
func (s *OccupancyService) UpdateOccupancy(ctx context.Context, id primitive.ObjectID, req *models.UpdateOccupancyRequest) (*models.OccupancyRecord, error) {
	update := bson.M{}

	if req.PropertyName != nil {
		update["propertyName"] = *req.PropertyName
	}
	if req.RoomNumber != nil {
		update["roomNumber"] = *req.RoomNumber
	}
	if req.MoveInDate != nil {
		t, err := parseDate(*req.MoveInDate)
		if err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		update["moveInDate"] = t
	}
	if req.MoveOutDate != nil {
		t, err := parseDate(*req.MoveOutDate)
		if err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		update["moveOutDate"] = t
	}
	if req.Status != nil {
		if !models.ValidOccupancyStatus(*req.Status) {
			return nil, apperrors.ErrInvalidOccupancyStatus
		}
		update["status"] = *req.Status
	}
	if req.Notes != nil {
		update["notes"] = *req.Notes
	}

	return s.repo.Update(ctx, id, update)
}

// DeleteOccupancy removes an occupancy record. Scheduling records carry no
// billing history, so a hard delete is fine here.
func (s *OccupancyService) DeleteOccupancy(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
