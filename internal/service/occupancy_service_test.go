package service

import (
	"context"
	"testing"

	apperrors "boardinghouse/internal/errors"
	"boardinghouse/internal/models"
	"boardinghouse/internal/repository"
	repomocks "boardinghouse/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestOccupancyService_CreateOccupancy(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("defaults status to planned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockOccupancyRepository(ctrl)
		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		mockUserRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, record *models.OccupancyRecord) error {
				assert.Equal(t, models.OccupancyPlanned, record.Status)
				assert.Nil(t, record.MoveOutDate)
				return nil
			})

		service := NewOccupancyService(mockRepo, mockUserRepo)
		record, err := service.CreateOccupancy(context.Background(), &models.CreateOccupancyRequest{
			UserID:       userID.Hex(),
			PropertyName: "Dorm A",
			MoveInDate:   "2024-01-01",
		})

		require.NoError(t, err)
		assert.Equal(t, models.OccupancyPlanned, record.Status)
	})

	t.Run("falls back to planned for unrecognized status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockOccupancyRepository(ctrl)
		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		mockUserRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		service := NewOccupancyService(mockRepo, mockUserRepo)
		record, err := service.CreateOccupancy(context.Background(), &models.CreateOccupancyRequest{
			UserID:       userID.Hex(),
			PropertyName: "Dorm A",
			MoveInDate:   "2024-01-01",
			Status:       "evicted",
		})

		require.NoError(t, err)
		assert.Equal(t, models.OccupancyPlanned, record.Status)
	})

	t.Run("rejects unknown tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockOccupancyRepository(ctrl)
		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		mockUserRepo.EXPECT().FindByID(gomock.Any(), userID).Return(nil, apperrors.ErrUserNotFound)

		service := NewOccupancyService(mockRepo, mockUserRepo)
		record, err := service.CreateOccupancy(context.Background(), &models.CreateOccupancyRequest{
			UserID:       userID.Hex(),
			PropertyName: "Dorm A",
			MoveInDate:   "2024-01-01",
		})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, record)
	})
}

func TestOccupancyService_CreateReservation(t *testing.T) {
	userID := primitive.NewObjectID()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockOccupancyRepository(ctrl)
	mockUserRepo := repomocks.NewMockUserRepository(ctrl)

	mockUserRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *models.OccupancyRecord) error {
			assert.Equal(t, models.OccupancyPlanned, record.Status)
			assert.Equal(t, reservationNote, record.Notes)
			return nil
		})

	service := NewOccupancyService(mockRepo, mockUserRepo)
	record, err := service.CreateReservation(context.Background(), &models.ReservationRequest{
		UserID:       userID.Hex(),
		PropertyName: "Dorm A",
		RoomNumber:   "204",
		MoveInDate:   "2024-03-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "204", record.RoomNumber)
}

func TestOccupancyService_ListOccupancies(t *testing.T) {
	userID := primitive.NewObjectID()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockOccupancyRepository(ctrl)
	mockUserRepo := repomocks.NewMockUserRepository(ctrl)

	filter := repository.OccupancyFilter{UserID: userID}

	mockRepo.EXPECT().
		FindAll(gomock.Any(), filter).
		Return([]models.OccupancyRecord{{ID: primitive.NewObjectID(), UserID: userID}}, nil)
	mockUserRepo.EXPECT().
		FindByIDs(gomock.Any(), []primitive.ObjectID{userID}).
		Return([]models.User{{ID: userID, FirstName: "Juan"}}, nil)

	service := NewOccupancyService(mockRepo, mockUserRepo)
	records, err := service.ListOccupancies(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].User)
	assert.Equal(t, "Juan", records[0].User.FirstName)
}

func TestOccupancyService_UpdateOccupancy(t *testing.T) {
	recordID := primitive.NewObjectID()

	t.Run("builds partial update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockOccupancyRepository(ctrl)
		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		status := models.OccupancyCheckedIn
		moveOut := "2024-06-30"

		mockRepo.EXPECT().
			Update(gomock.Any(), recordID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.OccupancyRecord, error) {
				assert.Equal(t, models.OccupancyCheckedIn, update["status"])
				assert.Contains(t, update, "moveOutDate")
				return &models.OccupancyRecord{ID: recordID, Status: status}, nil
			})

		service := NewOccupancyService(mockRepo, mockUserRepo)
		record, err := service.UpdateOccupancy(context.Background(), recordID, &models.UpdateOccupancyRequest{
			Status:      &status,
			MoveOutDate: &moveOut,
		})

		require.NoError(t, err)
		assert.Equal(t, models.OccupancyCheckedIn, record.Status)
	})

	t.Run("rejects unrecognized status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockOccupancyRepository(ctrl)
		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		bad := models.OccupancyStatus("evicted")

		service := NewOccupancyService(mockRepo, mockUserRepo)
		record, err := service.UpdateOccupancy(context.Background(), recordID, &models.UpdateOccupancyRequest{
			Status: &bad,
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidOccupancyStatus)
		assert.Nil(t, record)
	})
}

func TestOccupancyService_DeleteOccupancy(t *testing.T) {
	recordID := primitive.NewObjectID()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockOccupancyRepository(ctrl)
	mockUserRepo := repomocks.NewMockUserRepository(ctrl)

	mockRepo.EXPECT().Delete(gomock.Any(), recordID).Return(nil)

	service := NewOccupancyService(mockRepo, mockUserRepo)
	assert.NoError(t, service.DeleteOccupancy(context.Background(), recordID))
}
