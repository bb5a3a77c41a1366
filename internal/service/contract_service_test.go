package service

import (
	"context"
	"testing"
	"time"

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

func TestParseDate(t *testing.T) {
	t.Run("accepts bare dates", func(t *testing.T) {
		parsed, err := parseDate("2024-01-15")
		require.NoError(t, err)
		assert.Equal(t, 2024, parsed.Year())
		assert.Equal(t, time.January, parsed.Month())
		assert.Equal(t, 15, parsed.Day())
	})

	t.Run("accepts RFC 3339 timestamps", func(t *testing.T) {
		parsed, err := parseDate("2024-01-15T09:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, 9, parsed.Hour())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := parseDate("15/01/2024")
		assert.Error(t, err)
	})
}

func TestContractService_CreateContract(t *testing.T) {
	userID := primitive.NewObjectID()
	rent := 4500.0

	validReq := func() *models.CreateContractRequest {
		return &models.CreateContractRequest{
			UserID:       userID.Hex(),
			PropertyName: "Dorm A",
			RoomNumber:   "204",
			StartDate:    "2024-01-01",
			RentAmount:   &rent,
		}
	}

	t.Run("creates pending contract with defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockContractRepository(ctrl)
		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		mockUserRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(&models.User{ID: userID}, nil)

		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, contract *models.Contract) error {
				assert.Equal(t, models.ContractPending, contract.Status)
				assert.Equal(t, "PHP", contract.Currency)
				assert.Equal(t, 4500.0, contract.RentAmount)
				assert.Nil(t, contract.EndDate)
				return nil
			})

		service := NewContractService(mockRepo, mockUserRepo)
		contract, err := service.CreateContract(context.Background(), validReq())

		require.NoError(t, err)
		assert.Equal(t, userID, contract.UserID)
	})

	t.Run("falls back to pending for unrecognized status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockContractRepository(ctrl)
		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		mockUserRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		req := validReq()
		req.Status = "suspended"

		service := NewContractService(mockRepo, mockUserRepo)
		contract, err := service.CreateContract(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, models.ContractPending, contract.Status)
	})

	t.Run("rejects unknown tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockContractRepository(ctrl)
		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		mockUserRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(nil, apperrors.ErrUserNotFound)

		service := NewContractService(mockRepo, mockUserRepo)
		contract, err := service.CreateContract(context.Background(), validReq())

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, contract)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockContractRepository(ctrl)
		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		mockUserRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)

		req := validReq()
		req.StartDate = "January 1st"

		service := NewContractService(mockRepo, mockUserRepo)
		contract, err := service.CreateContract(context.Background(), req)

		assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
		assert.Nil(t, contract)
	})
}

func TestContractService_ListContracts(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("joins tenant summaries onto contracts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockContractRepository(ctrl)
		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		filter := repository.ContractFilter{Status: models.ContractActive}

		mockRepo.EXPECT().
			FindAll(gomock.Any(), filter).
			Return([]models.Contract{
				{ID: primitive.NewObjectID(), UserID: userID, PropertyName: "Dorm A"},
			}, nil)

		mockUserRepo.EXPECT().
			FindByIDs(gomock.Any(), []primitive.ObjectID{userID}).
			Return([]models.User{{ID: userID, Email: "tenant@example.com"}}, nil)

		service := NewContractService(mockRepo, mockUserRepo)
		contracts, err := service.ListContracts(context.Background(), filter)

		require.NoError(t, err)
		require.Len(t, contracts, 1)
		require.NotNil(t, contracts[0].User)
		assert.Equal(t, "tenant@example.com", contracts[0].User.Email)
	})

	t.Run("returns empty list without hitting user lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockContractRepository(ctrl)
		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		mockRepo.EXPECT().
			FindAll(gomock.Any(), repository.ContractFilter{}).
			Return([]models.Contract{}, nil)

		service := NewContractService(mockRepo, mockUserRepo)
		contracts, err := service.ListContracts(context.Background(), repository.ContractFilter{})

		require.NoError(t, err)
		assert.Empty(t, contracts)
	})
}

func TestContractService_UpdateContract(t *testing.T) {
	contractID := primitive.NewObjectID()

	t.Run("builds partial update from set fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockContractRepository(ctrl)
		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		status := models.ContractActive
		name := "Dorm B"

		mockRepo.EXPECT().
			Update(gomock.Any(), contractID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Contract, error) {
				assert.Equal(t, "Dorm B", update["propertyName"])
				assert.Equal(t, models.ContractActive, update["status"])
				assert.NotContains(t, update, "rentAmount")
				return &models.Contract{ID: contractID, PropertyName: "Dorm B", Status: status}, nil
			})

		service := NewContractService(mockRepo, mockUserRepo)
		contract, err := service.UpdateContract(context.Background(), contractID, &models.UpdateContractRequest{
			PropertyName: &name,
			Status:       &status,
		})

		require.NoError(t, err)
		assert.Equal(t, models.ContractActive, contract.Status)
	})

	t.Run("rejects unrecognized status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockContractRepository(ctrl)
		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		bad := models.ContractStatus("suspended")

		service := NewContractService(mockRepo, mockUserRepo)
		contract, err := service.UpdateContract(context.Background(), contractID, &models.UpdateContractRequest{
			Status: &bad,
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidContractStatus)
		assert.Nil(t, contract)
	})
}

func TestContractService_TerminateContract(t *testing.T) {
	contractID := primitive.NewObjectID()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockContractRepository(ctrl)
	mockUserRepo := repomocks.NewMockUserRepository(ctrl)

	mockRepo.EXPECT().
		Terminate(gomock.Any(), contractID).
		Return(&models.Contract{ID: contractID, Status: models.ContractTerminated}, nil)

	service := NewContractService(mockRepo, mockUserRepo)
	contract, err := service.TerminateContract(context.Background(), contractID)

	require.NoError(t, err)
	assert.Equal(t, models.ContractTerminated, contract.Status)
}
