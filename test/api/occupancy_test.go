//go:build api

package api

import (
	"context"
	"net/http"
	"testing"

	"boardinghouse/internal/models"
	"boardinghouse/test/api/testserver"
	"boardinghouse/test/fixtures"
	"boardinghouse/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateOccupancy tests the POST /api/v1/occupancy endpoint.
func TestCreateOccupancy(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, adminToken := authHelper.CreateAdmin(t)
	client, clientToken := authHelper.CreateClient(t)

	t.Run("success - defaults to planned", func(t *testing.T) {
		req := models.CreateOccupancyRequest{
			UserID:       client.ID.Hex(),
			PropertyName: "Dorm A",
			RoomNumber:   "204",
			MoveInDate:   "2024-03-01",
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/occupancy", adminToken, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, string(models.OccupancyPlanned), resp.Data["status"])
		assert.Equal(t, client.ID.Hex(), resp.Data["userId"])
	})

	t.Run("success - unknown status falls back to planned", func(t *testing.T) {
		req := models.CreateOccupancyRequest{
			UserID:       client.ID.Hex(),
			PropertyName: "Dorm A",
			RoomNumber:   "205",
			MoveInDate:   "2024-03-01",
			Status:       models.OccupancyStatus("evicted"),
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/occupancy", adminToken, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, string(models.OccupancyPlanned), resp.Data["status"])
	})

	t.Run("error - unparseable move-in date", func(t *testing.T) {
		req := models.CreateOccupancyRequest{
			UserID:       client.ID.Hex(),
			PropertyName: "Dorm A",
			MoveInDate:   "soon",
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/occupancy", adminToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - clients cannot create occupancy records", func(t *testing.T) {
		req := models.CreateOccupancyRequest{
			UserID:       client.ID.Hex(),
			PropertyName: "Dorm A",
			MoveInDate:   "2024-03-01",
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/occupancy", clientToken, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestCreateReservation tests the POST /api/v1/reservations endpoint.
func TestCreateReservation(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	client, clientToken := authHelper.CreateClient(t)

	t.Run("success - client self-service reservation", func(t *testing.T) {
		req := models.ReservationRequest{
			UserID:       client.ID.Hex(),
			PropertyName: "Dorm B",
			RoomNumber:   "101",
			MoveInDate:   "2024-04-01",
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/reservations", clientToken, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, string(models.OccupancyPlanned), resp.Data["status"], "reservations always start planned")
	})

	t.Run("error - missing move-in date", func(t *testing.T) {
		req := models.ReservationRequest{
			UserID:       client.ID.Hex(),
			PropertyName: "Dorm B",
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/reservations", clientToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - unauthenticated", func(t *testing.T) {
		req := models.ReservationRequest{
			UserID:       client.ID.Hex(),
			PropertyName: "Dorm B",
			MoveInDate:   "2024-04-01",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/reservations", req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// TestListOccupancies tests the GET /api/v1/occupancy endpoint.
func TestListOccupancies(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, adminToken := authHelper.CreateAdmin(t)
	client, _ := authHelper.CreateClient(t)

	ctx := context.Background()
	require.NoError(t, testServer.OccupancyRepo.Create(ctx, fixtures.NewOccupancy().WithUserID(client.ID).CheckedIn().BuildPtr()))
	require.NoError(t, testServer.OccupancyRepo.Create(ctx, fixtures.NewOccupancy().WithUserID(client.ID).BuildPtr()))

	t.Run("success - lists with tenant summaries", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/occupancy", adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		records := testutil.ParseAPIListResponse(t, w)
		require.Len(t, records, 2)

		first := records[0].(map[string]interface{})
		user, ok := first["user"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, client.Email, user["email"])
	})

	t.Run("success - filters by status", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/occupancy?status=checked-in", adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		records := testutil.ParseAPIListResponse(t, w)
		assert.Len(t, records, 1)
	})

	t.Run("error - unknown status filter", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/occupancy?status=evicted", adminToken, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestUpdateOccupancy tests the PUT /api/v1/occupancy/:id endpoint.
func TestUpdateOccupancy(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, adminToken := authHelper.CreateAdmin(t)
	client, _ := authHelper.CreateClient(t)

	record := fixtures.NewOccupancy().WithUserID(client.ID).BuildPtr()
	require.NoError(t, testServer.OccupancyRepo.Create(context.Background(), record))

	t.Run("success - checks tenant in", func(t *testing.T) {
		checkedIn := models.OccupancyCheckedIn
		req := models.UpdateOccupancyRequest{Status: &checkedIn}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/occupancy/"+record.ID.Hex(), adminToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, string(models.OccupancyCheckedIn), resp.Data["status"])
	})

	t.Run("error - unknown status", func(t *testing.T) {
		evicted := models.OccupancyStatus("evicted")
		req := models.UpdateOccupancyRequest{Status: &evicted}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/occupancy/"+record.ID.Hex(), adminToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestDeleteOccupancy tests the DELETE /api/v1/occupancy/:id endpoint.
func TestDeleteOccupancy(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, adminToken := authHelper.CreateAdmin(t)
	client, _ := authHelper.CreateClient(t)

	record := fixtures.NewOccupancy().WithUserID(client.ID).BuildPtr()
	require.NoError(t, testServer.OccupancyRepo.Create(context.Background(), record))

	t.Run("success - removes the record", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/occupancy/"+record.ID.Hex(), adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/occupancy/"+record.ID.Hex(), adminToken, nil)
		assert.Equal(t, http.StatusNotFound, w2.Code)
	})

	t.Run("error - not found", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/occupancy/507f1f77bcf86cd799439099", adminToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
