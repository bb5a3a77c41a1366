//go:build api

package api

import (
	"net/http"
	"testing"

	"boardinghouse/internal/models"
	"boardinghouse/test/api/testserver"
	"boardinghouse/test/fixtures"
	"boardinghouse/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateContract tests the POST /api/v1/contracts endpoint.
func TestCreateContract(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, adminToken := authHelper.CreateAdmin(t)
	client, clientToken := authHelper.CreateClient(t)

	rent := 4500.0

	t.Run("success - defaults to pending and PHP", func(t *testing.T) {
		req := models.CreateContractRequest{
			UserID:       client.ID.Hex(),
			PropertyName: "Dorm A",
			RoomNumber:   "204",
			StartDate:    "2024-01-01",
			RentAmount:   &rent,
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/contracts", adminToken, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, string(models.ContractPending), resp.Data["status"])
		assert.Equal(t, "PHP", resp.Data["currency"])
		assert.Equal(t, client.ID.Hex(), resp.Data["userId"])
	})

	t.Run("success - unknown status falls back to pending", func(t *testing.T) {
		req := models.CreateContractRequest{
			UserID:       client.ID.Hex(),
			PropertyName: "Dorm A",
			StartDate:    "2024-01-01",
			RentAmount:   &rent,
			Status:       models.ContractStatus("frozen"),
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/contracts", adminToken, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, string(models.ContractPending), resp.Data["status"])
	})

	t.Run("error - unparseable start date", func(t *testing.T) {
		req := models.CreateContractRequest{
			UserID:       client.ID.Hex(),
			PropertyName: "Dorm A",
			StartDate:    "January first",
			RentAmount:   &rent,
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/contracts", adminToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - unknown tenant", func(t *testing.T) {
		req := models.CreateContractRequest{
			UserID:       "507f1f77bcf86cd799439099",
			PropertyName: "Dorm A",
			StartDate:    "2024-01-01",
			RentAmount:   &rent,
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/contracts", adminToken, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error - clients cannot create contracts", func(t *testing.T) {
		req := models.CreateContractRequest{
			UserID:       client.ID.Hex(),
			PropertyName: "Dorm A",
			StartDate:    "2024-01-01",
			RentAmount:   &rent,
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/contracts", clientToken, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestListContracts tests the GET /api/v1/contracts endpoint.
func TestListContracts(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	contractHelper := testserver.NewContractHelper(testServer)
	_, adminToken := authHelper.CreateAdmin(t)
	client, _ := authHelper.CreateClient(t)
	other, _ := authHelper.CreateClient(t)

	contractHelper.SeedContract(t, fixtures.NewContract().WithUserID(client.ID).Active().BuildPtr())
	contractHelper.SeedContract(t, fixtures.NewContract().WithUserID(client.ID).Terminated().BuildPtr())
	contractHelper.SeedContract(t, fixtures.NewContract().WithUserID(other.ID).Active().BuildPtr())

	t.Run("success - lists all with tenant summaries", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/contracts", adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		contracts := testutil.ParseAPIListResponse(t, w)
		require.Len(t, contracts, 3)

		first := contracts[0].(map[string]interface{})
		user, ok := first["user"].(map[string]interface{})
		require.True(t, ok, "each contract should embed a tenant summary")
		assert.NotEmpty(t, user["email"])
	})

	t.Run("success - filters by user and status", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/contracts?userId="+client.ID.Hex()+"&status=active", adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		contracts := testutil.ParseAPIListResponse(t, w)
		assert.Len(t, contracts, 1)
	})

	t.Run("error - unknown status filter", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/contracts?status=frozen", adminToken, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestUpdateContract tests the PUT /api/v1/contracts/:id endpoint.
func TestUpdateContract(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	contractHelper := testserver.NewContractHelper(testServer)
	_, adminToken := authHelper.CreateAdmin(t)
	client, _ := authHelper.CreateClient(t)

	contract := fixtures.NewContract().WithUserID(client.ID).BuildPtr()
	contractHelper.SeedContract(t, contract)

	t.Run("success - activates a pending contract", func(t *testing.T) {
		active := models.ContractActive
		req := models.UpdateContractRequest{Status: &active}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/contracts/"+contract.ID.Hex(), adminToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, string(models.ContractActive), resp.Data["status"])
	})

	t.Run("error - unknown status rejected on update", func(t *testing.T) {
		frozen := models.ContractStatus("frozen")
		req := models.UpdateContractRequest{Status: &frozen}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/contracts/"+contract.ID.Hex(), adminToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - not found", func(t *testing.T) {
		rent := 5000.0
		req := models.UpdateContractRequest{RentAmount: &rent}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/contracts/507f1f77bcf86cd799439099", adminToken, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestTerminateContract tests the DELETE /api/v1/contracts/:id endpoint.
func TestTerminateContract(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	contractHelper := testserver.NewContractHelper(testServer)
	_, adminToken := authHelper.CreateAdmin(t)
	client, _ := authHelper.CreateClient(t)

	contract := fixtures.NewContract().WithUserID(client.ID).Active().BuildPtr()
	contractHelper.SeedContract(t, contract)

	t.Run("success - terminates instead of deleting", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/contracts/"+contract.ID.Hex(), adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, string(models.ContractTerminated), resp.Data["status"])

		// Record survives for billing history.
		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/contracts/"+contract.ID.Hex(), adminToken, nil)
		assert.Equal(t, http.StatusOK, w2.Code)
	})

	t.Run("error - not found", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/contracts/507f1f77bcf86cd799439099", adminToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
