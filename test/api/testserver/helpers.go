//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"boardinghouse/internal/models"
	"boardinghouse/pkg/response"
	"boardinghouse/test/fixtures"
	"boardinghouse/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// SignupUser registers a new client account and returns the response data.
func (ah *AuthHelper) SignupUser(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.SignupRequest{
		Email:     email,
		Password:  password,
		FirstName: "Test",
		LastName:  "User",
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/signup", req)
	require.Equal(t, http.StatusCreated, w.Code, "signup should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "signup response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// Login logs in a user and returns the auth response containing tokens.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "login response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// GetAccessToken logs in and returns just the access token.
func (ah *AuthHelper) GetAccessToken(t *testing.T, email, password string) string {
	t.Helper()

	data := ah.Login(t, email, password)
	token, ok := data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	return token
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()
	ctx := context.Background()

	err := ah.server.UserRepo.Create(ctx, user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// CreateAdmin seeds an admin account and returns the user and an access token.
// The fixture password hash corresponds to "password123".
func (ah *AuthHelper) CreateAdmin(t *testing.T) (*models.User, string) {
	t.Helper()

	admin := fixtures.NewUser().AsAdmin().BuildPtr()
	ah.SeedUser(t, admin)

	token := ah.GetAccessToken(t, admin.Email, "password123")
	return admin, token
}

// CreateClient seeds a client account and returns the user and an access token.
func (ah *AuthHelper) CreateClient(t *testing.T) (*models.User, string) {
	t.Helper()

	client := fixtures.NewUser().AsClient().BuildPtr()
	ah.SeedUser(t, client)

	token := ah.GetAccessToken(t, client.Email, "password123")
	return client, token
}

// ContractHelper provides contract-related helpers for API tests.
type ContractHelper struct {
	server *TestServer
}

// NewContractHelper creates a new contract helper.
func NewContractHelper(server *TestServer) *ContractHelper {
	return &ContractHelper{server: server}
}

// SeedContract directly inserts a contract into the database (bypasses API).
func (ch *ContractHelper) SeedContract(t *testing.T, contract *models.Contract) *models.Contract {
	t.Helper()
	ctx := context.Background()

	err := ch.server.ContractRepo.Create(ctx, contract)
	require.NoError(t, err, "failed to seed contract")

	return contract
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data.
// It handles both direct ID fields and nested user objects (for auth responses).
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	// Try direct id field first
	if id, ok := data["id"].(string); ok {
		return id
	}

	// Try nested user object (for auth responses)
	if user, ok := data["user"].(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, user.id)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	idStr := GetIDFromResponse(t, data)
	oid, err := primitive.ObjectIDFromHex(idStr)
	require.NoError(t, err, "failed to parse ObjectID")

	return oid
}
