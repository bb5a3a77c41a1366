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

// TestSignup tests the POST /api/v1/auth/signup endpoint.
func TestSignup(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	t.Run("success - creates client account and returns tokens", func(t *testing.T) {
		req := models.SignupRequest{
			Email:     "tenant@example.com",
			Password:  "password123",
			FirstName: "Juan",
			LastName:  "Dela Cruz",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/signup", req)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Data)

		accessToken, ok := resp.Data["accessToken"].(string)
		assert.True(t, ok, "accessToken should be a string")
		assert.NotEmpty(t, accessToken)

		refreshToken, ok := resp.Data["refreshToken"].(string)
		assert.True(t, ok, "refreshToken should be a string")
		assert.NotEmpty(t, refreshToken)

		expiresIn, ok := resp.Data["expiresIn"].(float64)
		assert.True(t, ok, "expiresIn should be a number")
		assert.Greater(t, expiresIn, float64(0))

		user, ok := resp.Data["user"].(map[string]interface{})
		require.True(t, ok, "user should be an object")
		assert.Equal(t, "tenant@example.com", user["email"])
		assert.Equal(t, models.RoleClient, user["role"], "signup always yields a client account")
		assert.Equal(t, true, user["isActive"])
		assert.NotEmpty(t, user["id"])
	})

	t.Run("error - missing required fields", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		req := map[string]string{
			"email": "tenant@example.com",
			// missing password
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/signup", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.False(t, resp.Success)
	})

	t.Run("error - invalid email format", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		req := models.SignupRequest{
			Email:    "invalid-email",
			Password: "password123",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/signup", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - password too short", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		req := models.SignupRequest{
			Email:    "tenant@example.com",
			Password: "123", // too short, min is 6
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/signup", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - duplicate email", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		req := models.SignupRequest{
			Email:    "duplicate@example.com",
			Password: "password123",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/signup", req)
		require.Equal(t, http.StatusCreated, w.Code)

		req2 := models.SignupRequest{
			Email:    "duplicate@example.com",
			Password: "password456",
		}

		w2 := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/signup", req2)

		assert.Equal(t, http.StatusConflict, w2.Code)

		resp := testutil.ParseAPIResponse(t, w2)
		assert.False(t, resp.Success)
	})
}

// TestLogin tests the POST /api/v1/auth/login endpoint.
func TestLogin(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	authHelper.SignupUser(t, "logintest@example.com", "password123")

	t.Run("success - returns tokens for valid credentials", func(t *testing.T) {
		req := models.LoginRequest{
			Email:    "logintest@example.com",
			Password: "password123",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login", req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Data)

		accessToken, ok := resp.Data["accessToken"].(string)
		assert.True(t, ok)
		assert.NotEmpty(t, accessToken)

		refreshToken, ok := resp.Data["refreshToken"].(string)
		assert.True(t, ok)
		assert.NotEmpty(t, refreshToken)

		user, ok := resp.Data["user"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "logintest@example.com", user["email"])
	})

	t.Run("error - unknown email and wrong password are indistinguishable", func(t *testing.T) {
		unknownEmail := models.LoginRequest{
			Email:    "nonexistent@example.com",
			Password: "password123",
		}
		wrongPassword := models.LoginRequest{
			Email:    "logintest@example.com",
			Password: "wrongpassword",
		}

		w1 := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login", unknownEmail)
		w2 := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login", wrongPassword)

		assert.Equal(t, http.StatusUnauthorized, w1.Code)
		assert.Equal(t, http.StatusUnauthorized, w2.Code)

		resp1 := testutil.ParseAPIResponse(t, w1)
		resp2 := testutil.ParseAPIResponse(t, w2)
		assert.False(t, resp1.Success)
		assert.False(t, resp2.Success)
		assert.NotEmpty(t, resp1.Error)
		assert.Equal(t, resp1.Error, resp2.Error, "both failures must return the same error message")
	})

	t.Run("error - deactivated account", func(t *testing.T) {
		inactive := fixtures.NewUser().Inactive().BuildPtr()
		authHelper.SeedUser(t, inactive)

		req := models.LoginRequest{
			Email:    inactive.Email,
			Password: "password123",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login", req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// TestRefresh tests the POST /api/v1/auth/refresh endpoint.
func TestRefresh(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	authHelper.SignupUser(t, "refreshtest@example.com", "password123")
	loginData := authHelper.Login(t, "refreshtest@example.com", "password123")

	refreshToken, ok := loginData["refreshToken"].(string)
	require.True(t, ok, "refreshToken should be a string")

	t.Run("success - returns new access token", func(t *testing.T) {
		req := models.RefreshRequest{RefreshToken: refreshToken}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/refresh", req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)

		accessToken, ok := resp.Data["accessToken"].(string)
		assert.True(t, ok)
		assert.NotEmpty(t, accessToken)
	})

	t.Run("refresh token stays valid across refreshes", func(t *testing.T) {
		// No rotation: the same refresh token works repeatedly until revoked.
		req := models.RefreshRequest{RefreshToken: refreshToken}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/refresh", req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error - unknown refresh token", func(t *testing.T) {
		req := models.RefreshRequest{RefreshToken: "rf_doesnotexist"}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/refresh", req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("error - missing refresh token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/refresh", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestLogout tests the POST /api/v1/auth/logout endpoint.
func TestLogout(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	authHelper.SignupUser(t, "logouttest@example.com", "password123")
	loginData := authHelper.Login(t, "logouttest@example.com", "password123")

	accessToken, ok := loginData["accessToken"].(string)
	require.True(t, ok)
	refreshToken, ok := loginData["refreshToken"].(string)
	require.True(t, ok)

	t.Run("success - revokes refresh token", func(t *testing.T) {
		req := models.LogoutRequest{RefreshToken: refreshToken}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/logout", accessToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		// The revoked token can no longer be used to refresh.
		refreshReq := models.RefreshRequest{RefreshToken: refreshToken}
		w2 := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/refresh", refreshReq)
		assert.Equal(t, http.StatusUnauthorized, w2.Code)
	})

	t.Run("error - missing bearer token", func(t *testing.T) {
		req := models.LogoutRequest{RefreshToken: refreshToken}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/logout", req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
