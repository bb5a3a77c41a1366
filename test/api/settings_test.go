//go:build api

package api

import (
	"net/http"
	"testing"

	"boardinghouse/internal/models"
	"boardinghouse/test/api/testserver"
	"boardinghouse/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHomeSettings tests the /api/v1/users/:id/settings/home endpoints.
func TestHomeSettings(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	client, clientToken := authHelper.CreateClient(t)

	basePath := "/api/v1/users/" + client.ID.Hex() + "/settings/home"

	t.Run("get returns defaults before any write", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, basePath, clientToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "light", resp.Data["theme"])
		assert.Equal(t, "en", resp.Data["language"])
	})

	t.Run("create persists explicit settings", func(t *testing.T) {
		req := map[string]interface{}{"theme": "dark", "language": "fil"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, basePath, clientToken, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "dark", resp.Data["theme"])
	})

	t.Run("create conflicts once settings exist", func(t *testing.T) {
		req := map[string]interface{}{"theme": "light"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, basePath, clientToken, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("update merges partial changes", func(t *testing.T) {
		theme := "auto"
		req := models.UpdateHomeSettingsRequest{Theme: &theme}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, basePath, clientToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "auto", resp.Data["theme"])
		assert.Equal(t, "fil", resp.Data["language"], "untouched fields survive the update")
	})

	t.Run("error - unknown theme rejected by binding", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, basePath, clientToken,
			map[string]string{"theme": "neon"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - client cannot touch another user's settings", func(t *testing.T) {
		other, _ := authHelper.CreateClient(t)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/users/"+other.ID.Hex()+"/settings/home", clientToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestProfileSettings tests the /api/v1/users/:id/settings/profile endpoints.
func TestProfileSettings(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	client, clientToken := authHelper.CreateClient(t)

	basePath := "/api/v1/users/" + client.ID.Hex() + "/settings/profile"

	t.Run("get returns defaults before any write", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, basePath, clientToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		prefs, ok := resp.Data["preferences"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "PHP", prefs["currency"])
	})

	t.Run("create then update", func(t *testing.T) {
		createReq := map[string]interface{}{"displayName": "Juan D.", "bio": "Tenant since 2023"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, basePath, clientToken, createReq)
		require.Equal(t, http.StatusCreated, w.Code)

		phone := "+63 912 345 6789"
		updateReq := models.UpdateProfileSettingsRequest{Phone: &phone}

		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, basePath, clientToken, updateReq)
		assert.Equal(t, http.StatusOK, w2.Code)

		resp := testutil.ParseAPIResponse(t, w2)
		assert.Equal(t, "Juan D.", resp.Data["displayName"])
		assert.Equal(t, phone, resp.Data["phone"])
	})
}

// TestAvatarUpload tests the POST /api/v1/users/:id/settings/profile/avatar endpoint.
func TestAvatarUpload(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	client, clientToken := authHelper.CreateClient(t)

	path := "/api/v1/users/" + client.ID.Hex() + "/settings/profile/avatar"

	t.Run("success - returns presigned URL and key", func(t *testing.T) {
		req := models.AvatarUploadRequest{ContentType: "image/png"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, path, clientToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)

		uploadURL, ok := resp.Data["uploadUrl"].(string)
		require.True(t, ok)
		assert.NotEmpty(t, uploadURL)

		avatarKey, ok := resp.Data["avatarKey"].(string)
		require.True(t, ok)
		assert.Contains(t, avatarKey, "avatars/"+client.ID.Hex()+"/")

		// The avatar key is stored and surfaces as a fresh avatarUrl on reads.
		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/users/"+client.ID.Hex()+"/settings/profile", clientToken, nil)
		require.Equal(t, http.StatusOK, w2.Code)

		resp2 := testutil.ParseAPIResponse(t, w2)
		assert.NotEmpty(t, resp2.Data["avatarUrl"])
		_, rawKeyExposed := resp2.Data["avatar"]
		assert.False(t, rawKeyExposed, "the raw object key never leaves the API")
	})

	t.Run("error - unsupported content type", func(t *testing.T) {
		req := models.AvatarUploadRequest{ContentType: "image/gif"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, path, clientToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestTenantProfiles tests the GET /api/v1/tenant-profiles endpoint.
func TestTenantProfiles(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, adminToken := authHelper.CreateAdmin(t)
	client, clientToken := authHelper.CreateClient(t)

	// Give the client a stored profile.
	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost,
		"/api/v1/users/"+client.ID.Hex()+"/settings/profile", clientToken,
		map[string]interface{}{"displayName": "Juan D."})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("success - bundles clients with their profiles", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/tenant-profiles", adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)

		users, ok := resp.Data["users"].([]interface{})
		require.True(t, ok)
		assert.Len(t, users, 1, "only client accounts appear")

		profiles, ok := resp.Data["profiles"].([]interface{})
		require.True(t, ok)
		assert.Len(t, profiles, 1)
	})

	t.Run("error - clients cannot view tenant profiles", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/tenant-profiles", clientToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
