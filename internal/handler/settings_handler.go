package handler

import (
	"errors"

	apperrors "boardinghouse/internal/errors"
	"boardinghouse/internal/models"
	"boardinghouse/internal/service"
	"boardinghouse/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles HTTP requests for home and profile settings.
type SettingsHandler struct {
	service service.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service service.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetHomeSettings godoc
// @Summary      Get home settings
// @Description  Retrieve a user's dashboard preferences, or the defaults when none are stored
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=models.HomeSettings}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id}/settings/home [get]
func (h *SettingsHandler) GetHomeSettings(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	settings, err := h.service.GetHomeSettings(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, settings)
}

// CreateHomeSettings godoc
// @Summary      Create home settings
// @Description  Create a user's dashboard preferences, layered over the defaults
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "User ID"
// @Param        request  body      models.UpdateHomeSettingsRequest  true  "Settings to store"
// @Success      201      {object}  response.Response{data=models.HomeSettings}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id}/settings/home [post]
func (h *SettingsHandler) CreateHomeSettings(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateHomeSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	settings, err := h.service.CreateHomeSettings(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSettingsAlreadyExist) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, settings)
}

// UpdateHomeSettings godoc
// @Summary      Update home settings
// @Description  Apply partial changes to a user's dashboard preferences
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "User ID"
// @Param        request  body      models.UpdateHomeSettingsRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.HomeSettings}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id}/settings/home [put]
func (h *SettingsHandler) UpdateHomeSettings(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateHomeSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	settings, err := h.service.UpdateHomeSettings(c.Request.Context(), id, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, settings)
}

// GetProfileSettings godoc
// @Summary      Get profile settings
// @Description  Retrieve a user's profile, or the defaults when none are stored
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=models.ProfileSettings}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id}/settings/profile [get]
func (h *SettingsHandler) GetProfileSettings(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	settings, err := h.service.GetProfileSettings(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, settings)
}

// CreateProfileSettings godoc
// @Summary      Create profile settings
// @Description  Create a user's profile, layered over the defaults
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        id       path      string                               true  "User ID"
// @Param        request  body      models.UpdateProfileSettingsRequest  true  "Profile to store"
// @Success      201      {object}  response.Response{data=models.ProfileSettings}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id}/settings/profile [post]
func (h *SettingsHandler) CreateProfileSettings(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProfileSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	settings, err := h.service.CreateProfileSettings(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSettingsAlreadyExist) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, settings)
}

// UpdateProfileSettings godoc
// @Summary      Update profile settings
// @Description  Apply partial changes to a user's profile
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        id       path      string                               true  "User ID"
// @Param        request  body      models.UpdateProfileSettingsRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.ProfileSettings}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id}/settings/profile [put]
func (h *SettingsHandler) UpdateProfileSettings(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProfileSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	settings, err := h.service.UpdateProfileSettings(c.Request.Context(), id, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, settings)
}

// RequestAvatarUpload godoc
// @Summary      Request avatar upload URL
// @Description  Generate a pre-signed upload URL for the user's avatar and record the object key
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "User ID"
// @Param        request  body      models.AvatarUploadRequest  true  "Upload content type"
// @Success      200      {object}  response.Response{data=models.AvatarUploadResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id}/settings/profile/avatar [post]
func (h *SettingsHandler) RequestAvatarUpload(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.AvatarUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	upload, err := h.service.RequestAvatarUpload(c.Request.Context(), id, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, upload)
}

// TenantProfiles godoc
// @Summary      List tenant profiles
// @Description  Retrieve all client accounts paired with their profile settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=models.TenantProfilesResponse}
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /tenant-profiles [get]
func (h *SettingsHandler) TenantProfiles(c *gin.Context) {
	profiles, err := h.service.TenantProfiles(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, profiles)
}
