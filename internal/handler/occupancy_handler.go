package handler

import (
	"errors"

	apperrors "boardinghouse/internal/errors"
	"boardinghouse/internal/models"
	"boardinghouse/internal/repository"
	"boardinghouse/internal/service"
	"boardinghouse/pkg/response"

	"github.com/gin-gonic/gin"
)

// OccupancyHandler handles HTTP requests for occupancy records and reservations.
type OccupancyHandler struct {
	service service.OccupancyServicer
}

// NewOccupancyHandler creates a new OccupancyHandler.
func NewOccupancyHandler(service service.OccupancyServicer) *OccupancyHandler {
	return &OccupancyHandler{service: service}
}

// CreateOccupancy godoc
// @Summary      Create occupancy record
// @Description  Create an occupancy record for a tenant's stay
// @Tags         occupancy
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateOccupancyRequest  true  "Occupancy details"
// @Success      201      {object}  response.Response{data=models.OccupancyRecord}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /occupancy [post]
func (h *OccupancyHandler) CreateOccupancy(c *gin.Context) {
	var req models.CreateOccupancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	record, err := h.service.CreateOccupancy(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvalidOccupancyStatus) || errors.Is(err, apperrors.ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, record)
}

// CreateReservation godoc
// @Summary      Reserve a room
// @Description  Create a planned occupancy record through the client portal shortcut
// @Tags         occupancy
// @Accept       json
// @Produce      json
// @Param        request  body      models.ReservationRequest  true  "Reservation details"
// @Success      201      {object}  response.Response{data=models.OccupancyRecord}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /reservations [post]
func (h *OccupancyHandler) CreateReservation(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	record, err := h.service.CreateReservation(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, record)
}

// ListOccupancies godoc
// @Summary      List occupancy records
// @Description  Retrieve occupancy records joined with tenant summaries, optionally filtered
// @Tags         occupancy
// @Accept       json
// @Produce      json
// @Param        userId  query     string  false  "Filter by tenant ID"
// @Param        status  query     string  false  "Filter by status"  Enums(planned, checked-in, checked-out, vacant, overdue)
// @Success      200     {object}  response.Response{data=[]models.OccupancyWithUser}
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /occupancy [get]
func (h *OccupancyHandler) ListOccupancies(c *gin.Context) {
	userID, ok := objectIDQuery(c, "userId")
	if !ok {
		return
	}
	status := models.OccupancyStatus(c.Query("status"))
	if status != "" && !models.ValidOccupancyStatus(status) {
		response.BadRequest(c, "invalid status")
		return
	}

	records, err := h.service.ListOccupancies(c.Request.Context(), repository.OccupancyFilter{
		UserID: userID,
		Status: status,
	})
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, records)
}

// GetOccupancy godoc
// @Summary      Get occupancy record by ID
// @Description  Retrieve a single occupancy record joined with its tenant summary
// @Tags         occupancy
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Occupancy record ID"
// @Success      200  {object}  response.Response{data=models.OccupancyWithUser}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /occupancy/{id} [get]
func (h *OccupancyHandler) GetOccupancy(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.service.GetOccupancy(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOccupancyNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, record)
}

// UpdateOccupancy godoc
// @Summary      Update occupancy record
// @Description  Update occupancy fields; the status must be a known value
// @Tags         occupancy
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Occupancy record ID"
// @Param        request  body      models.UpdateOccupancyRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.OccupancyRecord}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /occupancy/{id} [put]
func (h *OccupancyHandler) UpdateOccupancy(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateOccupancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	record, err := h.service.UpdateOccupancy(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOccupancyNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvalidOccupancyStatus) || errors.Is(err, apperrors.ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, record)
}

// DeleteOccupancy godoc
// @Summary      Delete occupancy record
// @Description  Permanently remove an occupancy record
// @Tags         occupancy
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Occupancy record ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /occupancy/{id} [delete]
func (h *OccupancyHandler) DeleteOccupancy(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteOccupancy(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrOccupancyNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "occupancy record deleted"})
}
