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

// ServiceRequestHandler handles HTTP requests for maintenance tickets.
type ServiceRequestHandler struct {
	service service.ServiceRequestServicer
}

// NewServiceRequestHandler creates a new ServiceRequestHandler.
func NewServiceRequestHandler(service service.ServiceRequestServicer) *ServiceRequestHandler {
	return &ServiceRequestHandler{service: service}
}

// CreateServiceRequest godoc
// @Summary      Open service request
// @Description  Open a maintenance or service ticket for a tenant
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateServiceRequestRequest  true  "Ticket details"
// @Success      201      {object}  response.Response{data=models.ServiceRequest}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /service-requests [post]
func (h *ServiceRequestHandler) CreateServiceRequest(c *gin.Context) {
	var req models.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ticket, err := h.service.CreateServiceRequest(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, ticket)
}

// ListServiceRequests godoc
// @Summary      List service requests
// @Description  Retrieve tickets joined with reporter summaries, optionally filtered
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        userId  query     string  false  "Filter by reporter ID"
// @Param        status  query     string  false  "Filter by status"  Enums(open, in-progress, resolved, cancelled)
// @Success      200     {object}  response.Response{data=[]models.ServiceRequestWithUser}
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /service-requests [get]
func (h *ServiceRequestHandler) ListServiceRequests(c *gin.Context) {
	userID, ok := objectIDQuery(c, "userId")
	if !ok {
		return
	}
	status := models.ServiceRequestStatus(c.Query("status"))
	if status != "" && !models.ValidServiceRequestStatus(status) {
		response.BadRequest(c, "invalid status")
		return
	}

	tickets, err := h.service.ListServiceRequests(c.Request.Context(), repository.ServiceRequestFilter{
		UserID: userID,
		Status: status,
	})
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, tickets)
}

// GetServiceRequest godoc
// @Summary      Get service request by ID
// @Description  Retrieve a single ticket joined with its reporter summary
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Service request ID"
// @Success      200  {object}  response.Response{data=models.ServiceRequestWithUser}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /service-requests/{id} [get]
func (h *ServiceRequestHandler) GetServiceRequest(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	ticket, err := h.service.GetServiceRequest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrServiceRequestNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, ticket)
}

// UpdateServiceRequest godoc
// @Summary      Update service request
// @Description  Update ticket fields; the status must be a known value
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        id       path      string                              true  "Service request ID"
// @Param        request  body      models.UpdateServiceRequestRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.ServiceRequest}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /service-requests/{id} [put]
func (h *ServiceRequestHandler) UpdateServiceRequest(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ticket, err := h.service.UpdateServiceRequest(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrServiceRequestNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvalidServiceRequestStatus) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, ticket)
}

// DeleteServiceRequest godoc
// @Summary      Delete service request
// @Description  Permanently remove a ticket
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Service request ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /service-requests/{id} [delete]
func (h *ServiceRequestHandler) DeleteServiceRequest(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteServiceRequest(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrServiceRequestNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "service request deleted"})
}
