package handler

import (
	"errors"

	apperrors "boardinghouse/internal/errors"
	"boardinghouse/internal/models"
	"boardinghouse/internal/repository"
	"boardinghouse/internal/service"
	"boardinghouse/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContractHandler handles HTTP requests for rental contracts.
type ContractHandler struct {
	service service.ContractServicer
}

// NewContractHandler creates a new ContractHandler.
func NewContractHandler(service service.ContractServicer) *ContractHandler {
	return &ContractHandler{service: service}
}

// objectIDQuery parses an optional query parameter as a MongoDB ObjectID.
// Writes a 400 response and returns false when the value is malformed; an
// absent parameter yields the nil ObjectID.
func objectIDQuery(c *gin.Context, name string) (primitive.ObjectID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return primitive.NilObjectID, true
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}

// CreateContract godoc
// @Summary      Create contract
// @Description  Create a rental contract for a tenant
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateContractRequest  true  "Contract details"
// @Success      201      {object}  response.Response{data=models.Contract}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req models.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	contract, err := h.service.CreateContract(c.Request.Context(), &req)
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

	response.Created(c, contract)
}

// ListContracts godoc
// @Summary      List contracts
// @Description  Retrieve contracts joined with tenant summaries, optionally filtered
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        userId  query     string  false  "Filter by tenant ID"
// @Param        status  query     string  false  "Filter by status"  Enums(draft, pending, active, terminated, completed)
// @Success      200     {object}  response.Response{data=[]models.ContractWithUser}
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	userID, ok := objectIDQuery(c, "userId")
	if !ok {
		return
	}
	status := models.ContractStatus(c.Query("status"))
	if status != "" && !models.ValidContractStatus(status) {
		response.BadRequest(c, "invalid status")
		return
	}

	contracts, err := h.service.ListContracts(c.Request.Context(), repository.ContractFilter{
		UserID: userID,
		Status: status,
	})
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, contracts)
}

// GetContract godoc
// @Summary      Get contract by ID
// @Description  Retrieve a single contract joined with its tenant summary
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {object}  response.Response{data=models.ContractWithUser}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	contract, err := h.service.GetContract(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrContractNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, contract)
}

// UpdateContract godoc
// @Summary      Update contract
// @Description  Update contract fields; the status must be a known value
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Contract ID"
// @Param        request  body      models.UpdateContractRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Contract}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /contracts/{id} [put]
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	contract, err := h.service.UpdateContract(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrContractNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvalidContractStatus) || errors.Is(err, apperrors.ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, contract)
}

// TerminateContract godoc
// @Summary      Terminate contract
// @Description  Mark a contract terminated; the record is retained
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {object}  response.Response{data=models.Contract}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /contracts/{id} [delete]
func (h *ContractHandler) TerminateContract(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	contract, err := h.service.TerminateContract(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrContractNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, contract)
}
