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

// InvoiceHandler handles HTTP requests for billing invoices.
type InvoiceHandler struct {
	service service.InvoiceServicer
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(service service.InvoiceServicer) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// CreateInvoice godoc
// @Summary      Create invoice
// @Description  Create a billing invoice for a tenant, optionally tied to a contract
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateInvoiceRequest  true  "Invoice details"
// @Success      201      {object}  response.Response{data=models.BillingInvoice}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req models.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.service.CreateInvoice(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) || errors.Is(err, apperrors.ErrContractNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvoiceNumberTaken) {
			response.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvalidInvoiceStatus) || errors.Is(err, apperrors.ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, invoice)
}

// ListInvoices godoc
// @Summary      List invoices
// @Description  Retrieve invoices joined with tenant and contract summaries, optionally filtered
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        userId  query     string  false  "Filter by tenant ID"
// @Param        status  query     string  false  "Filter by status"  Enums(draft, issued, paid, overdue, void)
// @Success      200     {object}  response.Response{data=[]models.InvoiceWithDetails}
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	userID, ok := objectIDQuery(c, "userId")
	if !ok {
		return
	}
	status := models.InvoiceStatus(c.Query("status"))
	if status != "" && !models.ValidInvoiceStatus(status) {
		response.BadRequest(c, "invalid status")
		return
	}

	invoices, err := h.service.ListInvoices(c.Request.Context(), repository.InvoiceFilter{
		UserID: userID,
		Status: status,
	})
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, invoices)
}

// GetInvoice godoc
// @Summary      Get invoice by ID
// @Description  Retrieve a single invoice joined with tenant and contract summaries
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  response.Response{data=models.InvoiceWithDetails}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	invoice, err := h.service.GetInvoice(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvoiceNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, invoice)
}

// UpdateInvoice godoc
// @Summary      Update invoice
// @Description  Update invoice fields; replacing items recomputes the amount due
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Invoice ID"
// @Param        request  body      models.UpdateInvoiceRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.BillingInvoice}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.service.UpdateInvoice(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvoiceNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvoiceNumberTaken) {
			response.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvalidInvoiceStatus) || errors.Is(err, apperrors.ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, invoice)
}

// VoidInvoice godoc
// @Summary      Void invoice
// @Description  Mark an invoice void; the record is retained for auditability
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  response.Response{data=models.BillingInvoice}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) VoidInvoice(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	invoice, err := h.service.VoidInvoice(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvoiceNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, invoice)
}
