package handler

import (
	"errors"

	apperrors "boardinghouse/internal/errors"
	"boardinghouse/internal/models"
	"boardinghouse/internal/service"
	"boardinghouse/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles HTTP requests for wallet balances and transactions.
type WalletHandler struct {
	service service.WalletServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(service service.WalletServicer) *WalletHandler {
	return &WalletHandler{service: service}
}

// GetWallet godoc
// @Summary      Get wallet
// @Description  Retrieve a user's wallet balance and transaction history, newest first
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=models.WalletResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id}/wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	wallet, err := h.service.GetWallet(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, wallet)
}

// CreateTransaction godoc
// @Summary      Create wallet transaction
// @Description  Append a Processing transaction and queue it for settlement
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "User ID"
// @Param        request  body      models.CreateTransactionRequest  true  "Transaction details"
// @Success      201      {object}  response.Response{data=models.Transaction}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id}/wallet/transactions [post]
func (h *WalletHandler) CreateTransaction(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tx, err := h.service.CreateTransaction(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrSettlementQueueFull) {
			response.ServiceUnavailable(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, tx)
}

// SettleTransaction godoc
// @Summary      Settle wallet transaction
// @Description  Settle a Processing transaction as Success or Failed
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "User ID"
// @Param        request  body      models.SettleTransactionRequest  true  "Settlement outcome"
// @Success      200      {object}  response.Response{data=models.Transaction}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id}/wallet/transactions [put]
func (h *WalletHandler) SettleTransaction(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.SettleTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tx, err := h.service.SettleTransaction(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) || errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrTransactionSettled) || errors.Is(err, apperrors.ErrInsufficientBalance) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, tx)
}
