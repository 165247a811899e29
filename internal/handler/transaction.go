package handler

import (
	"context"
	"net/http"
	"strconv"

	"escrow-service/internal/model"
	"escrow-service/internal/validation"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// CreateTransaction
// @Summary Create an escrow transaction
// @Description The caller becomes the seller. Amount and payment method are validated against the configured bounds.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transaction body model.CreateTransactionRequest true "Trade details"
// @Success 201 {object} model.TransactionResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Seller not registered"
// @Router /transactions [post]
func (h *Handler) CreateTransaction(c *gin.Context) {
	sellerID, ok := h.mustUser(c)
	if !ok {
		return
	}

	var req model.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if err := validation.Text(req.Title, 1, 100); err != nil {
		h.handleError(c, err)
		return
	}
	if err := validation.Text(req.Description, 1, 500); err != nil {
		h.handleError(c, err)
		return
	}
	amount, err := h.validator.TransactionAmount(req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}
	method, _, err := h.validator.PaymentMethod(req.PaymentMethod)
	if err != nil {
		h.handleError(c, err)
		return
	}

	trans, err := h.escrow.CreateTransaction(c.Request.Context(), model.CreateTransactionInput{
		SellerID:      sellerID,
		Title:         req.Title,
		Description:   req.Description,
		Amount:        amount,
		PaymentMethod: method,
		Metadata:      req.Metadata,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transactionResponse(trans))
}

// GetTransaction
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} model.TransactionResponse
// @Failure 404 {object} model.ErrorResponse "Transaction not found"
// @Router /transactions/{id} [get]
func (h *Handler) GetTransaction(c *gin.Context) {
	id := c.Param("id")
	if err := validation.TransactionID(id); err != nil {
		h.handleError(c, err)
		return
	}

	trans, err := h.escrow.GetTransaction(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionResponse(trans))
}

// ListTransactions
// @Summary List the caller's transactions
// @Description Transactions where the caller is seller or buyer, newest first
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Router /transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	userID, ok := h.mustUser(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)

	transactions, err := h.escrow.ListUserTransactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
		Limit:        limit,
		Offset:       offset,
	})
}

// JoinTransaction
// @Summary Join a transaction as buyer
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} model.TransactionResponse
// @Failure 400 {object} model.ErrorResponse "Seller cannot buy"
// @Failure 409 {object} model.ErrorResponse "Buyer already set or wrong status"
// @Router /transactions/{id}/join [post]
func (h *Handler) JoinTransaction(c *gin.Context) {
	h.transactionAction(c, h.escrow.JoinAsBuyer)
}

// ConfirmPayment
// @Summary Buyer reports the payment as sent
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} model.TransactionResponse
// @Failure 403 {object} model.ErrorResponse "Not the buyer"
// @Failure 409 {object} model.ErrorResponse "Wrong status"
// @Router /transactions/{id}/payment [post]
func (h *Handler) ConfirmPayment(c *gin.Context) {
	h.transactionAction(c, h.escrow.ConfirmPayment)
}

// ConfirmReceipt
// @Summary Seller confirms the funds arrived
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} model.TransactionResponse
// @Failure 403 {object} model.ErrorResponse "Not the seller"
// @Failure 409 {object} model.ErrorResponse "Wrong status"
// @Router /transactions/{id}/receipt [post]
func (h *Handler) ConfirmReceipt(c *gin.Context) {
	h.transactionAction(c, h.escrow.ConfirmReceipt)
}

// CompleteTransaction
// @Summary Buyer releases the escrow
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} model.TransactionResponse
// @Failure 403 {object} model.ErrorResponse "Not the buyer"
// @Failure 409 {object} model.ErrorResponse "Wrong status"
// @Router /transactions/{id}/complete [post]
func (h *Handler) CompleteTransaction(c *gin.Context) {
	h.transactionAction(c, h.escrow.Complete)
}

// CancelTransaction
// @Summary Cancel an unfunded transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} model.TransactionResponse
// @Failure 403 {object} model.ErrorResponse "Not a participant"
// @Failure 409 {object} model.ErrorResponse "Wrong status"
// @Router /transactions/{id}/cancel [post]
func (h *Handler) CancelTransaction(c *gin.Context) {
	h.transactionAction(c, h.escrow.Cancel)
}

type transactionActionFunc func(ctx context.Context, transactionID string, userID int64) (*model.Transaction, error)

func (h *Handler) transactionAction(c *gin.Context, action transactionActionFunc) {
	userID, ok := h.mustUser(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := validation.TransactionID(id); err != nil {
		h.handleError(c, err)
		return
	}

	trans, err := action(c.Request.Context(), id, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionResponse(trans))
}

// ResolveTransactionDispute
// @Summary Resolve the active dispute of a transaction
// @Description Settles through the dispute engine on behalf of the assigned moderator
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param resolution body model.ResolveDisputeRequest true "Outcome"
// @Success 200 {object} model.Dispute
// @Failure 404 {object} model.ErrorResponse "No active dispute"
// @Router /transactions/{id}/resolution [post]
func (h *Handler) ResolveTransactionDispute(c *gin.Context) {
	var req model.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	resolution, err := validation.DisputeResolution(req.ResolutionType)
	if err != nil {
		h.handleError(c, err)
		return
	}

	d, err := h.disputes.ResolveTransactionDispute(c.Request.Context(), c.Param("id"), resolution)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func transactionResponse(t *model.Transaction) model.TransactionResponse {
	return model.TransactionResponse{Transaction: t, Total: t.Total().StringFixed(2)}
}

// mustUser writes a 403 when the caller is not a chat user
func (h *Handler) mustUser(c *gin.Context) (int64, bool) {
	id, ok := callerUserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
			Error: "a user token is required",
			Code:  "FORBIDDEN",
		})
	}
	return id, ok
}

func pagination(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit <= 0 {
		limit = defaultPageLimit
	}
	limit = min(limit, maxPageLimit)

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
