package handler

import (
	"context"
	"net/http"
	"strings"

	"escrow-service/internal/model"
	"escrow-service/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetWallet
// @Summary The caller's wallet, created on first access
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Wallet
// @Router /wallet [get]
func (h *Handler) GetWallet(c *gin.Context) {
	userID, ok := h.mustUser(c)
	if !ok {
		return
	}
	wallet, err := h.wallets.GetWallet(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// Deposit
// @Summary Credit the caller's wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param operation body model.WalletOperationRequest true "Amount"
// @Success 200 {object} model.Wallet
// @Failure 400 {object} model.ErrorResponse "Invalid amount"
// @Router /wallet/deposit [post]
func (h *Handler) Deposit(c *gin.Context) {
	h.walletOperation(c, h.wallets.Deposit)
}

// Withdraw
// @Summary Debit the caller's wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param operation body model.WalletOperationRequest true "Amount"
// @Success 200 {object} model.Wallet
// @Failure 400 {object} model.ErrorResponse "Invalid amount or insufficient funds"
// @Router /wallet/withdraw [post]
func (h *Handler) Withdraw(c *gin.Context) {
	h.walletOperation(c, h.wallets.Withdraw)
}

type walletOperationFunc func(ctx context.Context, userID int64, amount decimal.Decimal, transactionID, kind string) (*model.Wallet, error)

func (h *Handler) walletOperation(c *gin.Context, op walletOperationFunc) {
	userID, ok := h.mustUser(c)
	if !ok {
		return
	}
	var req model.WalletOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	amount, err := validation.PositiveAmount(req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if req.TransactionID != "" {
		if err := validation.TransactionID(req.TransactionID); err != nil {
			h.handleError(c, err)
			return
		}
	}
	if err := validation.Field("Type", req.Type, validation.MaxWalletKindLen); err != nil {
		h.handleError(c, err)
		return
	}

	wallet, err := op(c.Request.Context(), userID, amount, req.TransactionID, strings.TrimSpace(req.Type))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// ListWalletTransactions
// @Summary The caller's wallet ledger
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} model.WalletTransaction
// @Router /wallet/transactions [get]
func (h *Handler) ListWalletTransactions(c *gin.Context) {
	userID, ok := h.mustUser(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)

	entries, err := h.wallets.ListWalletTransactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
