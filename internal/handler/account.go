package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetBalance
// @Summary Get balance
// @Description Returns the balance, tier and daily usage of the caller
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /me/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID, _ := userIDFrom(c)

	resp, err := h.accountService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLedger
// @Summary Get ledger entries
// @Description Returns the caller's ledger entries, newest first
// @Tags account
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.LedgerListResponse
// @Router /me/ledger [get]
func (h *Handler) GetLedger(c *gin.Context) {
	userID, _ := userIDFrom(c)
	limit, offset := pagination(c)

	resp, err := h.accountService.GetLedger(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyLedger
// @Summary Verify balance against ledger
// @Description Compares the stored balance with the sum of ledger deltas
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.LedgerVerification
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /me/ledger/verify [get]
func (h *Handler) VerifyLedger(c *gin.Context) {
	userID, _ := userIDFrom(c)

	resp, err := h.accountService.VerifyBalance(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTransactions
// @Summary Get deposits and withdrawals
// @Tags account
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Router /me/transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	userID, _ := userIDFrom(c)
	limit, offset := pagination(c)

	resp, err := h.accountService.GetTransactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
