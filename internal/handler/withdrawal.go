package handler

import (
	"net/http"
	"nextfund-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// RequestWithdrawal
// @Summary Request a withdrawal
// @Description Debits the balance and queues a PIX payout. Retrying with the same request_id returns the original result.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param withdrawal body model.WithdrawalRequest true "Withdrawal details"
// @Success 201 {object} model.WithdrawalResponse
// @Failure 400 {object} model.ErrorResponse "Below minimum or insufficient balance"
// @Failure 403 {object} model.ErrorResponse "VIP level required"
// @Router /withdrawals [post]
func (h *Handler) RequestWithdrawal(c *gin.Context) {
	userID, _ := userIDFrom(c)

	var req model.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.withdrawalService.RequestWithdrawal(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
