package handler

import (
	"net/http"
	"nextfund-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateDeposit
// @Summary Create a PIX deposit
// @Description Creates a pending deposit and the PIX charge the user pays
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deposit body model.DepositRequest true "Deposit amount"
// @Success 201 {object} model.DepositResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 502 {object} model.ErrorResponse "Gateway error"
// @Router /deposits [post]
func (h *Handler) CreateDeposit(c *gin.Context) {
	userID, _ := userIDFrom(c)

	var req model.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.paymentService.CreateDeposit(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// PixWebhook
// @Summary PIX payment callback
// @Description Receives payment confirmations from the PIX provider. Accepts JSON or form bodies.
// @Tags payments
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param X-Webhook-Token header string false "Shared webhook secret"
// @Param payload body model.WebhookPayload true "Provider payload"
// @Success 200 {object} model.WebhookResponse
// @Failure 400 {object} model.ErrorResponse "Invalid payload"
// @Failure 404 {object} model.ErrorResponse "Unknown transaction"
// @Failure 500 {object} model.ErrorResponse "Internal error"
// @Router /webhooks/pix [post]
func (h *Handler) PixWebhook(c *gin.Context) {
	var payload model.WebhookPayload
	if err := c.ShouldBind(&payload); err != nil {
		h.handleError(c, model.ErrInvalidWebhook)
		return
	}

	resp, err := h.paymentService.HandleWebhook(c.Request.Context(), &payload)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
