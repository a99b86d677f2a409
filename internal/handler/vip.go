package handler

import (
	"net/http"
	"nextfund-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// ListPlans
// @Summary List VIP plans
// @Tags vip
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.VipPlan
// @Router /vip/plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.vipService.ListPlans(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if plans == nil {
		plans = []*model.VipPlan{}
	}
	c.JSON(http.StatusOK, plans)
}

// PurchasePlan
// @Summary Purchase a VIP plan
// @Description Pays for a plan from the balance. The new subscription replaces the active one.
// @Tags vip
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param purchase body model.VipPurchaseRequest true "Plan purchase"
// @Success 201 {object} model.VipPurchaseResponse
// @Failure 400 {object} model.ErrorResponse "Insufficient balance"
// @Failure 404 {object} model.ErrorResponse "Plan not found"
// @Router /vip/purchase [post]
func (h *Handler) PurchasePlan(c *gin.Context) {
	userID, _ := userIDFrom(c)

	var req model.VipPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.vipService.PurchasePlan(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
