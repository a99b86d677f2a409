package handler

import (
	"net/http"
	"nextfund-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// StartVideo
// @Summary Start watching a video
// @Description Opens the completion record for a video task, or returns the existing one
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Video task ID"
// @Success 200 {object} model.StartVideoResponse
// @Failure 403 {object} model.ErrorResponse "VIP level required"
// @Failure 404 {object} model.ErrorResponse "Task not found"
// @Failure 409 {object} model.ErrorResponse "Task inactive"
// @Router /videos/{id}/start [post]
func (h *Handler) StartVideo(c *gin.Context) {
	userID, _ := userIDFrom(c)

	taskID, ok := pathID(c, "id")
	if !ok {
		h.badRequest(c, "video task id must be a positive integer")
		return
	}

	resp, err := h.rewardService.StartVideo(c.Request.Context(), userID, taskID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProgress
// @Summary Report watch progress
// @Description Persists the watch time reported by the player. Watch time never decreases.
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Completion ID"
// @Param progress body model.ProgressRequest true "Watch progress"
// @Success 200 {object} model.StartVideoResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Completion not found"
// @Router /completions/{id}/progress [put]
func (h *Handler) UpdateProgress(c *gin.Context) {
	userID, _ := userIDFrom(c)

	completionID, ok := pathID(c, "id")
	if !ok {
		h.badRequest(c, "completion id must be a positive integer")
		return
	}

	var req model.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.rewardService.UpdateProgress(c.Request.Context(), userID, completionID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ClaimCompletion
// @Summary Claim a video reward
// @Description Credits the reward for a finished video. Repeated claims return already_claimed=true without crediting again.
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Completion ID"
// @Param claim body model.ClaimRequest true "Claim details"
// @Success 200 {object} model.ClaimResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 403 {object} model.ErrorResponse "Daily limit exceeded"
// @Failure 404 {object} model.ErrorResponse "Completion not found"
// @Failure 422 {object} model.ErrorResponse "Watch time or quiz requirement not met"
// @Router /completions/{id}/claim [post]
func (h *Handler) ClaimCompletion(c *gin.Context) {
	userID, _ := userIDFrom(c)

	completionID, ok := pathID(c, "id")
	if !ok {
		h.badRequest(c, "completion id must be a positive integer")
		return
	}

	var req model.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.rewardService.ClaimCompletion(c.Request.Context(), userID, completionID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
