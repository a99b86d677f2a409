package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RunDailyReset
// @Summary Run the daily reset
// @Description Zeroes daily task counters and expires lapsed subscriptions. Safe to run more than once.
// @Tags jobs
// @Produce json
// @Param X-Job-Token header string true "Scheduler token"
// @Success 200 {object} model.JobResponse
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Router /internal/jobs/daily-reset [post]
func (h *Handler) RunDailyReset(c *gin.Context) {
	resp, err := h.jobService.ResetDailyLimits(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
