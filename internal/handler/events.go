package handler

import (
	"io"
	"net/http"
	"nextfund-ledger/internal/model"
	"time"

	"github.com/gin-gonic/gin"
)

const keepAliveInterval = 25 * time.Second

// StreamEvents
// @Summary Stream notifications
// @Description Server-sent events with balance notifications of the caller
// @Tags account
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {object} model.Notification
// @Failure 503 {object} model.ErrorResponse "Notifications unavailable"
// @Router /me/events [get]
func (h *Handler) StreamEvents(c *gin.Context) {
	userID, _ := userIDFrom(c)
	ctx := c.Request.Context()

	notifications, err := h.subscriber.Subscribe(ctx, userID)
	if err != nil {
		h.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to subscribe to notifications")
		c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{
			Error: "notifications unavailable",
			Code:  "NOTIFICATIONS_UNAVAILABLE",
		})
		return
	}

	// The stream outlives the server write timeout
	if err := http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{}); err != nil {
		h.logger.Debug().Err(err).Msg("write deadline not adjustable")
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case n, ok := <-notifications:
			if !ok {
				return false
			}
			c.SSEvent(string(n.Kind), n)
			return true
		case <-keepAlive.C:
			c.SSEvent("ping", "")
			return true
		}
	})
}
