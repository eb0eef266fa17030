package telegram

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// WebhookHandler returns the Gin handler for Telegram webhook updates.
// Telegram retries deliveries that do not return 200 quickly, so the
// update is processed in the background and acknowledged immediately.
func WebhookHandler(h *Handlers) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update tgbotapi.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			h.log.WithError(err).Warn("malformed webhook update")
			c.Status(http.StatusBadRequest)
			return
		}

		go h.HandleUpdate(context.Background(), update)
		c.Status(http.StatusOK)
	}
}
