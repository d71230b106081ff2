package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"dotask-bot/pkg/response"
	pkgTelegram "dotask-bot/pkg/telegram"
)

// TelegramSecret rejects webhook calls whose secret header does not match.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.webhookSecret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(pkgTelegram.SecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.webhookSecret)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: rejected request from %s", clientIP(c))
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
