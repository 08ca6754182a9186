package middleware

import (
	"log/slog"
	"net/http"

	"manuara-reservas/internal/pkg/apikey"

	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "X-Api-Key"

// APIKeyMiddleware gates the external availability endpoint. The response
// body is the same for a missing and a wrong key so the gate leaks
// nothing, and rejection happens before any store access.
type APIKeyMiddleware struct {
	verifier *apikey.Verifier
}

func NewAPIKeyMiddleware(verifier *apikey.Verifier) *APIKeyMiddleware {
	return &APIKeyMiddleware{verifier: verifier}
}

func (m *APIKeyMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(apiKeyHeader)
		if err := m.verifier.Verify(key); err != nil {
			slog.Warn("external API key rejected", "client_ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
