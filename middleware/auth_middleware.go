package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const SecretHeader = "X-Worker-Secret"

type AuthHandler interface {
	AuthMiddleware() gin.HandlerFunc
}

type authHandler struct {
	sharedSecret string
}

func NewAuthHandler(sharedSecret string) AuthHandler {
	return &authHandler{sharedSecret: sharedSecret}
}

func (h *authHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		if c.GetHeader(SecretHeader) != h.sharedSecret {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}
