package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// userIDKey is the context key the user middleware stores the caller under.
const userIDKey = "user_id"

// requireUser resolves the calling user from the X-User-ID header. Requests
// without a parseable positive id are rejected before any handler runs.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid X-User-ID header"})
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

// userID returns the caller id stored by requireUser.
func userID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}
