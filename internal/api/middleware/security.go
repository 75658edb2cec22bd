package middleware

import "github.com/gin-gonic/gin"

const contentSecurityPolicy = "default-src 'self'; script-src 'self' https://trusted-cdn.com; " +
	"img-src 'self' https://trusted-cdn.com; style-src 'self' https://trusted-cdn.com"

// SecurityHeaders sets the cross-origin isolation and CSP headers on every response.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Cross-Origin-Opener-Policy", "same-origin")
		h.Set("Cross-Origin-Embedder-Policy", "require-corp")
		h.Set("Cross-Origin-Resource-Policy", "same-origin")
		h.Set("Content-Security-Policy", contentSecurityPolicy)
		h.Set("X-Content-Type-Options", "nosniff")
		c.Next()
	}
}
