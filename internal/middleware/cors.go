package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS lets the content editing tool, served from another origin, call the
// editor API. Only the configured origins are reflected, with credentials.
func CORS(origins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}

	return func(c *gin.Context) {
		h := c.Writer.Header()
		if origin := c.GetHeader("Origin"); origin != "" {
			h.Add("Vary", "Origin")
			if _, ok := allowed[origin]; ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Expose-Headers", HeaderRequestID)
			}
		}

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		// preflight ends here, before auth runs
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+HeaderRequestID)
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Max-Age", "600")
		c.AbortWithStatus(http.StatusNoContent)
	}
}
