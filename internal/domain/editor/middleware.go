package editor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pricingsite/internal/middleware"
	"pricingsite/internal/pkg/response"
)

// RequireEditor admits requests whose token belongs to an editor. It runs after middleware.JWTAuth.
func RequireEditor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(middleware.ContextUsername) == "" {
			response.Abort(c, http.StatusUnauthorized, "EDITOR_AUTH_REQUIRED", "Editor token required")
			return
		}
		if c.GetString(middleware.ContextRole) != Role {
			response.Abort(c, http.StatusForbidden, "NOT_AN_EDITOR", "Token does not grant content editing")
			return
		}
		c.Next()
	}
}
