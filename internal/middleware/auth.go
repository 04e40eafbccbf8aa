package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pricingsite/internal/pkg/jwt"
	"pricingsite/internal/pkg/response"
)

// Context keys set by JWTAuth
const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// JWTAuth requires a valid "Authorization: Bearer <token>" header.
// Browsers cannot set headers on websocket upgrades, so the token is also accepted from ?access_token=.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, code, msg := bearerToken(c)
		if tokenStr == "" {
			response.Abort(c, http.StatusUnauthorized, code, msg)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (token, code, message string) {
	h := c.GetHeader("Authorization")
	if h == "" {
		if q := strings.TrimSpace(c.Query("access_token")); q != "" {
			return q, "", ""
		}
		return "", "AUTH_HEADER_MISSING", "Missing Authorization header"
	}
	if !strings.HasPrefix(h, "Bearer ") {
		return "", "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'"
	}
	token = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if token == "" {
		return "", "INVALID_AUTH_FORMAT", "Empty token"
	}
	return token, "", ""
}
