package editor

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the login endpoint
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/editor/login", h.Login)
}
