package pricing

import "github.com/gin-gonic/gin"

// RegisterPageRoutes registers the HTML page and CTA endpoints
func RegisterPageRoutes(r gin.IRoutes, h *Handler) {
	r.GET("/pricing", h.Page)
	r.GET("/pricing/:section", h.Page)
	r.POST("/pricing/:section/cta/:field", h.Activate)
}

// RegisterPublicRoutes registers the JSON API (no auth required)
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	p := r.Group("/pricing")
	{
		p.GET("/fields", h.Fields)
		p.GET("/sections/:section", h.GetSection)
		p.POST("/preview", h.Preview)
	}
}
