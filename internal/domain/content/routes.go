package content

import "github.com/gin-gonic/gin"

// RegisterEditorRoutes registers the content API. r must already require editor auth.
func RegisterEditorRoutes(r *gin.RouterGroup, h *Handler) {
	sections := r.Group("/editor/sections")
	{
		sections.GET("", h.ListSections)
		sections.GET("/:section", h.GetSection)
		sections.PUT("/:section/fields", h.UpdateFields)
		sections.DELETE("/:section/fields/:field", h.RevertField)
		sections.GET("/:section/ws", h.Preview)
	}
}
