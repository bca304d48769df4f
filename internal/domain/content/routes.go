package content

import "github.com/gin-gonic/gin"

// RegisterRoutes registers content routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/content")
	{
		g.GET("", h.GetPage)
		g.GET("/:section", h.GetSection)
	}
}
