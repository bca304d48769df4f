package gallery

import "github.com/gin-gonic/gin"

// RegisterRoutes registers gallery routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/gallery")
	{
		g.GET("", h.List)
		g.GET("/categories", h.Categories)
		g.GET("/state", h.State)
		g.POST("/filter", h.Select)
	}
}
