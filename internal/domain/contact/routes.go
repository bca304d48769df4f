package contact

import "github.com/gin-gonic/gin"

// RegisterRoutes registers contact routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/contact")
	{
		g.POST("", h.Submit)
		g.GET("/state", h.State)
	}
}
