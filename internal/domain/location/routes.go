package location

import "github.com/gin-gonic/gin"

// RegisterRoutes registers location routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/location", h.Get)
}
