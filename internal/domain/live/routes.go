package live

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the live socket
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/ws/live", h.Serve)
}
