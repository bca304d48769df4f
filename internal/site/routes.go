package site

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the page routes at the root of r.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Index)
	r.POST("/contact", h.Submit)
}
