package location

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"betagym/internal/pkg/response"
)

// Source returns the panel built from the current site content.
type Source interface {
	Panel() *Panel
}

// Handler serves the location panel
type Handler struct {
	source Source
}

// NewHandler creates location handler
func NewHandler(source Source) *Handler {
	return &Handler{source: source}
}

// Get handles GET /api/v1/location
// The map is included unless ?mounted=false is passed.
func (h *Handler) Get(c *gin.Context) {
	mounted := true
	if raw := c.Query("mounted"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "mounted must be a boolean")
			return
		}
		mounted = v
	}

	p := h.source.Panel()
	if p == nil {
		response.Error(c, http.StatusServiceUnavailable, "LOCATION_UNAVAILABLE", "Location is not configured")
		return
	}
	response.Success(c, http.StatusOK, p.View(mounted))
}
