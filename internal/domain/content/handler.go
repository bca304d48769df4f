package content

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"betagym/internal/pkg/response"
)

// Source returns the currently active page content.
type Source interface {
	Page() Page
}

// Handler serves section content
type Handler struct {
	source Source
}

// NewHandler creates content handler
func NewHandler(source Source) *Handler {
	return &Handler{source: source}
}

// GetPage handles GET /api/v1/content
func (h *Handler) GetPage(c *gin.Context) {
	response.Success(c, http.StatusOK, h.source.Page())
}

// GetSection handles GET /api/v1/content/:section
func (h *Handler) GetSection(c *gin.Context) {
	section, err := h.source.Page().Section(c.Param("section"))
	if err != nil {
		if errors.Is(err, ErrUnknownSection) {
			response.ErrorWithDetails(c, http.StatusNotFound, "UNKNOWN_SECTION", "Unknown content section", gin.H{
				"sections": SectionNames(),
			})
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, section)
}
