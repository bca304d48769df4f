package gallery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"betagym/internal/metrics"
	"betagym/internal/pkg/response"
	"betagym/internal/pkg/validator"
)

// Provider hands out the gallery owned by a visitor session.
type Provider interface {
	Gallery(sessionID string) (*Gallery, error)
}

// Handler handles gallery HTTP requests
type Handler struct {
	items    []Item
	visitors Provider
	metrics  *metrics.Metrics
}

// NewHandler creates gallery handler
func NewHandler(items []Item, visitors Provider, m *metrics.Metrics) *Handler {
	return &Handler{
		items:    items,
		visitors: visitors,
		metrics:  m,
	}
}

// List handles GET /api/v1/gallery
// @Summary List gallery items
// @Tags Gallery
// @Produce json
// @Param category query string false "Filter" Enums(all, facilities, equipment, classes, transformations)
// @Success 200 {object} response.Envelope{data=ListResponse}
// @Failure 400 {object} response.Envelope
// @Router /gallery [get]
func (h *Handler) List(c *gin.Context) {
	category, err := ParseCategory(c.Query("category"))
	if err != nil {
		response.CustomError(c, http.StatusBadRequest, "UNKNOWN_CATEGORY", "Unknown gallery category")
		return
	}

	items := Filter(h.items, category)
	response.Success(c, http.StatusOK, ListResponse{
		Category: category,
		Items:    items,
		Empty:    len(items) == 0,
	})
}

// Categories handles GET /api/v1/gallery/categories
func (h *Handler) Categories(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"categories": Options(h.items)})
}

// State handles GET /api/v1/gallery/state
func (h *Handler) State(c *gin.Context) {
	g, ok := h.visitorGallery(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, g.Snapshot())
}

// Select handles POST /api/v1/gallery/filter
// @Summary Select gallery filter for the current visitor
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body SelectCategoryRequest true "Category"
// @Success 200 {object} response.Envelope{data=State}
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /gallery/filter [post]
func (h *Handler) Select(c *gin.Context) {
	var req SelectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	category, err := ParseCategory(req.Category)
	if err != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "UNKNOWN_CATEGORY", "Unknown gallery category")
		return
	}

	g, ok := h.visitorGallery(c)
	if !ok {
		return
	}

	if err := g.SelectCategory(category); err != nil {
		if errors.Is(err, ErrGalleryClosed) {
			response.CustomError(c, http.StatusGone, "SESSION_CLOSED", "Session expired, reload the page")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	h.metrics.ObserveSelection(category.String())

	response.Success(c, http.StatusOK, g.Snapshot())
}

func (h *Handler) visitorGallery(c *gin.Context) (*Gallery, bool) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		response.Error(c, http.StatusUnauthorized, "NO_SESSION", "Session cookie required")
		return nil, false
	}
	g, err := h.visitors.Gallery(sessionID)
	if err != nil {
		response.CustomError(c, http.StatusServiceUnavailable, "SESSION_UNAVAILABLE", err.Error())
		return nil, false
	}
	return g, true
}
