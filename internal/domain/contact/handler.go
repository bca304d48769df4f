package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"betagym/internal/metrics"
	"betagym/internal/pkg/response"
)

// Provider hands out the form owned by a visitor session.
type Provider interface {
	Form(sessionID string) (*Form, error)
}

// Handler handles contact form HTTP requests
type Handler struct {
	visitors Provider
	metrics  *metrics.Metrics
}

// NewHandler creates contact handler
func NewHandler(visitors Provider, m *metrics.Metrics) *Handler {
	return &Handler{
		visitors: visitors,
		metrics:  m,
	}
}

// Submit handles POST /api/v1/contact (public)
// @Summary Submit the contact form
// @Description Validates the four fields and stores the request. While a submission of the same visitor is in flight, further submissions are rejected.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body Fields true "Contact form"
// @Success 201 {object} response.Envelope{data=State}
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /contact [post]
func (h *Handler) Submit(c *gin.Context) {
	var req Fields
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	form, ok := h.visitorForm(c)
	if !ok {
		return
	}

	origin := Origin{
		SessionID: c.GetString("session_id"),
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	if err := form.Submit(c.Request.Context(), req, origin); err != nil {
		h.writeSubmitError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, form.Snapshot())
}

// State handles GET /api/v1/contact/state
func (h *Handler) State(c *gin.Context) {
	form, ok := h.visitorForm(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, form.Snapshot())
}

func (h *Handler) writeSubmitError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		h.metrics.ObserveSubmission(metrics.ResultInvalid)
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid contact form", verr.Errors)
	case errors.Is(err, ErrSubmissionInFlight):
		h.metrics.ObserveSubmission(metrics.ResultInFlight)
		response.Error(c, http.StatusConflict, "SUBMISSION_IN_FLIGHT", "A submission is already being sent")
	case errors.Is(err, ErrFormClosed):
		h.metrics.ObserveSubmission(metrics.ResultCanceled)
		response.Error(c, http.StatusGone, "SESSION_CLOSED", "Session expired, reload the page")
	case errors.Is(err, ErrSubmissionFailed):
		_ = c.Error(err)
		response.Error(c, http.StatusBadGateway, "SUBMISSION_FAILED", "Could not send the form, please try again")
	default:
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
	}
}

func (h *Handler) visitorForm(c *gin.Context) (*Form, bool) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		response.Error(c, http.StatusUnauthorized, "NO_SESSION", "Session cookie required")
		return nil, false
	}
	form, err := h.visitors.Form(sessionID)
	if err != nil {
		response.CustomError(c, http.StatusServiceUnavailable, "SESSION_UNAVAILABLE", err.Error())
		return nil, false
	}
	return form, true
}
