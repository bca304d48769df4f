package site

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"betagym/internal/domain/contact"
	"betagym/internal/domain/content"
	"betagym/internal/domain/gallery"
	"betagym/internal/domain/location"
	"betagym/internal/metrics"
)

const (
	msgInFlight     = "הפנייה שלך כבר בשליחה, אנא המתינו."
	msgSubmitFailed = "אירעה שגיאה בשליחת הטופס. אנא נסו שוב."
	msgBadCategory  = "קטגוריה לא מוכרת"
)

// ContentSource supplies the active section copy.
type ContentSource interface {
	Page() content.Page
}

// PanelSource supplies the location panel. A nil panel hides the section.
type PanelSource interface {
	Panel() *location.Panel
}

// Visitors hands out the view-models owned by a session.
type Visitors interface {
	Gallery(sessionID string) (*gallery.Gallery, error)
	Form(sessionID string) (*contact.Form, error)
}

// Handler serves the server-rendered page.
type Handler struct {
	content  ContentSource
	panels   PanelSource
	visitors Visitors
	metrics  *metrics.Metrics
	log      *zap.Logger
	now      func() time.Time
}

func NewHandler(cs ContentSource, ps PanelSource, visitors Visitors, m *metrics.Metrics, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		content:  cs,
		panels:   ps,
		visitors: visitors,
		metrics:  m,
		log:      log,
		now:      time.Now,
	}
}

// Index handles GET /. A ?category= query selects the visitor's gallery
// filter before rendering.
func (h *Handler) Index(c *gin.Context) {
	sessionID := c.GetString("session_id")
	gal, form, err := h.viewModels(sessionID)
	if err != nil {
		h.unavailable(c, err)
		return
	}

	status := http.StatusOK
	var banner *Banner
	if raw, ok := c.GetQuery("category"); ok {
		category, err := gallery.ParseCategory(raw)
		switch {
		case err != nil:
			status = http.StatusBadRequest
			banner = &Banner{Kind: "error", Message: msgBadCategory}
		default:
			if err := gal.SelectCategory(category); err != nil {
				h.unavailable(c, err)
				return
			}
			h.metrics.ObserveSelection(category.String())
		}
	}

	h.render(c, status, gal.Snapshot(), form.Snapshot(), banner)
}

// Submit handles POST /contact. Success redirects back to the page so a
// reload does not resend the form; every other outcome re-renders with the
// entered values kept.
func (h *Handler) Submit(c *gin.Context) {
	var fields contact.Fields
	if err := c.ShouldBind(&fields); err != nil {
		c.String(http.StatusBadRequest, "invalid form body")
		return
	}

	sessionID := c.GetString("session_id")
	gal, form, err := h.viewModels(sessionID)
	if err != nil {
		h.unavailable(c, err)
		return
	}

	origin := contact.Origin{
		SessionID: sessionID,
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	err = form.Submit(c.Request.Context(), fields, origin)

	var verr *contact.ValidationError
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/#contact")
	case errors.As(err, &verr):
		h.metrics.ObserveSubmission(metrics.ResultInvalid)
		h.render(c, http.StatusUnprocessableEntity, gal.Snapshot(), form.Snapshot(), nil)
	case errors.Is(err, contact.ErrSubmissionInFlight):
		h.metrics.ObserveSubmission(metrics.ResultInFlight)
		h.render(c, http.StatusConflict, gal.Snapshot(), form.Snapshot(), &Banner{Kind: "info", Message: msgInFlight})
	case errors.Is(err, contact.ErrFormClosed):
		h.metrics.ObserveSubmission(metrics.ResultCanceled)
		c.Redirect(http.StatusSeeOther, "/")
	default:
		_ = c.Error(err)
		h.render(c, http.StatusBadGateway, gal.Snapshot(), form.Snapshot(), &Banner{Kind: "error", Message: msgSubmitFailed})
	}
}

func (h *Handler) viewModels(sessionID string) (*gallery.Gallery, *contact.Form, error) {
	if sessionID == "" {
		return nil, nil, errors.New("no session")
	}
	gal, err := h.visitors.Gallery(sessionID)
	if err != nil {
		return nil, nil, err
	}
	form, err := h.visitors.Form(sessionID)
	if err != nil {
		return nil, nil, err
	}
	return gal, form, nil
}

func (h *Handler) render(c *gin.Context, status int, gs gallery.State, fs contact.State, banner *Banner) {
	data := PageData{
		Content: h.content.Page(),
		Gallery: gs,
		Form:    fs,
		Banner:  banner,
		Year:    h.now().Year(),
	}
	if p := h.panels.Panel(); p != nil {
		v := p.View(false)
		data.Location = &v
	}
	writeHTML(c, status, Page(data))
}

func (h *Handler) unavailable(c *gin.Context, err error) {
	h.log.Warn("visitor view unavailable", zap.Error(err), zap.String("session_id", c.GetString("session_id")))
	c.String(http.StatusServiceUnavailable, "השירות אינו זמין כרגע, נסו שוב בעוד רגע.")
}

func writeHTML(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
