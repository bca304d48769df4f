package live

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"betagym/internal/pkg/response"
)

// Visitors gives the hub access to session state.
type Visitors interface {
	// Hello returns the events sent right after a socket is accepted.
	Hello(sessionID string) ([]Event, error)
	// Receive applies a message sent by the browser.
	Receive(sessionID string, msg ClientMessage) error
}

// Handler upgrades visitors to the live socket
type Handler struct {
	hub      *Hub
	visitors Visitors
	upgrader websocket.Upgrader
	log      *zap.Logger
}

// NewHandler creates live handler. An empty allowedOrigins list only
// accepts same-host origins.
func NewHandler(hub *Hub, visitors Visitors, allowedOrigins []string, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimRight(o, "/")] = true
	}
	return &Handler{
		hub:      hub,
		visitors: visitors,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowed),
		},
	}
}

func checkOrigin(allowed map[string]bool) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowed["*"] || allowed[origin] {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(u.Host, r.Host)
	}
}

// Serve handles GET /ws/live
func (h *Handler) Serve(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		response.Error(c, http.StatusUnauthorized, "NO_SESSION", "Session cookie required")
		return
	}

	hello, err := h.visitors.Hello(sessionID)
	if err != nil {
		response.CustomError(c, http.StatusServiceUnavailable, "SESSION_UNAVAILABLE", err.Error())
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		h.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.ServeWS(conn, sessionID, hello, func(msg ClientMessage) error {
		return h.visitors.Receive(sessionID, msg)
	})
}
