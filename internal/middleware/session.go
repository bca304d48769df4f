package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	jwtsvc "betagym/internal/pkg/jwt"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "bg_session"

// CookieOptions controls how the session cookie is written.
type CookieOptions struct {
	Secure   bool
	SameSite string
	Path     string
}

func (o CookieOptions) sameSite() http.SameSite {
	switch strings.ToLower(o.SameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// Session resolves the anonymous visitor session from the bg_session
// cookie. A missing or invalid cookie starts a new session. The id is
// stored under "session_id" in the gin context.
func Session(j *jwtsvc.Service, opts CookieOptions, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Path == "" {
		opts.Path = "/"
	}

	return func(c *gin.Context) {
		if raw, err := c.Cookie(SessionCookieName); err == nil && raw != "" {
			if claims, err := j.ValidateToken(raw); err == nil {
				c.Set("session_id", claims.SessionID)
				c.Next()
				return
			}
		}

		sessionID := uuid.NewString()
		token, err := j.GenerateToken(sessionID)
		if err != nil {
			log.Error("sign session token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Could not start a session"},
			})
			return
		}

		c.SetSameSite(opts.sameSite())
		c.SetCookie(SessionCookieName, token, int(j.TTL().Seconds()), opts.Path, "", opts.Secure, true)
		c.Set("session_id", sessionID)
		c.Next()
	}
}
