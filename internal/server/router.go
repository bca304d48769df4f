// Package server wires the HTTP surface of the site.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"betagym/internal/config"
	"betagym/internal/domain/contact"
	"betagym/internal/domain/content"
	"betagym/internal/domain/gallery"
	"betagym/internal/domain/live"
	"betagym/internal/domain/location"
	"betagym/internal/metrics"
	"betagym/internal/middleware"
	jwtsvc "betagym/internal/pkg/jwt"
	"betagym/internal/session"
	"betagym/internal/site"
)

// Deps are the long-lived components the router serves.
type Deps struct {
	Config   *config.SiteRuntimeConfig
	Log      *zap.Logger
	Metrics  *metrics.Metrics
	JWT      *jwtsvc.Service
	Content  *config.ContentStore
	Registry *session.Registry
	Hub      *live.Hub
	// DB is pinged by /healthz when set.
	DB *gorm.DB
}

// NewRouter builds the gin engine. Everything except /healthz, /metrics
// and static images runs behind the session middleware.
func NewRouter(d Deps) *gin.Engine {
	if d.Config.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(log),
		middleware.AccessLog(log, d.Metrics),
		middleware.CORS(d.Config.CORSAllowedOrigins),
	)

	r.Static("/images", d.Config.StaticDir)
	r.GET("/healthz", healthz(d.DB))
	r.GET("/metrics",
		middleware.OpsTokenAuth(d.Config.MetricsToken, d.Config.MetricsAllowedIPs, log),
		gin.WrapH(d.Metrics.Handler()),
	)

	sessioned := r.Group("/")
	sessioned.Use(middleware.Session(d.JWT, middleware.CookieOptions{
		Secure:   d.Config.CookieSecure,
		SameSite: d.Config.CookieSameSite,
	}, log))

	site.NewHandler(d.Content, d.Content, d.Registry, d.Metrics, log).RegisterRoutes(sessioned)
	live.NewHandler(d.Hub, d.Registry, d.Config.CORSAllowedOrigins, log).RegisterRoutes(sessioned)

	v1 := sessioned.Group("/api/v1")
	{
		content.NewHandler(d.Content).RegisterRoutes(v1)
		location.NewHandler(d.Content).RegisterRoutes(v1)
		gallery.NewHandler(gallery.DefaultItems(), d.Registry, d.Metrics).RegisterRoutes(v1)
		contact.NewHandler(d.Registry, d.Metrics).RegisterRoutes(v1)
	}

	return r
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			sqlDB, err := db.DB()
			if err == nil {
				ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
				err = sqlDB.PingContext(ctx)
				cancel()
			}
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
