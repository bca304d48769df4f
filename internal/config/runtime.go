package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"betagym/internal/pkg/utils"
)

const (
	defaultHTTPAddr            = ":8080"
	defaultDatabaseURL         = "file:betagym.db?_pragma=busy_timeout(5000)"
	defaultRedisPrefix         = "betagym:"
	defaultSessionSecret       = "change-me-session-secret"
	defaultIPHashSalt          = "change-me-ip-salt"
	defaultSessionCookieTTL    = "720h"
	defaultSessionIdleTTL      = "30m"
	defaultSessionReapInterval = "1m"
	defaultMaxSessions         = "10000"
	defaultSuccessDisplay      = "5s"
	defaultGalleryTransition   = "300ms"
	defaultSubmitTimeout       = "10s"
	defaultShutdownTimeout     = "15s"
	defaultContentWatch        = "false"
	defaultStaticDir           = "./public/images"
	defaultSubmissionRetention = "2160h"
	defaultCookieSecure        = "false"
	defaultCookieSameSite      = "Lax"
	defaultLogLevel            = "info"
)

// SiteRuntimeConfig is everything the site reads from the environment.
type SiteRuntimeConfig struct {
	AppEnv   string
	HTTPAddr string
	LogLevel string

	DatabaseURL string
	RedisURL    string
	RedisPrefix string

	SessionSecret       string
	SessionCookieTTL    time.Duration
	SessionIdleTTL      time.Duration
	SessionReapInterval time.Duration
	MaxSessions         int
	CookieSecure        bool
	CookieSameSite      string

	SuccessDisplay    time.Duration
	GalleryTransition time.Duration
	SubmitTimeout     time.Duration
	ShutdownTimeout   time.Duration

	ContentFile  string
	ContentWatch bool
	StaticDir    string

	CORSAllowedOrigins  []string
	IPHashSalt          string
	SubmissionRetention time.Duration

	MetricsToken      string
	MetricsAllowedIPs []string
}

// LoadDotEnv loads .env style files into the environment. Missing files
// are skipped; variables already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func LoadSiteRuntimeConfig() (*SiteRuntimeConfig, error) {
	cfg := &SiteRuntimeConfig{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel)))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.RedisPrefix = strings.TrimSpace(getEnv("REDIS_PREFIX", defaultRedisPrefix))
	cfg.SessionSecret = strings.TrimSpace(getEnv("SESSION_SECRET", defaultSessionSecret))
	cfg.IPHashSalt = strings.TrimSpace(getEnv("IP_HASH_SALT", defaultIPHashSalt))
	cfg.ContentFile = strings.TrimSpace(os.Getenv("CONTENT_FILE"))
	cfg.StaticDir = strings.TrimSpace(getEnv("STATIC_DIR", defaultStaticDir))
	cfg.CORSAllowedOrigins = utils.ParseList(os.Getenv("CORS_ALLOWED_ORIGINS"))
	cfg.MetricsToken = strings.TrimSpace(os.Getenv("METRICS_TOKEN"))
	cfg.MetricsAllowedIPs = utils.ParseList(os.Getenv("METRICS_ALLOWED_IPS"))

	var err error
	durations := []struct {
		name     string
		fallback string
		dst      *time.Duration
	}{
		{"SESSION_COOKIE_TTL", defaultSessionCookieTTL, &cfg.SessionCookieTTL},
		{"SESSION_IDLE_TTL", defaultSessionIdleTTL, &cfg.SessionIdleTTL},
		{"SESSION_REAP_INTERVAL", defaultSessionReapInterval, &cfg.SessionReapInterval},
		{"SUCCESS_DISPLAY", defaultSuccessDisplay, &cfg.SuccessDisplay},
		{"GALLERY_TRANSITION", defaultGalleryTransition, &cfg.GalleryTransition},
		{"SUBMIT_TIMEOUT", defaultSubmitTimeout, &cfg.SubmitTimeout},
		{"SHUTDOWN_TIMEOUT", defaultShutdownTimeout, &cfg.ShutdownTimeout},
		{"SUBMISSION_RETENTION", defaultSubmissionRetention, &cfg.SubmissionRetention},
	}
	for _, d := range durations {
		*d.dst, err = parseDurationEnv(d.name, d.fallback)
		if err != nil {
			return nil, err
		}
	}

	cfg.MaxSessions, err = parseIntEnv("MAX_SESSIONS", defaultMaxSessions)
	if err != nil {
		return nil, err
	}

	cfg.ContentWatch = parseBoolEnv("CONTENT_WATCH", defaultContentWatch)
	cfg.CookieSecure = parseBoolEnv("COOKIE_SECURE", defaultCookieSecure)
	cfg.CookieSameSite = strings.TrimSpace(getEnv("COOKIE_SAMESITE", defaultCookieSameSite))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProd reports whether the config targets a production-like environment.
func (c *SiteRuntimeConfig) IsProd() bool { return isProdLike(c.AppEnv) }

func validateConfig(cfg *SiteRuntimeConfig) error {
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.SessionCookieTTL <= 0 {
		return fmt.Errorf("SESSION_COOKIE_TTL must be > 0")
	}
	if cfg.SessionIdleTTL <= 0 {
		return fmt.Errorf("SESSION_IDLE_TTL must be > 0")
	}
	if cfg.SessionReapInterval <= 0 {
		return fmt.Errorf("SESSION_REAP_INTERVAL must be > 0")
	}
	if cfg.MaxSessions <= 0 {
		return fmt.Errorf("MAX_SESSIONS must be > 0")
	}
	if cfg.SuccessDisplay <= 0 {
		return fmt.Errorf("SUCCESS_DISPLAY must be > 0")
	}
	if cfg.GalleryTransition < 0 {
		return fmt.Errorf("GALLERY_TRANSITION must be >= 0")
	}
	if cfg.SubmitTimeout <= 0 {
		return fmt.Errorf("SUBMIT_TIMEOUT must be > 0")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}
	if cfg.SubmissionRetention <= 0 {
		return fmt.Errorf("SUBMISSION_RETENTION must be > 0")
	}
	if cfg.ContentWatch && cfg.ContentFile == "" {
		return fmt.Errorf("CONTENT_WATCH requires CONTENT_FILE")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	sameSite := strings.ToLower(strings.TrimSpace(cfg.CookieSameSite))
	if sameSite != "lax" && sameSite != "none" && sameSite != "strict" {
		return fmt.Errorf("COOKIE_SAMESITE must be one of: Lax, None, Strict")
	}
	if sameSite == "none" && !cfg.CookieSecure {
		return fmt.Errorf("COOKIE_SECURE must be true when COOKIE_SAMESITE=None")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.SessionSecret, defaultSessionSecret) {
			return fmt.Errorf("in prod/release SESSION_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.IPHashSalt, defaultIPHashSalt) {
			return fmt.Errorf("in prod/release IP_HASH_SALT must be set and not default")
		}
		if !cfg.CookieSecure {
			return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
