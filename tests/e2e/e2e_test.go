package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"betagym/internal/config"
	"betagym/internal/database"
	"betagym/internal/domain/contact"
	"betagym/internal/domain/live"
	"betagym/internal/metrics"
	jwtsvc "betagym/internal/pkg/jwt"
	"betagym/internal/server"
	"betagym/internal/session"
)

type E2ETestSuite struct {
	server *httptest.Server
	client *http.Client
	db     *gorm.DB
}

type TestResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   *ErrorDetail   `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	t.Helper()

	db, err := database.Connect("file:e2e_"+strings.ReplaceAll(t.Name(), "/", "_")+"?mode=memory&cache=shared", nil)
	require.NoError(t, err, "Failed to connect to test database")
	sqlDB, err := db.DB()
	require.NoError(t, err)

	repo := contact.NewRepository(db)
	require.NoError(t, repo.Migrate(), "Failed to migrate")

	cfg := &config.SiteRuntimeConfig{
		AppEnv:         "test",
		StaticDir:      t.TempDir(),
		CookieSameSite: "Lax",
	}
	m := metrics.New(prometheus.NewRegistry())
	hub := live.NewHub(m, nil)
	registry := session.NewRegistry(
		contact.NewService(repo, contact.WithIPSalt("e2e"), contact.WithMetrics(m)),
		session.WithPublisher(hub),
		session.WithMetrics(m),
	)

	router := server.NewRouter(server.Deps{
		Config:   cfg,
		Metrics:  m,
		JWT:      jwtsvc.New("e2e-secret", time.Hour),
		Content:  config.NewContentStore(),
		Registry: registry,
		Hub:      hub,
		DB:       db,
	})

	srv := httptest.NewServer(router)
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		hub.Close()
		srv.Close()
		registry.Close()
		_ = sqlDB.Close()
	})

	return &E2ETestSuite{
		server: srv,
		client: &http.Client{Jar: jar},
		db:     db,
	}
}

func (s *E2ETestSuite) makeRequest(t *testing.T, method, path string, body any) (*http.Response, TestResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out TestResponse
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func (s *E2ETestSuite) dialLive(t *testing.T) *websocket.Conn {
	t.Helper()
	u, err := url.Parse(s.server.URL)
	require.NoError(t, err)

	header := http.Header{}
	for _, c := range s.client.Jar.Cookies(u) {
		header.Add("Cookie", c.String())
	}

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(s.server.URL, "http")+"/ws/live", header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var ev map[string]any
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestVisitorJourney(t *testing.T) {
	s := setupTestSuite(t)

	// first page view starts the session
	resp, err := s.client.Get(s.server.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	conn := s.dialLive(t)
	hello := map[string]bool{}
	for i := 0; i < 2; i++ {
		hello[readEvent(t, conn)["type"].(string)] = true
	}
	assert.Equal(t, map[string]bool{live.EventGallery: true, live.EventContact: true}, hello)

	t.Run("gallery filter is pushed to the socket", func(t *testing.T) {
		resp, body := s.makeRequest(t, http.MethodPost, "/api/v1/gallery/filter", map[string]string{"category": "transformations"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "transformations", body.Data["active"])
		assert.Len(t, body.Data["visible"], 2)

		ev := readEvent(t, conn)
		assert.Equal(t, live.EventGallery, ev["type"])
		assert.Equal(t, "transformations", ev["payload"].(map[string]any)["active"])
	})

	t.Run("invalid contact form returns field rules", func(t *testing.T) {
		resp, body := s.makeRequest(t, http.MethodPost, "/api/v1/contact", map[string]string{
			"name": "Dana", "phone": "12", "email": "dana@example.com", "message": "hi",
		})
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		require.NotNil(t, body.Error)
		details := body.Error.Details.(map[string]any)
		assert.Equal(t, "INVALID_FORMAT", details["phone"].(map[string]any)["rule"])
		assert.NotContains(t, details, "name")
	})

	t.Run("valid contact form is stored", func(t *testing.T) {
		resp, body := s.makeRequest(t, http.MethodPost, "/api/v1/contact", map[string]string{
			"name":    "Dana",
			"phone":   "0501234567",
			"email":   "dana@example.com",
			"message": "<i>מתי</i> פותחים?",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, true, body.Data["success"])

		var stored []contact.Submission
		require.NoError(t, s.db.Find(&stored).Error)
		require.Len(t, stored, 1)
		assert.Equal(t, "מתי פותחים?", stored[0].Message)
		assert.NotEmpty(t, stored[0].SessionID)

		_, state := s.makeRequest(t, http.MethodGet, "/api/v1/contact/state", nil)
		assert.Equal(t, true, state.Data["success"])
	})
}

func TestSSRContactFlow(t *testing.T) {
	s := setupTestSuite(t)
	s.client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	form := url.Values{
		"name":    {"Yossi"},
		"phone":   {"031234567"},
		"email":   {"yossi@example.com"},
		"message": {"שלום"},
	}
	resp, err := s.client.PostForm(s.server.URL+"/contact", form)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var count int64
	require.NoError(t, s.db.Model(&contact.Submission{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	svc := contact.NewService(contact.NewRepository(s.db))
	items, total, err := svc.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, "yossi@example.com", items[0].Email)
}

func TestHealthAndContentAPI(t *testing.T) {
	s := setupTestSuite(t)

	resp, err := s.client.Get(s.server.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	r, body := s.makeRequest(t, http.MethodGet, "/api/v1/content/footer", nil)
	require.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, "מכון כושר ביתא", body.Data["name"])

	r, body = s.makeRequest(t, http.MethodGet, "/api/v1/content/pricing", nil)
	assert.Equal(t, http.StatusNotFound, r.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "UNKNOWN_SECTION", body.Error.Code)
}
