package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSubmissionCountsByResult(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSubmission(ResultSuccess)
	m.ObserveSubmission(ResultSuccess)
	m.ObserveSubmission(ResultInvalid)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ContactSubmissions.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactSubmissions.WithLabelValues(ResultInvalid)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveSubmission(ResultFailed)
	m.ObserveSelection("all")
	m.ObserveRequest("GET", "/", "200", 0.1)
	m.LiveConnected(1)
	m.SetSessions(3)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveSelection("classes")

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `betagym_gallery_selections_total{category="classes"} 1`))
}
