package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/assay/pkg/metrics"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	m := metrics.New("test")

	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("ok"))
	}))

	for _, path := range []string{"/", "/", "/missing"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	count, err := testutil.GatherAndCount(m.Registry(), "test_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per status code")
}

func TestEvaluationScored(t *testing.T) {
	m := metrics.New("test")

	m.EvaluationScored("create", "Tier2")
	m.EvaluationScored("create", "Tier2")
	m.EvaluationScored("update", "Tier4")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `test_evaluations_scored_total{operation="create",tier="Tier2"} 2`)
	assert.Contains(t, body, `test_evaluations_scored_total{operation="update",tier="Tier4"} 1`)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics

	m.EvaluationScored("create", "Tier1")
	assert.Nil(t, m.Registry())

	called := false
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.True(t, called)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
