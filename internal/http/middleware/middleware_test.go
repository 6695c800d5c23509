package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"content_intelligence/internal/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDLoggerMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDLoggerMiddleware(log.New())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))

	t.Run("keeps the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("x-request-id", "abc-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get("x-request-id"))
	})

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get("x-request-id"))
	})
}

func TestRequestIDLoggerMiddleware_RecoversPanic(t *testing.T) {
	handler := RequestIDLoggerMiddleware(log.New())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestMetricsMiddleware(t *testing.T) {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Get("/scores/{docKey}/history", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := counterValue(t, metrics.HTTPRequestErrorsTotal.WithLabelValues(http.MethodGet, "/scores/{docKey}/history", "404"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scores/posts:1/history", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	after := counterValue(t, metrics.HTTPRequestErrorsTotal.WithLabelValues(http.MethodGet, "/scores/{docKey}/history", "404"))
	assert.Equal(t, before+1, after)
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	assert.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {})

	before := counterValue(t, metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no/such/page", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before+1, counterValue(t, metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))
}
