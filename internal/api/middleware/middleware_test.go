package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/api/middleware"
)

func TestAuth(t *testing.T) {
	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.GetUserID(r.Context())
		require.True(t, ok)
		gotUserID = id
		w.WriteHeader(http.StatusNoContent)
	})
	handler := middleware.Auth(next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing", header: "", want: http.StatusUnauthorized},
		{name: "not a number", header: "abc", want: http.StatusUnauthorized},
		{name: "non positive", header: "0", want: http.StatusUnauthorized},
		{name: "valid", header: "1001", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(middleware.UserIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	assert.Equal(t, int64(1001), gotUserID)
}

func TestRateLimiter(t *testing.T) {
	limiter := middleware.NewRateLimiter(60, 2, time.Minute)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/reserve", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))

	// Лимит считается отдельно для каждого IP
	assert.Equal(t, http.StatusOK, call("10.0.0.2"))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Forwarded-For", "192.168.1.5, 10.0.0.1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "forwarded client gets its own bucket")
}

type observed struct {
	method string
	route  string
	status int
}

type stubCollector struct {
	mu    sync.Mutex
	calls []observed
}

func (c *stubCollector) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, observed{method: method, route: route, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	collector := &stubCollector{}

	router := mux.NewRouter()
	router.Use(middleware.MetricsMiddleware(collector))
	router.HandleFunc("/merchants/{merchantId}/slots", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/merchants/42/slots", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Len(t, collector.calls, 1)
	assert.Equal(t, observed{
		method: http.MethodPost,
		route:  "/merchants/{merchantId}/slots",
		status: http.StatusConflict,
	}, collector.calls[0])
}
