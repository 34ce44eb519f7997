package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func limitedHandler(store *visitorStore) echo.HandlerFunc {
	return rateLimit(store)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func doRequest(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec.Code
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(newVisitorStore(1, 4))

	for i := 0; i < 4; i++ {
		assert.Equal(t, http.StatusOK, doRequest(e, handler, "192.168.1.2:12345"), "request %d within burst", i)
	}

	assert.Equal(t, http.StatusTooManyRequests, doRequest(e, handler, "192.168.1.2:12345"))
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(newVisitorStore(1, 1))

	assert.Equal(t, http.StatusOK, doRequest(e, handler, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(e, handler, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, doRequest(e, handler, "10.0.0.2:1000"))
}

func TestNewVisitorStore_Defaults(t *testing.T) {
	store := newVisitorStore(0, -1)

	assert.Equal(t, float64(defaultRequestsPerSecond), float64(store.limit))
	assert.Equal(t, defaultBurstSize, store.burst)
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{"forwarded for takes first hop", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.1:80", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "10.0.0.1:80", "198.51.100.4"},
		{"remote address", nil, "192.0.2.10:5555", "192.0.2.10"},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.expected, getIP(c))
		})
	}
}

func TestVisitorStore_Evict(t *testing.T) {
	store := newVisitorStore(5, 5)
	now := time.Now()

	store.get("stale", now.Add(-10*time.Minute))
	store.get("fresh", now)
	store.evict(now)

	assert.Equal(t, 1, store.size())
}

func TestRateLimiter_Concurrency(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(newVisitorStore(1, 10))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if doRequest(e, handler, "172.16.0.1:9000") == http.StatusOK {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, allowed, 11)
	assert.GreaterOrEqual(t, allowed, 10)
}
