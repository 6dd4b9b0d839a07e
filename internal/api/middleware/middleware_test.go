package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/session"
	"github.com/m04kA/LimpMe-BookingService/pkg/logger"
)

type fakeAuthenticator struct{}

func (fakeAuthenticator) Authenticate(_ context.Context, token string) (domain.Identity, error) {
	if token != "good" {
		return domain.Identity{}, errors.New("bad token")
	}
	return domain.Identity{UserID: "u1", Email: "ana@example.com"}, nil
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	_, _ = w.Write([]byte(identity.UserID))
}

func TestAuth_Handler(t *testing.T) {
	auth := NewAuth(fakeAuthenticator{}, logger.NewNop())
	h := auth.Handler(http.HandlerFunc(echoUser))

	tests := []struct {
		name   string
		header string
		cookie string
		status int
	}{
		{"bearer", "Bearer good", "", http.StatusOK},
		{"cookie", "", "good", http.StatusOK},
		{"missing", "", "", http.StatusUnauthorized},
		{"invalid", "Bearer bad", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/my-bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "u1", rec.Body.String())
				return
			}
			var body handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, domain.PathAuth, body.Redirect)
		})
	}
}

func TestAuth_OptionalAndAuthenticated(t *testing.T) {
	auth := NewAuth(fakeAuthenticator{}, logger.NewNop())
	h := auth.Optional(http.HandlerFunc(echoUser))

	anon := httptest.NewRequest(http.MethodGet, "/auth", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, anon)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, auth.Authenticated(anon))

	signed := httptest.NewRequest(http.MethodGet, "/auth", nil)
	signed.Header.Set("Authorization", "Bearer good")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, signed)
	assert.Equal(t, "u1", rec.Body.String())
	assert.True(t, auth.Authenticated(signed))
}

type observation struct {
	method, route, status string
}

type fakeMetrics struct {
	got []observation
}

func (m *fakeMetrics) ObserveHTTPRequest(method, route, status string, _ float64) {
	m.got = append(m.got, observation{method, route, status})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(Metrics(m))
	r.HandleFunc("/my-bookings/{bookingId}/cancel", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/my-bookings/abc/cancel", nil))

	require.Len(t, m.got, 1)
	assert.Equal(t, observation{"POST", "/my-bookings/{bookingId}/cancel", "404"}, m.got[0])
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", seen)
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	rl, err := NewRateLimiter(60, 2, nil)
	require.NoError(t, err)
	rl.now = func() time.Time { return now }
	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", nil)
		req.RemoteAddr = ip + ":5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2"))

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
}

func TestRateLimiter_ForgedForwardedForFromUntrustedPeer(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	rl, err := NewRateLimiter(1, 1, nil)
	require.NoError(t, err)
	rl.now = func() time.Time { return now }
	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	allowed, limited := 0, 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", nil)
		req.RemoteAddr = "203.0.113.7:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited++
		} else {
			allowed++
		}
	}

	assert.Equal(t, 1, allowed)
	assert.Equal(t, 49, limited)
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "203.0.113.7")
}

func TestRateLimiter_Sweep(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	rl, err := NewRateLimiter(60, 2, nil)
	require.NoError(t, err)
	rl.now = func() time.Time { return now }

	rl.allow("10.0.0.1")
	now = now.Add(visitorIdleTTL / 2)
	rl.allow("10.0.0.2")

	// запросы не чистят карту, это делает только sweep
	now = now.Add(visitorIdleTTL/2 + time.Second)
	rl.allow("10.0.0.3")
	assert.Len(t, rl.visitors, 3)

	rl.sweep()
	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
	assert.Contains(t, rl.visitors, "10.0.0.3")
}

func TestRateLimiter_RunStops(t *testing.T) {
	rl, err := NewRateLimiter(60, 2, nil)
	require.NoError(t, err)

	stopCh := make(chan struct{})
	done := make(chan struct{})
	go func() {
		rl.Run(stopCh)
		close(done)
	}()
	close(stopCh)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after stop")
	}
}

func TestClientIP(t *testing.T) {
	rl, err := NewRateLimiter(60, 2, []string{"10.0.0.0/8", "192.168.0.10"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		want       string
	}{
		{"untrusted peer without header", "203.0.113.7:1234", "", "203.0.113.7"},
		{"untrusted peer header ignored", "203.0.113.7:1234", "198.51.100.1", "203.0.113.7"},
		{"trusted proxy forwards client", "192.168.0.10:1234", "198.51.100.1", "198.51.100.1"},
		{"trusted chain skips inner proxies", "10.1.2.3:1234", "198.51.100.9, 198.51.100.1, 10.0.0.5", "198.51.100.1"},
		{"trusted proxy without header", "10.1.2.3:1234", "", "10.1.2.3"},
		{"trusted proxy garbage header", "10.1.2.3:1234", "not-an-ip", "10.1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			assert.Equal(t, tt.want, rl.clientIP(req))
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	prefixes, err := ParseTrustedProxies([]string{"10.0.0.0/8", " 127.0.0.1 ", "", "::1"})
	require.NoError(t, err)
	assert.Len(t, prefixes, 3)

	_, err = ParseTrustedProxies([]string{"proxy.local"})
	assert.Error(t, err)

	_, err = NewRateLimiter(60, 2, []string{"10.0.0.0/99"})
	assert.Error(t, err)
}


func TestCORS_Preflight(t *testing.T) {
	h := CORS([]string{"http://localhost:5173"})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/my-bookings", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
