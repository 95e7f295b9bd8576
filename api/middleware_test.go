package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/moodlog/api"
)

func TestCORSMiddleware_Preflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	})
	h := api.CORSMiddleware(next)

	req := httptest.NewRequest(http.MethodOptions, "/record", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected allow-origin: %q", got)
	}
}

func TestCORSMiddleware_PassesThrough(t *testing.T) {
	called := false
	h := api.CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if !called {
		t.Fatal("handler not invoked")
	}
	if got := rr.Header().Get("Access-Control-Allow-Headers"); got == "" {
		t.Fatal("CORS headers missing on normal request")
	}
}

func TestTimeoutMiddleware_BoundsRequestContext(t *testing.T) {
	h := api.TimeoutMiddleware(30*time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Deadline(); !ok {
			t.Error("request context should carry a deadline")
		}
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
			t.Error("request context never expired")
		}
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestRecoveryMiddleware(t *testing.T) {
	h := api.RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rr.Code)
	}
}

func signTestToken(t *testing.T, secret, userID string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     exp.Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestOptionalJWT_NoHeaderPassesThrough(t *testing.T) {
	var seen string
	h := api.OptionalJWTMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if v, ok := r.Context().Value(api.CtxUserID).(string); ok {
			seen = v
		}
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/analyze", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if seen != "" {
		t.Fatalf("no user expected in context, got %q", seen)
	}
}

func TestOptionalJWT_ValidToken(t *testing.T) {
	var seen string
	h := api.OptionalJWTMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(api.CtxUserID).(string)
	}))

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, testSecret, "42", time.Now().Add(time.Hour)))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if seen != "42" {
		t.Fatalf("expected user 42 in context, got %q", seen)
	}
}

func TestOptionalJWT_RejectsBadTokens(t *testing.T) {
	h := api.OptionalJWTMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a rejected token")
	}))

	cases := []struct {
		name   string
		header string
	}{
		{"garbage", "Bearer not-a-token"},
		{"wrong secret", "Bearer " + signTestToken(t, "other-secret", "42", time.Now().Add(time.Hour))},
		{"expired", "Bearer " + signTestToken(t, testSecret, "42", time.Now().Add(-time.Hour))},
		{"no separator", "Bearer" + signTestToken(t, testSecret, "42", time.Now().Add(time.Hour))},
		{"wrong scheme", "Basic " + signTestToken(t, testSecret, "42", time.Now().Add(time.Hour))},
		{"bare scheme", "Bearer "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
			req.Header.Set("Authorization", tc.header)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 got %d", rr.Code)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl := api.NewRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("request over the limit should be denied")
	}
	// a different client has its own window
	if !rl.Allow("5.6.7.8") {
		t.Fatal("other client should not share the window")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := api.NewRateLimiter(time.Minute, 1)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("first request: expected 200 got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429 got %d", rr.Code)
	}
}
