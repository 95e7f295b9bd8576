package api

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter is a fixed-window request counter keyed by remote address.
type RateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	counts map[string]*windowCount

	now func() time.Time
}

type windowCount struct {
	start time.Time
	n     int
}

func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		window: window,
		max:    max,
		counts: make(map[string]*windowCount),
		now:    time.Now,
	}
}

// Allow records one request for key and reports whether it fits the window.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	wc := l.counts[key]
	if wc == nil || now.Sub(wc.start) >= l.window {
		l.pruneLocked(now)
		l.counts[key] = &windowCount{start: now, n: 1}
		return l.max >= 1
	}

	wc.n++
	return wc.n <= l.max
}

// pruneLocked drops expired windows so the map does not grow unbounded.
func (l *RateLimiter) pruneLocked(now time.Time) {
	for k, wc := range l.counts {
		if now.Sub(wc.start) >= l.window {
			delete(l.counts, k)
		}
	}
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !l.Allow(host) {
			writeError(w, http.StatusTooManyRequests, "Too many requests, please try again later", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
