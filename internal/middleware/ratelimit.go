package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimit caps requests per client IP using a token bucket per address.
// Buckets idle for an hour are discarded on the next sweep.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	type client struct {
		limiter *rate.Limiter
		seen    time.Time
	}

	var mu sync.Mutex
	clients := make(map[string]*client)
	lastSweep := time.Now()

	every := rate.Every(per / time.Duration(limit))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIPForRateLimit(r)

			mu.Lock()
			now := time.Now()
			if now.Sub(lastSweep) > time.Hour {
				for addr, c := range clients {
					if now.Sub(c.seen) > time.Hour {
						delete(clients, addr)
					}
				}
				lastSweep = now
			}
			c, ok := clients[ip]
			if !ok {
				c = &client{limiter: rate.NewLimiter(every, limit)}
				clients[ip] = c
			}
			c.seen = now
			allowed := c.limiter.Allow()
			mu.Unlock()

			if !allowed {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIPForRateLimit(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			ip := strings.TrimSpace(part)
			if ip == "" {
				continue
			}
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		if net.ParseIP(host) != nil {
			return host
		}
	} else if net.ParseIP(r.RemoteAddr) != nil {
		return r.RemoteAddr
	}
	return "unknown"
}
