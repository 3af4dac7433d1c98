// Package ratelimit keeps one token-bucket limiter per identifier (an IP or
// a user id) and evicts buckets that have been idle for a while.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type Limiter struct {
	mu      sync.Mutex
	clients map[string]*client
	rate    rate.Limit
	burst   int
}

func NewLimiter(r rate.Limit, burst int) *Limiter {
	return &Limiter{
		clients: make(map[string]*client),
		rate:    r,
		burst:   burst,
	}
}

// Allow reports whether the identified caller may proceed, consuming one
// token when it may.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow()
}

// StartCleanup evicts idle buckets every interval until stop is closed.
func (l *Limiter) StartCleanup(interval, maxIdle time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				l.mu.Lock()
				for key, c := range l.clients {
					if time.Since(c.lastSeen) > maxIdle {
						delete(l.clients, key)
					}
				}
				l.mu.Unlock()
			}
		}
	}()
}
