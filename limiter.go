package pubfolio

import (
	"sync"
	"time"
)

// RequestLimiter is a sliding-window rate limiter keyed by client IP.
type RequestLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	max    int
	window time.Duration

	stopOnce sync.Once
	stop     chan struct{}
}

// NewRequestLimiter creates a RequestLimiter that allows max requests per
// window. Call Stop to end its cleanup goroutine.
func NewRequestLimiter(max int, window time.Duration) *RequestLimiter {
	l := &RequestLimiter{
		hits:   make(map[string][]time.Time),
		max:    max,
		window: window,
		stop:   make(chan struct{}),
	}
	go l.cleanup()
	return l
}

func (l *RequestLimiter) cleanup() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			cutoff := now.Add(-l.window)
			l.mu.Lock()
			for ip, hits := range l.hits {
				kept := prune(hits, cutoff)
				if len(kept) == 0 {
					delete(l.hits, ip)
				} else {
					l.hits[ip] = kept
				}
			}
			l.mu.Unlock()
		}
	}
}

func prune(hits []time.Time, cutoff time.Time) []time.Time {
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Allow reports whether ip is under the limit and, if so, records the
// request.
func (l *RequestLimiter) Allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := prune(l.hits[ip], now.Add(-l.window))
	if len(kept) >= l.max {
		l.hits[ip] = kept
		return false
	}
	l.hits[ip] = append(kept, now)
	return true
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (l *RequestLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
