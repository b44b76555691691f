package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Visitors tracks a token-bucket limiter per client key (typically the remote
// IP) so a single noisy client cannot exhaust the global window for everyone.
type Visitors struct {
	mu       sync.RWMutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	idleTTL  time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// visitor tracks rate limiting state for a single client
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewVisitors creates a per-client limiter allowing requestsPerSecond with
// the given burst. Idle clients are evicted by a background janitor; call
// Stop when the limiter is no longer needed.
func NewVisitors(requestsPerSecond float64, burst int) *Visitors {
	v := &Visitors{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		idleTTL:  10 * time.Minute,
		stop:     make(chan struct{}),
	}

	go v.cleanupLoop(5 * time.Minute)

	return v
}

// Allow checks whether the client identified by key may proceed. A zero rate
// admits everything.
func (v *Visitors) Allow(key string) bool {
	if v.rate == 0 {
		return true
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	entry, exists := v.visitors[key]
	if !exists {
		entry = &visitor{limiter: rate.NewLimiter(v.rate, v.burst)}
		v.visitors[key] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter.Allow()
}

// Len reports the number of tracked clients; used by tests and metrics.
func (v *Visitors) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.visitors)
}

// Stop terminates the cleanup goroutine.
func (v *Visitors) Stop() {
	v.stopOnce.Do(func() { close(v.stop) })
}

// cleanupLoop removes idle visitors to prevent unbounded map growth.
func (v *Visitors) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			v.cleanup()
		case <-v.stop:
			return
		}
	}
}

func (v *Visitors) cleanup() {
	cutoff := time.Now().Add(-v.idleTTL)

	v.mu.Lock()
	defer v.mu.Unlock()

	for key, entry := range v.visitors {
		if entry.lastSeen.Before(cutoff) {
			delete(v.visitors, key)
		}
	}
}
