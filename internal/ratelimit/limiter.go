// Package ratelimit provides request admission control. FixedWindow is a
// single global limiter counting admissions in a trailing window; Visitors
// adds a per-client token-bucket guard on top of it.
package ratelimit

import (
	"sync"
	"time"
)

// FixedWindow admits at most limit requests within a trailing window. It
// keeps the Unix-second timestamp of every admission and prunes entries older
// than the window on each decision. State is process-local only.
type FixedWindow struct {
	mu       sync.Mutex
	requests []int64
	limit    int
	window   time.Duration
	now      func() int64
}

// NewFixedWindow creates a limiter admitting at most limit requests per
// window. limit must be positive.
func NewFixedWindow(limit int, window time.Duration) *FixedWindow {
	if limit <= 0 {
		panic("ratelimit: limit must be positive")
	}
	return &FixedWindow{
		requests: make([]int64, 0, limit),
		limit:    limit,
		window:   window,
		now:      func() int64 { return time.Now().Unix() },
	}
}

// IsAllowed atomically prunes expired admissions and decides the current
// request: admitted requests are recorded and true is returned; rejected
// requests leave the state untouched.
func (fw *FixedWindow) IsAllowed() bool {
	now := fw.now()
	windowStart := fw.windowStart(now)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	fw.prune(windowStart)

	if len(fw.requests) < fw.limit {
		fw.requests = append(fw.requests, now)
		return true
	}
	return false
}

// CurrentCount reports how many admissions remain inside the window. It
// prunes like IsAllowed but never records a new admission.
func (fw *FixedWindow) CurrentCount() int {
	windowStart := fw.windowStart(fw.now())

	fw.mu.Lock()
	defer fw.mu.Unlock()

	fw.prune(windowStart)
	return len(fw.requests)
}

// Limit returns the configured admission limit.
func (fw *FixedWindow) Limit() int {
	return fw.limit
}

// windowStart saturates at zero for windows exceeding the current time.
func (fw *FixedWindow) windowStart(now int64) int64 {
	windowSecs := int64(fw.window / time.Second)
	if windowSecs >= now {
		return 0
	}
	return now - windowSecs
}

// prune drops timestamps strictly older than windowStart. Caller holds fw.mu.
func (fw *FixedWindow) prune(windowStart int64) {
	kept := fw.requests[:0]
	for _, ts := range fw.requests {
		if ts >= windowStart {
			kept = append(kept, ts)
		}
	}
	fw.requests = kept
}
