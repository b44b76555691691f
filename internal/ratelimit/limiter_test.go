package ratelimit

import (
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests move time without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now int64
}

func (c *fakeClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(secs int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += secs
}

func newTestLimiter(limit int, window time.Duration, clock *fakeClock) *FixedWindow {
	fw := NewFixedWindow(limit, window)
	fw.now = clock.Now
	return fw
}

func TestIsAllowed_UnderLimit(t *testing.T) {
	clock := &fakeClock{now: 1000}
	fw := newTestLimiter(3, 60*time.Second, clock)

	for i := 0; i < 3; i++ {
		if !fw.IsAllowed() {
			t.Errorf("Request %d: expected admission under the limit", i+1)
		}
	}
	if fw.CurrentCount() != 3 {
		t.Errorf("Expected count 3, got %d", fw.CurrentCount())
	}
}

func TestIsAllowed_RejectsOverLimit(t *testing.T) {
	clock := &fakeClock{now: 1000}
	fw := newTestLimiter(2, 60*time.Second, clock)

	fw.IsAllowed()
	fw.IsAllowed()

	if fw.IsAllowed() {
		t.Error("Expected third request in window to be rejected")
	}
	// Rejection must not mutate state
	if fw.CurrentCount() != 2 {
		t.Errorf("Expected count to stay 2 after rejection, got %d", fw.CurrentCount())
	}
}

func TestIsAllowed_WindowExpiry(t *testing.T) {
	clock := &fakeClock{now: 1000}
	fw := newTestLimiter(2, 60*time.Second, clock)

	fw.IsAllowed()
	fw.IsAllowed()
	if fw.IsAllowed() {
		t.Fatal("Expected rejection at the limit")
	}

	// Once the window has elapsed, admissions resume
	clock.Advance(61)
	if !fw.IsAllowed() {
		t.Error("Expected admission after the window elapsed")
	}
	if got := fw.CurrentCount(); got != 1 {
		t.Errorf("Expected count 1 after expiry, got %d", got)
	}
}

func TestCurrentCount_NeverExceedsLimit(t *testing.T) {
	clock := &fakeClock{now: 1000}
	fw := newTestLimiter(5, 60*time.Second, clock)

	for i := 0; i < 20; i++ {
		fw.IsAllowed()
		if got := fw.CurrentCount(); got > fw.Limit() {
			t.Fatalf("Count %d exceeds limit %d", got, fw.Limit())
		}
	}
}

func TestWindowStart_SaturatesAtZero(t *testing.T) {
	// Window larger than the current clock value must not underflow
	clock := &fakeClock{now: 10}
	fw := newTestLimiter(1, time.Hour, clock)

	if !fw.IsAllowed() {
		t.Error("Expected first request to be admitted")
	}
	if fw.CurrentCount() != 1 {
		t.Errorf("Expected count 1, got %d", fw.CurrentCount())
	}
}

func TestIsAllowed_Concurrent(t *testing.T) {
	clock := &fakeClock{now: 1000}
	fw := newTestLimiter(50, 60*time.Second, clock)

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if fw.IsAllowed() {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if admitted != 50 {
		t.Errorf("Expected exactly 50 admissions, got %d", admitted)
	}
}

func TestNewFixedWindow_PanicsOnNonPositiveLimit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for limit 0")
		}
	}()
	NewFixedWindow(0, time.Minute)
}
