package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoValue_SucceedsAfterRetries(t *testing.T) {
	attempts := 0
	result, err := DoValue(context.Background(), func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("temporary failure")
		}
		return "success", nil
	}, 5, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, "success", result)
	assert.Equal(t, 3, attempts, "operation should run exactly 3 times")
}

func TestDo_SucceedsImmediately(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		return nil
	}, 5, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDo_PropagatesLastError(t *testing.T) {
	attempts := 0
	first := errors.New("first")
	last := errors.New("last")

	err := Do(context.Background(), func() error {
		attempts++
		if attempts == 1 {
			return first
		}
		return last
	}, 2, time.Millisecond)

	// maxRetries=2 means 3 total attempts
	assert.Equal(t, 3, attempts)
	assert.ErrorIs(t, err, last)
}

func TestDo_ZeroRetriesRunsOnce(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		return errors.New("nope")
	}, 0, time.Millisecond)

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDo_BackoffDoubles(t *testing.T) {
	attempts := 0
	start := time.Now()

	_ = Do(context.Background(), func() error {
		attempts++
		return errors.New("always fails")
	}, 3, 10*time.Millisecond)

	// Sleeps are 10 + 20 + 40 = 70ms minimum
	elapsed := time.Since(start)
	assert.Equal(t, 4, attempts)
	assert.GreaterOrEqual(t, elapsed, 70*time.Millisecond)
}

func TestDo_ContextCancellationAbortsSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := Do(ctx, func() error {
		attempts++
		return errors.New("failing")
	}, 10, time.Hour)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts, "cancellation during backoff should stop further attempts")
}
