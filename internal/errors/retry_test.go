package errors

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_SucceedsAfterTransientError(t *testing.T) {
	// Given: a function that fails twice then succeeds
	attempts := 0
	fn := func() error {
		attempts++
		if attempts < 3 {
			return errors.New("file in use")
		}
		return nil
	}

	// When: retrying with two retries
	cfg := DefaultRetryConfig()
	cfg.InitialDelay = time.Millisecond

	err := Retry(context.Background(), cfg, fn)

	// Then: succeeds on the third attempt
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetry_FailsAfterMaxRetries(t *testing.T) {
	// Given: a function that always fails
	attempts := 0
	sentinel := errors.New("access denied")
	fn := func() error {
		attempts++
		return sentinel
	}

	cfg := RetryConfig{
		MaxRetries:   2,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}

	// When: retrying
	err := Retry(context.Background(), cfg, fn)

	// Then: fails with the last error wrapped
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 retries")
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, attempts)
}

func TestRetry_ZeroRetriesReturnsErrorUnwrapped(t *testing.T) {
	sentinel := errors.New("boom")

	err := Retry(context.Background(), RetryConfig{}, func() error { return sentinel })

	assert.Equal(t, sentinel, err)
}

func TestRetry_RespectsContextCancellation(t *testing.T) {
	// Given: an already cancelled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := Retry(ctx, DefaultRetryConfig(), func() error {
		called = true
		return nil
	})

	// Then: fn never runs
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
