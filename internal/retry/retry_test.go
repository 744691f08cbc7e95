package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() *Config {
	return &Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	r := New(fastConfig())
	calls := 0
	result := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, result.Err)
	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesTemporaryErrors(t *testing.T) {
	r := New(fastConfig())
	calls := 0
	result := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return &TemporaryError{Err: errors.New("flaky")}
		}
		return nil
	})
	require.NoError(t, result.Err)
	assert.Equal(t, 3, result.Attempts)
}

func TestDoStopsOnPermanentError(t *testing.T) {
	r := New(fastConfig())
	calls := 0
	result := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return &PermanentError{Err: errors.New("bad request")}
	})
	require.Error(t, result.Err)
	assert.Equal(t, 1, calls)
}

func TestDoExhaustsAttempts(t *testing.T) {
	r := New(fastConfig())
	result := r.Do(context.Background(), func(ctx context.Context) error {
		return &TemporaryError{Err: errors.New("always failing")}
	})
	require.Error(t, result.Err)
	assert.Equal(t, 3, result.Attempts)
}

func TestDoRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := New(fastConfig())
	result := r.Do(ctx, func(ctx context.Context) error {
		return nil
	})
	require.Error(t, result.Err)
}

func TestDefaultRetryIf(t *testing.T) {
	assert.False(t, DefaultRetryIf(nil))
	assert.True(t, DefaultRetryIf(&TemporaryError{Err: errors.New("x")}))
	assert.False(t, DefaultRetryIf(&PermanentError{Err: errors.New("x")}))
	assert.True(t, DefaultRetryIf(context.DeadlineExceeded))
	assert.False(t, DefaultRetryIf(errors.New("plain error")))
}
