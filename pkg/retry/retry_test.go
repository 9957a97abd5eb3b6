package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsAfterFailures(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	}, WithMaxAttempts(5), WithBaseDelay(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	cause := errors.New("still down")
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		return cause
	}, WithMaxAttempts(3), WithBaseDelay(time.Millisecond))

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 3, attempts)
}

func TestDo_PermanentStopsImmediately(t *testing.T) {
	cause := errors.New("bad payload")
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		return Permanent(cause)
	}, WithMaxAttempts(5), WithBaseDelay(time.Millisecond))

	assert.Equal(t, cause, err)
	assert.Equal(t, 1, attempts)
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, func() error {
		return errors.New("fail")
	}, WithMaxAttempts(3), WithBaseDelay(time.Hour))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDo_MaxDelayCapsBackoff(t *testing.T) {
	attempts := 0
	start := time.Now()
	err := Do(context.Background(), func() error {
		attempts++
		return errors.New("transient")
	}, WithMaxAttempts(3), WithBaseDelay(time.Hour), WithMaxDelay(time.Millisecond))

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCalculateBackoff(t *testing.T) {
	assert.Equal(t, time.Second, calculateBackoff(0, time.Second, 30*time.Second))
	assert.Equal(t, 4*time.Second, calculateBackoff(2, time.Second, 30*time.Second))
	assert.Equal(t, 30*time.Second, calculateBackoff(10, time.Second, 30*time.Second))
}
