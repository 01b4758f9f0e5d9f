package await_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-forge/internal/await"
)

func TestUntilSucceedsAfterRetries(t *testing.T) {
	calls := 0
	failed := false

	err := await.Until(context.Background(), await.Options{
		Name:      "redis",
		Attempts:  5,
		Interval:  time.Millisecond,
		OnFailure: func(error) { failed = true },
	}, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.False(t, failed)
}

func TestUntilCallsFailureOnceWhenExhausted(t *testing.T) {
	calls := 0
	var failures []error

	err := await.Until(context.Background(), await.Options{
		Name:      "postgres",
		Attempts:  3,
		OnFailure: func(err error) { failures = append(failures, err) },
	}, func(ctx context.Context) error {
		calls++
		return errors.New("boom")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres not ready")
	assert.Equal(t, 3, calls)
	require.Len(t, failures, 1)
	assert.Equal(t, err, failures[0])
}

func TestUntilAppliesPerAttemptTimeout(t *testing.T) {
	err := await.Until(context.Background(), await.Options{
		Name:     "slow",
		Attempts: 2,
		Timeout:  5 * time.Millisecond,
	}, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestUntilStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := await.Until(ctx, await.Options{Name: "x", Attempts: 10, Interval: time.Hour}, func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}
