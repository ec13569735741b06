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
		MaxRetries:   3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), func() error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsRetries(t *testing.T) {
	wanted := errors.New("permanent failure")
	calls := 0
	err := Do(context.Background(), fastConfig(), func() error {
		calls++
		return wanted
	})

	require.Error(t, err)
	assert.Equal(t, wanted, err)
	assert.Equal(t, 4, calls) // initial attempt + 3 retries
}

func TestDoWithResult_ReturnsValue(t *testing.T) {
	result, err := DoWithResult(context.Background(), fastConfig(), func() (int, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestDoWithResult_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := DoWithResult(ctx, &Config{
		MaxRetries:   5,
		InitialDelay: time.Minute,
		MaxDelay:     time.Minute,
		Multiplier:   2.0,
	}, func() (int, error) {
		calls++
		cancel()
		return 0, errors.New("try again")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDoWithResultIfRetryable_StopsOnPermanentError(t *testing.T) {
	calls := 0
	_, err := DoWithResultIfRetryable(context.Background(), fastConfig(), func() (int, error) {
		calls++
		return 0, errors.New("password authentication failed")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoWithResultIfRetryable_RetriesTransientErrors(t *testing.T) {
	calls := 0
	result, err := DoWithResultIfRetryable(context.Background(), fastConfig(), func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("dial tcp: connection refused")
		}
		return 7, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, result)
	assert.Equal(t, 3, calls)
}

func TestDoIfRetryable_StopsOnPermanentError(t *testing.T) {
	calls := 0
	err := DoIfRetryable(context.Background(), fastConfig(), func() error {
		calls++
		return errors.New("syntax error at or near")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoWithResult_NilConfigUsesDefaults(t *testing.T) {
	result, err := DoWithResult(context.Background(), nil, func() (string, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil", nil, false},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"timeout", errors.New("i/o timeout"), true},
		{"too many connections", errors.New("FATAL: too many connections"), true},
		{"deadlock", errors.New("deadlock detected"), true},
		{"auth failure", errors.New("password authentication failed"), false},
		{"bad sql", errors.New("syntax error at or near"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
		})
	}
}
