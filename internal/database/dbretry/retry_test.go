package dbretry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/promptforge/promptforge/internal/database/dbretry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryableError(t *testing.T) {
	t.Parallel()

	assert.False(t, dbretry.IsRetryableError(nil))
	assert.False(t, dbretry.IsRetryableError(errors.New("duplicate key value violates unique constraint")))
	assert.True(t, dbretry.IsRetryableError(errors.New("read tcp: connection reset by peer")))
	assert.True(t, dbretry.IsRetryableError(errors.New("dial tcp: connection refused")))
	assert.True(t, dbretry.IsRetryableError(context.DeadlineExceeded))
}

func TestOperationRetriesTransientErrors(t *testing.T) {
	t.Parallel()

	calls := 0
	result, err := dbretry.Operation(t.Context(), func(_ context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("connection refused")
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, calls)
}

func TestOperationStopsOnPermanentError(t *testing.T) {
	t.Parallel()

	permanent := errors.New("syntax error at or near")

	calls := 0
	_, err := dbretry.Operation(t.Context(), func(_ context.Context) (int, error) {
		calls++
		return 0, permanent
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestNoResultPropagatesSentinels(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("row missing")

	err := dbretry.NoResult(t.Context(), func(_ context.Context) error {
		return sentinel
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}
