package fallback_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"textanalysis/pkg/fallback"

	"github.com/stretchr/testify/assert"
)

func TestRun_PrimarySucceeds(t *testing.T) {
	secondaryCalled := false

	res := fallback.Run(context.Background(), time.Second,
		func(ctx context.Context) (string, error) { return "api", nil },
		func() string { secondaryCalled = true; return "local" },
	)

	assert.True(t, res.FromPrimary)
	assert.Equal(t, "api", res.Value)
	assert.NoError(t, res.Err)
	assert.False(t, secondaryCalled)
}

func TestRun_PrimaryFails(t *testing.T) {
	calls := 0
	boom := errors.New("boom")

	res := fallback.Run(context.Background(), time.Second,
		func(ctx context.Context) (string, error) { calls++; return "", boom },
		func() string { return "local" },
	)

	assert.False(t, res.FromPrimary)
	assert.Equal(t, "local", res.Value)
	assert.ErrorIs(t, res.Err, boom)
	assert.Equal(t, 1, calls, "primary is never retried")
}

func TestRun_Timeout(t *testing.T) {
	res := fallback.Run(context.Background(), 20*time.Millisecond,
		func(ctx context.Context) (int, error) {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(5 * time.Second):
				return 1, nil
			}
		},
		func() int { return -1 },
	)

	assert.False(t, res.FromPrimary)
	assert.Equal(t, -1, res.Value)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
	assert.Less(t, res.Duration, 5*time.Second)
}

func TestRun_NoTimeoutKeepsParentContext(t *testing.T) {
	res := fallback.Run(context.Background(), 0,
		func(ctx context.Context) (bool, error) {
			_, hasDeadline := ctx.Deadline()
			return hasDeadline, nil
		},
		func() bool { return true },
	)

	assert.True(t, res.FromPrimary)
	assert.False(t, res.Value)
}
