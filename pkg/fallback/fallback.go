// Package fallback runs a primary computation under a deadline and
// substitutes a secondary value when it fails.
package fallback

import (
	"context"
	"time"
)

// Result is the value produced by Run along with where it came from
type Result[T any] struct {
	Value T
	// Err is the primary's error when the secondary was used
	Err error
	// FromPrimary is false when the secondary produced Value
	FromPrimary bool
	Duration    time.Duration
}

// Run calls primary once with a context bounded by timeout. Any error from
// primary, including the deadline firing, yields secondary() instead.
// A non-positive timeout leaves the parent deadline in place.
func Run[T any](
	ctx context.Context,
	timeout time.Duration,
	primary func(ctx context.Context) (T, error),
	secondary func() T,
) Result[T] {
	start := time.Now()

	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	value, err := primary(callCtx)
	if err == nil {
		return Result[T]{Value: value, FromPrimary: true, Duration: time.Since(start)}
	}

	return Result[T]{Value: secondary(), Err: err, Duration: time.Since(start)}
}
