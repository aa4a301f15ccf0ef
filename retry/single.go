package retry

import "github.com/aponysus/retrier/strategy"

// SingleAttempt returns a retrier that executes every operation exactly
// once. The operation is never retried and any error is propagated to the
// caller unchanged.
//
// The returned retrier is frozen and safe to share across callers.
func SingleAttempt[T any]() *Retrier[T] {
	return NewBuilder[T]().
		WithStopStrategy(strategy.StopAfter(1)).
		MustBuild()
}
