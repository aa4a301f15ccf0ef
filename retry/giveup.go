package retry

// GiveUp decides the final outcome once attempts are exhausted without
// cancellation. Exactly one of lastResult/lastErr is meaningful: lastErr is
// non-nil when the final attempt failed, otherwise lastResult holds the
// final (retry-worthy but never accepted) result.
//
// The executor invokes it at most once per Execute call and treats it as an
// opaque terminal hook: it may return a substitute value, wrap the error, or
// re-raise it.
type GiveUp[T any] func(lastResult T, lastErr error) (T, error)

// DefaultGiveUp re-raises the last error unchanged when one exists, and
// otherwise returns the last result as-is.
func DefaultGiveUp[T any]() GiveUp[T] {
	return func(lastResult T, lastErr error) (T, error) {
		if lastErr != nil {
			var zero T
			return zero, lastErr
		}
		return lastResult, nil
	}
}

// GiveUpWithValue discards the last outcome and returns v.
func GiveUpWithValue[T any](v T) GiveUp[T] {
	return func(T, error) (T, error) {
		return v, nil
	}
}
