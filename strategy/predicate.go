package strategy

import "errors"

// RetryResult reports whether a successful-looking result should still
// trigger a retry (for example a response carrying an embedded failure
// status). The default never retries on a result value.
type RetryResult[T any] func(result T) bool

// RetryError reports whether a failed attempt is worth retrying.
// The default retries on any error.
type RetryError func(err error) bool

// NeverRetryResult accepts every result as final.
func NeverRetryResult[T any]() RetryResult[T] {
	return func(T) bool { return false }
}

// RetryOnValues retries while the result equals one of vals.
func RetryOnValues[T comparable](vals ...T) RetryResult[T] {
	return func(result T) bool {
		for _, v := range vals {
			if result == v {
				return true
			}
		}
		return false
	}
}

// AlwaysRetryError treats every error as retryable.
func AlwaysRetryError() RetryError {
	return func(error) bool { return true }
}

// RetryOn retries only when the error matches (errors.Is) one of targets.
func RetryOn(targets ...error) RetryError {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	}
}

// RetryOnType retries only when the error chain contains an E (errors.As).
func RetryOnType[E error]() RetryError {
	return func(err error) bool {
		var e E
		return errors.As(err, &e)
	}
}

// AnyResult matches when any of ps matches.
func AnyResult[T any](ps ...RetryResult[T]) RetryResult[T] {
	return func(result T) bool {
		for _, p := range ps {
			if p != nil && p(result) {
				return true
			}
		}
		return false
	}
}

// AllResult matches when all of ps match. It matches vacuously when ps is
// empty.
func AllResult[T any](ps ...RetryResult[T]) RetryResult[T] {
	return func(result T) bool {
		for _, p := range ps {
			if p == nil || !p(result) {
				return false
			}
		}
		return true
	}
}

// AnyError matches when any of ps matches.
func AnyError(ps ...RetryError) RetryError {
	return func(err error) bool {
		for _, p := range ps {
			if p != nil && p(err) {
				return true
			}
		}
		return false
	}
}

// AllError matches when all of ps match. It matches vacuously when ps is
// empty.
func AllError(ps ...RetryError) RetryError {
	return func(err error) bool {
		for _, p := range ps {
			if p == nil || !p(err) {
				return false
			}
		}
		return true
	}
}
