// Package strategy provides the pluggable decision functions consumed by the
// retry executor: stop strategies, wait strategies, and the result/error
// retry predicates, along with factories and combinators for each.
//
// All values produced by this package are pure functions over small inputs
// and are safe to share across concurrently running executions.
package strategy

// Stop reports whether the executor should stop requesting more attempts.
// The input is the number of attempts performed so far, including the
// attempt that just completed, so it is always >= 1 when invoked by the
// executor.
type Stop func(attempts int) bool

// StopNever never stops. This is the default stop strategy: the executor
// keeps retrying until a strategy or the context says otherwise.
func StopNever() Stop {
	return func(int) bool { return false }
}

// StopAfter limits the total number of attempts to maxAttempts.
func StopAfter(maxAttempts int) Stop {
	return func(attempts int) bool { return attempts >= maxAttempts }
}
