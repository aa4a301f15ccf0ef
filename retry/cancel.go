package retry

import "context"

// maxCauseDepth bounds the unwrap traversal so a malformed cause cycle
// cannot loop forever.
const maxCauseDepth = 32

// isCancellation reports whether err is, or wraps, context.Canceled.
//
// context.DeadlineExceeded inside an operation error chain is deliberately
// not treated as cancellation: a per-attempt sub-timeout is an ordinary
// retryable failure. The executor observes its own context's deadline
// separately via ctx.Err().
func isCancellation(err error) bool {
	budget := maxCauseDepth
	return isCancellationBudget(err, &budget)
}

// isCancellationBudget spends one shared node budget across both unwrap
// shapes, so a cycle routed through a multi-error unwrap terminates just
// like one on the single-unwrap path, in at most maxCauseDepth steps.
func isCancellationBudget(err error, budget *int) bool {
	for err != nil {
		if *budget <= 0 {
			return false
		}
		*budget--

		if err == context.Canceled {
			return true
		}
		switch x := err.(type) {
		case interface{ Unwrap() error }:
			err = x.Unwrap()
		case interface{ Unwrap() []error }:
			for _, e := range x.Unwrap() {
				if isCancellationBudget(e, budget) {
					return true
				}
			}
			return false
		default:
			return false
		}
	}
	return false
}
