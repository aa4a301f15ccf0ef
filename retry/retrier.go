// Package retry implements the retry executor: a control loop that invokes
// an operation repeatedly according to a frozen set of strategies until it
// succeeds, is abandoned, or is cancelled.
package retry

import (
	"context"
	"time"

	"github.com/aponysus/retrier/observe"
	"github.com/aponysus/retrier/strategy"
)

// Operation is a single unit of work executed under retry. It receives the
// execution context and should respect its cancellation if it performs
// blocking work; the executor itself only observes the context between
// attempts and during inter-attempt waits.
type Operation[T any] func(ctx context.Context) (T, error)

// Retrier executes operations according to a frozen strategy set.
//
// A Retrier is immutable after Build and safe for concurrent use: all
// per-call state (attempt count, last result, last error) is local to one
// Execute invocation.
type Retrier[T any] struct {
	stop        strategy.Stop
	wait        strategy.Wait
	retryResult strategy.RetryResult[T]
	retryError  strategy.RetryError
	giveUp      GiveUp[T]

	observer      observe.Observer
	recoverPanics bool

	// overridable in tests
	clock func() time.Time
	sleep func(context.Context, time.Duration) error
}

// Execute invokes op, retrying according to the configured strategies.
//
// Each attempt is classified as retry-worthy either by the result predicate
// (when op returns a value) or by the error predicate (when op fails). The
// loop continues while the outcome is retry-worthy, the stop strategy has
// not fired, and no cancellation has been observed. Once attempts are
// exhausted the give-up policy resolves the call; a cancellation bypasses
// the give-up policy entirely and is returned as-is.
func (r *Retrier[T]) Execute(ctx context.Context, op Operation[T]) (T, error) {
	var zero T

	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	r.observer.OnStart(ctx)

	var (
		attempts      int
		attemptFailed bool
		cancelled     bool
		result        T
		lastErr       error
	)

	for {
		attempts++

		start := r.clock()
		result, lastErr = r.attempt(ctx, op)
		end := r.clock()

		rec := observe.AttemptRecord{
			Attempt:   attempts,
			StartTime: start,
			EndTime:   end,
			Err:       lastErr,
		}
		if lastErr != nil {
			// Exactly one of result/lastErr is meaningful per attempt.
			result = zero
			attemptFailed = r.retryError(lastErr)
		} else {
			attemptFailed = r.retryResult(result)
			rec.Value = result
		}
		rec.RetryWorthy = attemptFailed
		r.observer.OnAttempt(ctx, rec)

		cancelled = ctx.Err() != nil || isCancellation(lastErr)

		shouldRetry := !cancelled && attemptFailed && !r.stop(attempts)

		if shouldRetry {
			if d := r.wait(attempts); d > 0 {
				r.observer.OnWait(ctx, attempts, d)
				if err := r.sleep(ctx, d); err != nil {
					shouldRetry = false
					cancelled = true
				}
			}
		}

		if !shouldRetry {
			break
		}
	}

	if cancelled {
		err := ctx.Err()
		if err == nil {
			// The operation surfaced a cancellation-type error on its own.
			err = lastErr
		}
		r.observer.OnFailure(ctx, attempts, err)
		return zero, err
	}

	if attemptFailed {
		r.observer.OnGiveUp(ctx, attempts, lastErr)
		v, err := r.giveUp(result, lastErr)
		if err != nil {
			r.observer.OnFailure(ctx, attempts, err)
			return v, err
		}
		r.observer.OnSuccess(ctx, attempts)
		return v, nil
	}

	if lastErr != nil {
		// The last attempt failed but the error predicate declined to
		// retry: propagate the error unchanged.
		r.observer.OnFailure(ctx, attempts, lastErr)
		return zero, lastErr
	}

	r.observer.OnSuccess(ctx, attempts)
	return result, nil
}

func (r *Retrier[T]) attempt(ctx context.Context, op Operation[T]) (val T, err error) {
	if r.recoverPanics {
		defer func() {
			if rec := recover(); rec != nil {
				var zero T
				val = zero
				err = newPanicError(rec)
			}
		}()
	}
	return op(ctx)
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer func() {
		if !timer.Stop() {
			select {
			case <-timer.C: // drain any pending tick so the channel doesn't retain value
			default:
			}
		}
	}()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
