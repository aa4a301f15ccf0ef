// Package observe defines the lifecycle hooks emitted by the retry executor
// and a few ready-made observers. Observers are optional; the executor runs
// with a no-op observer unless one is configured.
package observe

import (
	"context"
	"time"
)

// AttemptRecord describes a single completed attempt.
type AttemptRecord struct {
	Attempt   int
	StartTime time.Time
	EndTime   time.Time

	// Value is the result produced by the attempt, if any. It is nil when
	// the attempt failed with an error.
	Value any
	Err   error

	// RetryWorthy reports how the configured predicates classified the
	// attempt: true means the outcome warrants another attempt.
	RetryWorthy bool
}

// Observer receives lifecycle callbacks for a single execution.
//
// Callbacks run synchronously on the executing goroutine; implementations
// should return quickly.
type Observer interface {
	// OnStart fires once, before the first attempt.
	OnStart(ctx context.Context)

	// OnAttempt fires after every attempt has been classified.
	OnAttempt(ctx context.Context, rec AttemptRecord)

	// OnWait fires before the executor pauses between attempts.
	OnWait(ctx context.Context, attempt int, d time.Duration)

	// OnGiveUp fires when attempts are exhausted, just before the give-up
	// policy resolves the call. It never fires for a cancelled execution.
	OnGiveUp(ctx context.Context, attempts int, err error)

	// OnSuccess and OnFailure fire once each execution, with the final
	// outcome after the loop has resolved.
	OnSuccess(ctx context.Context, attempts int)
	OnFailure(ctx context.Context, attempts int, err error)
}

// BaseObserver implements Observer with no-op methods.
//
// Users can embed BaseObserver to implement only the callbacks they need.
type BaseObserver struct{}

func (BaseObserver) OnStart(context.Context) {}
func (BaseObserver) OnAttempt(context.Context, AttemptRecord) {}
func (BaseObserver) OnWait(context.Context, int, time.Duration) {}
func (BaseObserver) OnGiveUp(context.Context, int, error) {}
func (BaseObserver) OnSuccess(context.Context, int) {}
func (BaseObserver) OnFailure(context.Context, int, error) {}
