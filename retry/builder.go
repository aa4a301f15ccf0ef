package retry

import (
	"errors"
	"fmt"
	"time"

	"github.com/aponysus/retrier/observe"
	"github.com/aponysus/retrier/strategy"
)

// ErrNilStrategy is returned by Build when a nil strategy was passed to one
// of the builder setters. Missing strategies are rejected when the set is
// assembled rather than at call time.
var ErrNilStrategy = errors.New("retrier: nil strategy")

// NilStrategyError reports which builder field received a nil value.
type NilStrategyError struct {
	Field string
}

func (e *NilStrategyError) Error() string {
	return fmt.Sprintf("retrier: nil strategy: %s", e.Field)
}

func (e *NilStrategyError) Is(target error) bool {
	return target == ErrNilStrategy
}

// Builder assembles a Retrier. The zero value is not usable; start from
// NewBuilder, which fills in the defaults:
//
//   - stop strategy: never stop
//   - wait strategy: no wait
//   - result retry strategy: never retry on a result value
//   - error retry strategy: retry on any error
//   - give-up policy: re-raise the last error, else return the last result
//
// Build validates the configuration and freezes it; the returned Retrier is
// immutable and the Builder should not be reused afterwards.
type Builder[T any] struct {
	stop        strategy.Stop
	wait        strategy.Wait
	retryResult strategy.RetryResult[T]
	retryError  strategy.RetryError
	giveUp      GiveUp[T]

	observer      observe.Observer
	recoverPanics bool

	errs []error
}

// NewBuilder returns a Builder populated with the default strategies.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{
		stop:        strategy.StopNever(),
		wait:        strategy.WaitNone(),
		retryResult: strategy.NeverRetryResult[T](),
		retryError:  strategy.AlwaysRetryError(),
		giveUp:      DefaultGiveUp[T](),
		observer:    observe.NoopObserver{},
	}
}

// WithStopStrategy sets the stop strategy.
func (b *Builder[T]) WithStopStrategy(s strategy.Stop) *Builder[T] {
	if s == nil {
		b.errs = append(b.errs, &NilStrategyError{Field: "stop"})
		return b
	}
	b.stop = s
	return b
}

// WithWaitStrategy sets the wait strategy.
func (b *Builder[T]) WithWaitStrategy(w strategy.Wait) *Builder[T] {
	if w == nil {
		b.errs = append(b.errs, &NilStrategyError{Field: "wait"})
		return b
	}
	b.wait = w
	return b
}

// WithResultRetryStrategy sets the predicate that decides whether a
// successful result should still trigger a retry.
func (b *Builder[T]) WithResultRetryStrategy(p strategy.RetryResult[T]) *Builder[T] {
	if p == nil {
		b.errs = append(b.errs, &NilStrategyError{Field: "result_retry"})
		return b
	}
	b.retryResult = p
	return b
}

// WithFailedRetryStrategy sets the predicate that decides whether a failed
// attempt is retryable.
func (b *Builder[T]) WithFailedRetryStrategy(p strategy.RetryError) *Builder[T] {
	if p == nil {
		b.errs = append(b.errs, &NilStrategyError{Field: "failed_retry"})
		return b
	}
	b.retryError = p
	return b
}

// WithGiveUpStrategy sets the terminal hook invoked when attempts are
// exhausted without cancellation.
func (b *Builder[T]) WithGiveUpStrategy(g GiveUp[T]) *Builder[T] {
	if g == nil {
		b.errs = append(b.errs, &NilStrategyError{Field: "give_up"})
		return b
	}
	b.giveUp = g
	return b
}

// WithObserver sets the observer. A nil observer restores the no-op default.
func (b *Builder[T]) WithObserver(o observe.Observer) *Builder[T] {
	if o == nil {
		o = observe.NoopObserver{}
	}
	b.observer = o
	return b
}

// WithRecoverPanics controls whether a panicking operation is captured and
// converted into a *PanicError instead of unwinding through Execute.
func (b *Builder[T]) WithRecoverPanics(enabled bool) *Builder[T] {
	b.recoverPanics = enabled
	return b
}

// Build validates the configuration and returns the frozen Retrier.
func (b *Builder[T]) Build() (*Retrier[T], error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return &Retrier[T]{
		stop:          b.stop,
		wait:          b.wait,
		retryResult:   b.retryResult,
		retryError:    b.retryError,
		giveUp:        b.giveUp,
		observer:      b.observer,
		recoverPanics: b.recoverPanics,
		clock:         time.Now,
		sleep:         sleepWithContext,
	}, nil
}

// MustBuild is like Build but panics on configuration errors. Intended for
// package-level construction of retries with known-good configuration.
func (b *Builder[T]) MustBuild() *Retrier[T] {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}
