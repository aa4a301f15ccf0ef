// Package retrier is the convenience surface of the retrier module.
//
// The actual executor lives in the retry package and the pluggable decision
// functions in the strategy package; this package re-exports the common
// types and provides one-shot helpers for callers that do not need a
// configured retrier.
package retrier

import (
	"context"

	"github.com/aponysus/retrier/retry"
	"github.com/aponysus/retrier/strategy"
)

// Operation is a single unit of work executed under retry.
type Operation[T any] = retry.Operation[T]

// Builder assembles a retry.Retrier.
type Builder[T any] = retry.Builder[T]

// Stop, Wait, RetryResult and RetryError are the four strategy kinds.
type (
	Stop               = strategy.Stop
	Wait               = strategy.Wait
	RetryResult[T any] = strategy.RetryResult[T]
	RetryError         = strategy.RetryError
)

// NewBuilder returns a Builder populated with the default strategies.
func NewBuilder[T any]() *Builder[T] {
	return retry.NewBuilder[T]()
}

// Do executes op exactly once under a single-attempt policy and propagates
// any error unchanged.
func Do(ctx context.Context, op func(ctx context.Context) error) error {
	_, err := retry.SingleAttempt[struct{}]().Execute(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// DoValue executes op exactly once under a single-attempt policy.
func DoValue[T any](ctx context.Context, op Operation[T]) (T, error) {
	return retry.SingleAttempt[T]().Execute(ctx, op)
}
