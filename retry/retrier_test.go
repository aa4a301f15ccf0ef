package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aponysus/retrier/strategy"
)

var errBoom = errors.New("boom")

func alwaysFail(calls *int) Operation[int] {
	return func(context.Context) (int, error) {
		*calls++
		return 0, errBoom
	}
}

func TestExecute_SucceedsFirstAttempt(t *testing.T) {
	r := SingleAttempt[int]()

	calls := 0
	val, err := r.Execute(context.Background(), func(context.Context) (int, error) {
		calls++
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, val)
	assert.Equal(t, 1, calls)
}

func TestExecute_StopAfterN_ExhaustsAndPropagatesLastError(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			r, err := NewBuilder[int]().
				WithStopStrategy(strategy.StopAfter(n)).
				Build()
			require.NoError(t, err)

			calls := 0
			_, err = r.Execute(context.Background(), alwaysFail(&calls))
			assert.Equal(t, n, calls)
			assert.ErrorIs(t, err, errBoom)
		})
	}
}

func TestExecute_ResultRetry_ReturnsFirstAcceptedResult(t *testing.T) {
	r, err := NewBuilder[int]().
		WithStopStrategy(strategy.StopAfter(10)).
		WithResultRetryStrategy(strategy.RetryOnValues(0)).
		Build()
	require.NoError(t, err)

	seq := []int{0, 0, 1}
	calls := 0
	val, err := r.Execute(context.Background(), func(context.Context) (int, error) {
		calls++
		return seq[calls-1], nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, val)
	assert.Equal(t, 3, calls)
}

func TestExecute_FailedRetryWhitelist_NoRetryOnOtherError(t *testing.T) {
	recoverable := errors.New("recoverable")
	r, err := NewBuilder[int]().
		WithStopStrategy(strategy.StopAfter(10)).
		WithFailedRetryStrategy(strategy.RetryOn(recoverable)).
		Build()
	require.NoError(t, err)

	calls := 0
	_, err = r.Execute(context.Background(), alwaysFail(&calls))
	assert.Equal(t, 1, calls)
	// The non-retryable error propagates unmodified.
	assert.Equal(t, errBoom, err)
}

func TestExecute_FailedRetryWhitelist_RetriesOnMatch(t *testing.T) {
	recoverable := errors.New("recoverable")
	r, err := NewBuilder[int]().
		WithStopStrategy(strategy.StopAfter(10)).
		WithFailedRetryStrategy(strategy.RetryOn(recoverable)).
		Build()
	require.NoError(t, err)

	calls := 0
	val, err := r.Execute(context.Background(), func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, fmt.Errorf("attempt failed: %w", recoverable)
		}
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, val)
	assert.Equal(t, 2, calls)
}

func TestExecute_WaitStrategy_InvokedOncePerRetry(t *testing.T) {
	const maxAttempts = 10

	waitCalls := 0
	r, err := NewBuilder[int]().
		WithStopStrategy(strategy.StopAfter(maxAttempts)).
		WithWaitStrategy(func(int) time.Duration {
			waitCalls++
			return time.Millisecond
		}).
		Build()
	require.NoError(t, err)

	var sleeps []time.Duration
	r.sleep = func(_ context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}

	calls := 0
	_, err = r.Execute(context.Background(), alwaysFail(&calls))
	require.Error(t, err)
	assert.Equal(t, maxAttempts, calls)
	// No wait after the final, non-retried attempt.
	assert.Equal(t, maxAttempts-1, waitCalls)
	assert.Len(t, sleeps, maxAttempts-1)
}

func TestExecute_WaitStrategy_NotInvokedOnSuccess(t *testing.T) {
	waitCalls := 0
	r, err := NewBuilder[int]().
		WithWaitStrategy(func(int) time.Duration {
			waitCalls++
			return time.Second
		}).
		Build()
	require.NoError(t, err)

	val, err := r.Execute(context.Background(), func(context.Context) (int, error) {
		return 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, val)
	assert.Zero(t, waitCalls)
}

func TestExecute_WaitReceivesAttemptCount(t *testing.T) {
	var seen []int
	r, err := NewBuilder[int]().
		WithStopStrategy(strategy.StopAfter(4)).
		WithWaitStrategy(func(attempts int) time.Duration {
			seen = append(seen, attempts)
			return 0
		}).
		Build()
	require.NoError(t, err)

	calls := 0
	_, _ = r.Execute(context.Background(), alwaysFail(&calls))
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestExecute_GiveUp_ReceivesLastError(t *testing.T) {
	var gotErr error
	r, err := NewBuilder[int]().
		WithStopStrategy(strategy.StopAfter(3)).
		WithGiveUpStrategy(func(_ int, lastErr error) (int, error) {
			gotErr = lastErr
			return -1, nil
		}).
		Build()
	require.NoError(t, err)

	calls := 0
	val, err := r.Execute(context.Background(), alwaysFail(&calls))
	require.NoError(t, err)
	assert.Equal(t, -1, val)
	assert.Equal(t, errBoom, gotErr)
}

func TestExecute_GiveUp_ReceivesLastResultWhenResultRetryExhausted(t *testing.T) {
	var gotResult int
	var gotErr error
	r, err := NewBuilder[int]().
		WithStopStrategy(strategy.StopAfter(2)).
		WithResultRetryStrategy(strategy.RetryOnValues(0)).
		WithGiveUpStrategy(func(lastResult int, lastErr error) (int, error) {
			gotResult = lastResult
			gotErr = lastErr
			return lastResult, nil
		}).
		Build()
	require.NoError(t, err)

	calls := 0
	_, err = r.Execute(context.Background(), func(context.Context) (int, error) {
		calls++
		return 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, gotResult)
	assert.NoError(t, gotErr)
}

func TestExecute_GiveUp_MayReRaise(t *testing.T) {
	wrapped := errors.New("wrapped")
	r, err := NewBuilder[int]().
		WithStopStrategy(strategy.StopAfter(2)).
		WithGiveUpStrategy(func(_ int, lastErr error) (int, error) {
			return 0, fmt.Errorf("%w: %w", wrapped, lastErr)
		}).
		Build()
	require.NoError(t, err)

	calls := 0
	_, err = r.Execute(context.Background(), alwaysFail(&calls))
	assert.ErrorIs(t, err, wrapped)
	assert.ErrorIs(t, err, errBoom)
}

func TestExecute_ContextCanceledBeforeFirstAttempt_ZeroCalls(t *testing.T) {
	r := SingleAttempt[int]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := r.Execute(ctx, func(context.Context) (int, error) {
		calls++
		return 0, nil
	})
	assert.Zero(t, calls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecute_CancellationDuringAttempt_SkipsGiveUp(t *testing.T) {
	giveUpCalls := 0
	r, err := NewBuilder[int]().
		WithStopStrategy(strategy.StopAfter(10)).
		WithGiveUpStrategy(func(lastResult int, lastErr error) (int, error) {
			giveUpCalls++
			return lastResult, lastErr
		}).
		Build()
	require.NoError(t, err)

	calls := 0
	_, err = r.Execute(context.Background(), func(context.Context) (int, error) {
		calls++
		return 0, fmt.Errorf("request aborted: %w", context.Canceled)
	})
	assert.Equal(t, 1, calls)
	assert.Zero(t, giveUpCalls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecute_CancellationDuringWait_SkipsGiveUp(t *testing.T) {
	giveUpCalls := 0
	r, err := NewBuilder[int]().
		WithStopStrategy(strategy.StopAfter(10)).
		WithWaitStrategy(strategy.WaitConstant(time.Minute)).
		WithGiveUpStrategy(func(lastResult int, lastErr error) (int, error) {
			giveUpCalls++
			return lastResult, lastErr
		}).
		Build()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	sleeping := make(chan struct{})
	r.sleep = func(ctx context.Context, _ time.Duration) error {
		close(sleeping)
		<-ctx.Done()
		return ctx.Err()
	}

	calls := 0
	done := make(chan error, 1)
	go func() {
		_, err := r.Execute(ctx, alwaysFail(&calls))
		done <- err
	}()

	<-sleeping
	cancel()
	err = <-done

	assert.Equal(t, 1, calls)
	assert.Zero(t, giveUpCalls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecute_CanceledContextAfterAttempt_StopsRetrying(t *testing.T) {
	r, err := NewBuilder[int]().
		WithStopStrategy(strategy.StopAfter(10)).
		Build()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err = r.Execute(ctx, func(context.Context) (int, error) {
		calls++
		cancel()
		return 0, errBoom
	})
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecute_OperationDeadlineIsRetryable(t *testing.T) {
	// A per-attempt sub-timeout surfaced by the operation is an ordinary
	// retryable failure, not a cancellation of the whole execution.
	r, err := NewBuilder[int]().
		WithStopStrategy(strategy.StopAfter(3)).
		Build()
	require.NoError(t, err)

	calls := 0
	val, err := r.Execute(context.Background(), func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, fmt.Errorf("subrequest: %w", context.DeadlineExceeded)
		}
		return 9, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 9, val)
	assert.Equal(t, 3, calls)
}

func TestExecute_NilContext_UsesBackground(t *testing.T) {
	r := SingleAttempt[string]()

	val, err := r.Execute(nil, func(ctx context.Context) (string, error) {
		require.NotNil(t, ctx)
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", val)
}

func TestExecute_ZeroValueClearedOnError(t *testing.T) {
	r, err := NewBuilder[string]().
		WithStopStrategy(strategy.StopAfter(1)).
		WithGiveUpStrategy(func(lastResult string, lastErr error) (string, error) {
			// The result slot must be cleared whenever an error is set.
			assert.Empty(t, lastResult)
			return lastResult, lastErr
		}).
		Build()
	require.NoError(t, err)

	_, err = r.Execute(context.Background(), func(context.Context) (string, error) {
		return "partial", errBoom
	})
	assert.ErrorIs(t, err, errBoom)
}

func TestExecute_ConcurrentUseOfSharedRetrier(t *testing.T) {
	r, err := NewBuilder[int]().
		WithStopStrategy(strategy.StopAfter(5)).
		Build()
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			calls := 0
			val, err := r.Execute(context.Background(), func(context.Context) (int, error) {
				calls++
				if calls < 3 {
					return 0, errBoom
				}
				return calls, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 3, val)
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
