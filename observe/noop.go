package observe

import (
	"context"
	"time"
)

// NoopObserver implements Observer with no-op methods.
type NoopObserver struct{}

func (NoopObserver) OnStart(context.Context) {}
func (NoopObserver) OnAttempt(context.Context, AttemptRecord) {}
func (NoopObserver) OnWait(context.Context, int, time.Duration) {}
func (NoopObserver) OnGiveUp(context.Context, int, error) {}
func (NoopObserver) OnSuccess(context.Context, int) {}
func (NoopObserver) OnFailure(context.Context, int, error) {}
