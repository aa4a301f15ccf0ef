package observe

import (
	"context"
	"time"
)

// MultiObserver fans out events to multiple observers.
type MultiObserver struct {
	Observers []Observer
}

func (m MultiObserver) OnStart(ctx context.Context) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnStart(ctx)
		}
	}
}

func (m MultiObserver) OnAttempt(ctx context.Context, rec AttemptRecord) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnAttempt(ctx, rec)
		}
	}
}

func (m MultiObserver) OnWait(ctx context.Context, attempt int, d time.Duration) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnWait(ctx, attempt, d)
		}
	}
}

func (m MultiObserver) OnGiveUp(ctx context.Context, attempts int, err error) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnGiveUp(ctx, attempts, err)
		}
	}
}

func (m MultiObserver) OnSuccess(ctx context.Context, attempts int) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnSuccess(ctx, attempts)
		}
	}
}

func (m MultiObserver) OnFailure(ctx context.Context, attempts int, err error) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnFailure(ctx, attempts, err)
		}
	}
}
