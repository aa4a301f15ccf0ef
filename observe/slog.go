package observe

import (
	"context"
	"log/slog"
	"time"
)

// SlogObserver logs the execution lifecycle through a *slog.Logger.
// Attempts and waits are logged at debug level, give-ups and failures at
// warn level.
type SlogObserver struct {
	Logger *slog.Logger
}

// NewSlogObserver returns a SlogObserver. A nil logger means slog.Default().
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{Logger: logger}
}

func (s *SlogObserver) OnStart(ctx context.Context) {
	s.Logger.DebugContext(ctx, "retry: execution started")
}

func (s *SlogObserver) OnAttempt(ctx context.Context, rec AttemptRecord) {
	s.Logger.DebugContext(ctx, "retry: attempt finished",
		slog.Int("attempt", rec.Attempt),
		slog.Duration("elapsed", rec.EndTime.Sub(rec.StartTime)),
		slog.Bool("retry_worthy", rec.RetryWorthy),
		slog.Any("error", rec.Err),
	)
}

func (s *SlogObserver) OnWait(ctx context.Context, attempt int, d time.Duration) {
	s.Logger.DebugContext(ctx, "retry: waiting before next attempt",
		slog.Int("attempt", attempt),
		slog.Duration("wait", d),
	)
}

func (s *SlogObserver) OnGiveUp(ctx context.Context, attempts int, err error) {
	s.Logger.WarnContext(ctx, "retry: attempts exhausted, giving up",
		slog.Int("attempts", attempts),
		slog.Any("error", err),
	)
}

func (s *SlogObserver) OnSuccess(ctx context.Context, attempts int) {
	s.Logger.DebugContext(ctx, "retry: execution succeeded",
		slog.Int("attempts", attempts),
	)
}

func (s *SlogObserver) OnFailure(ctx context.Context, attempts int, err error) {
	s.Logger.WarnContext(ctx, "retry: execution failed",
		slog.Int("attempts", attempts),
		slog.Any("error", err),
	)
}
