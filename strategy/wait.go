package strategy

import (
	"math"
	"math/rand"
	"time"
)

// Wait returns how long the executor should pause before the next attempt,
// given the number of attempts performed so far. Values <= 0 mean no wait.
// A Wait is only consulted once a retry has already been decided, so an
// operation that succeeds (or is abandoned) never pays a wait cost.
type Wait func(attempts int) time.Duration

// DefaultWaitCeiling bounds the worst-case pause of the exponential wait
// strategies regardless of how many attempts have elapsed.
const DefaultWaitCeiling = time.Second

// WaitNone never waits. This is the default wait strategy.
func WaitNone() Wait {
	return func(int) time.Duration { return 0 }
}

// WaitConstant always waits for delay between attempts.
func WaitConstant(delay time.Duration) Wait {
	return func(int) time.Duration { return delay }
}

// WaitExponential waits start*base^attempts, capped at DefaultWaitCeiling.
// It returns 0 for attempts <= 0.
func WaitExponential(start time.Duration, base float64) Wait {
	return WaitExponentialCapped(start, base, DefaultWaitCeiling)
}

// WaitExponentialCapped is WaitExponential with a caller-chosen ceiling.
// A ceiling <= 0 means uncapped.
func WaitExponentialCapped(start time.Duration, base float64, ceiling time.Duration) Wait {
	return func(attempts int) time.Duration {
		if attempts <= 0 {
			return 0
		}
		d := time.Duration(math.Round(float64(start) * math.Pow(base, float64(attempts))))
		if d < 0 {
			// float overflow
			d = ceiling
		}
		if ceiling > 0 && d > ceiling {
			return ceiling
		}
		return d
	}
}

// WithFullJitter decorates w so each pause is drawn uniformly from [0, w(n)].
func WithFullJitter(w Wait) Wait {
	return func(attempts int) time.Duration {
		d := w(attempts)
		if d <= 0 {
			return d
		}
		return time.Duration(rand.Float64() * float64(d))
	}
}

// WithEqualJitter decorates w so each pause is drawn uniformly from
// [w(n)/2, w(n)].
func WithEqualJitter(w Wait) Wait {
	return func(attempts int) time.Duration {
		d := w(attempts)
		if d <= 0 {
			return d
		}
		half := float64(d) / 2
		return time.Duration(half + rand.Float64()*half)
	}
}
