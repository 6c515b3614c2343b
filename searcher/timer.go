package searcher

import (
	"context"
	"errors"
	"math"
	"time"
)

// ErrSearchTimeout aborts a search once the time budget runs out. Search
// frames return it unchanged, only the top level drivers absorb it.
var ErrSearchTimeout = errors.New("search timeout")

// Timer reports the time left in the current turn.
type Timer interface {
	Remaining() time.Duration
}

type TimerFunc func() time.Duration

func (f TimerFunc) Remaining() time.Duration {
	return f()
}

type deadline time.Time

// NewDeadline starts a wall clock countdown of the given duration.
func NewDeadline(d time.Duration) Timer {
	return deadline(time.Now().Add(d))
}

func (d deadline) Remaining() time.Duration {
	return time.Until(time.Time(d))
}

// ContextTimer reports the time left until the context deadline, and none at
// all once the context is done.
func ContextTimer(ctx context.Context) Timer {
	return TimerFunc(func() time.Duration {
		if ctx.Err() != nil {
			return 0
		}
		if at, ok := ctx.Deadline(); ok {
			return time.Until(at)
		}
		return math.MaxInt64
	})
}

// Unlimited never runs out.
func Unlimited() Timer {
	return TimerFunc(func() time.Duration { return math.MaxInt64 })
}
