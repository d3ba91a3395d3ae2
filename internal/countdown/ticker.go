package countdown

import (
	"context"
	"time"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/logger"
)

// Ticker drives a Tracker from a periodic timer until its context ends.
type Ticker struct {
	Tracker  *Tracker
	Interval time.Duration
	Now      func() time.Time
	// OnComplete runs once, right after the tick that completes the countdown.
	OnComplete func(Tick)
	// StopOnComplete makes Run return nil after the completing tick.
	StopOnComplete bool

	// source is swapped in tests.
	source func(time.Duration) (<-chan time.Time, func())
}

func NewTicker(target time.Time) *Ticker {
	return &Ticker{
		Tracker:  NewTracker(target),
		Interval: constants.DefaultTickInterval,
		Now:      time.Now,
	}
}

func stdSource(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Run emits a tick immediately and then once per Interval. The underlying
// timer is released on every return path. It returns ctx.Err() when
// cancelled.
func (t *Ticker) Run(ctx context.Context, emit func(Tick)) error {
	interval := t.Interval
	if interval <= 0 {
		interval = constants.DefaultTickInterval
	}
	now := t.Now
	if now == nil {
		now = time.Now
	}
	source := t.source
	if source == nil {
		source = stdSource
	}

	ch, stop := source(interval)
	defer stop()

	logger.Debug("countdown ticker started", "target", t.Tracker.Target(), "interval", interval)

	if t.step(now(), emit) {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			logger.Debug("countdown ticker stopped", "reason", ctx.Err())
			return ctx.Err()
		case <-ch:
			if t.step(now(), emit) {
				return nil
			}
		}
	}
}

// step observes one tick and reports whether Run should return.
func (t *Ticker) step(now time.Time, emit func(Tick)) bool {
	tick := t.Tracker.Observe(now)
	if emit != nil {
		emit(tick)
	}
	if !tick.Completed {
		return false
	}
	logger.Info("countdown complete", "target", t.Tracker.Target())
	if t.OnComplete != nil {
		t.OnComplete(tick)
	}
	return t.StopOnComplete
}
