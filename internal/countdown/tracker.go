package countdown

import "time"

// Tick is one observation of the countdown.
type Tick struct {
	Now   time.Time
	State State
	Left  TimeLeft
	// Completed is true only on the observation that first saw the target
	// reached. Later ticks in the Complete state leave it false.
	Completed bool
}

// Tracker is the edge-triggered state machine behind every countdown view.
// It is not safe for concurrent use; each view owns its own.
type Tracker struct {
	target time.Time
	fired  bool
}

// NewTracker tracks target. A zero target leaves the tracker Undefined.
func NewTracker(target time.Time) *Tracker {
	return &Tracker{target: target}
}

func (t *Tracker) Target() time.Time {
	return t.target
}

// Fired reports whether completion has already been signalled.
func (t *Tracker) Fired() bool {
	return t.fired
}

// Observe evaluates the countdown at now.
func (t *Tracker) Observe(now time.Time) Tick {
	tick := Tick{Now: now, State: StateAt(now, t.target)}
	switch tick.State {
	case Undefined:
		return tick
	case Complete:
		tick.Left = TimeLeft{Complete: true}
		if !t.fired {
			t.fired = true
			tick.Completed = true
		}
	default:
		tick.Left = Compute(now, t.target)
	}
	return tick
}
