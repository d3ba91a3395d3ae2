// Package countdown turns a target instant into the remaining-time breakdown
// shown by every view, and tracks the one-way Pending to Complete transition.
package countdown

import (
	"fmt"
	"math"
	"time"
)

const (
	msPerSecond = int64(time.Second / time.Millisecond)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// State is the countdown's logical state.
type State int

const (
	// Undefined means there is no target, i.e. no profile yet.
	Undefined State = iota
	Pending
	Complete
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Complete:
		return "complete"
	}
	return "undefined"
}

// TimeLeft is the floor decomposition of the time remaining until the target.
type TimeLeft struct {
	Days     int   `json:"days"`
	Hours    int   `json:"hours"`
	Minutes  int   `json:"minutes"`
	Seconds  int   `json:"seconds"`
	TotalMs  int64 `json:"total"`
	Complete bool  `json:"isComplete"`
}

// Total returns the remaining time as a Duration.
func (t TimeLeft) Total() time.Duration {
	return time.Duration(t.TotalMs) * time.Millisecond
}

// String renders the breakdown as "1d 12h 00m 00s".
func (t TimeLeft) String() string {
	return fmt.Sprintf("%dd %02dh %02dm %02ds", t.Days, t.Hours, t.Minutes, t.Seconds)
}

func deltaMs(now, target time.Time) int64 {
	return target.Sub(now).Milliseconds()
}

// Compute breaks target-now into days, hours, minutes and seconds by
// successive floor division. Calendar months and DST are ignored; only the
// instant difference counts. A target at or before now yields all zeros.
func Compute(now, target time.Time) TimeLeft {
	delta := deltaMs(now, target)
	if delta <= 0 {
		return TimeLeft{Complete: true}
	}
	return TimeLeft{
		Days:    int(delta / msPerDay),
		Hours:   int(delta % msPerDay / msPerHour),
		Minutes: int(delta % msPerHour / msPerMinute),
		Seconds: int(delta % msPerMinute / msPerSecond),
		TotalMs: delta,
	}
}

// DaysRemaining is the summary figure: whole days rounded up, never negative.
// It differs from Compute(...).Days whenever a partial day remains.
func DaysRemaining(now, target time.Time) int {
	delta := deltaMs(now, target)
	if delta <= 0 {
		return 0
	}
	return int(math.Ceil(float64(delta) / float64(msPerDay)))
}

// DaysWaited is the rounded-down day count used by the stats dashboard.
func DaysWaited(now, target time.Time) int {
	delta := deltaMs(now, target)
	if delta <= 0 {
		return 0
	}
	return int(delta / msPerDay)
}

// StateAt classifies now against target. A zero target is Undefined.
func StateAt(now, target time.Time) State {
	switch {
	case target.IsZero():
		return Undefined
	case deltaMs(now, target) <= 0:
		return Complete
	}
	return Pending
}
