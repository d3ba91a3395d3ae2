package countdown

import (
	"testing"
	"time"
)

func TestTrackerCompletesOnce(t *testing.T) {
	target := base.Add(36 * time.Hour)
	tr := NewTracker(target)

	first := tr.Observe(base)
	if first.State != Pending || first.Completed {
		t.Fatalf("first tick = %+v", first)
	}
	if first.Left.Days != 1 || first.Left.Hours != 12 {
		t.Errorf("first breakdown = %+v", first.Left)
	}

	last := tr.Observe(target.Add(-time.Second))
	if last.Left != (TimeLeft{Seconds: 1, TotalMs: 1000}) {
		t.Errorf("last pending breakdown = %+v", last.Left)
	}

	completions := 0
	for i := 0; i < 5; i++ {
		tick := tr.Observe(target.Add(time.Duration(i) * time.Second))
		if tick.State != Complete {
			t.Fatalf("tick %d state = %v", i, tick.State)
		}
		if tick.Left.TotalMs != 0 || tick.Left.Days != 0 {
			t.Errorf("tick %d left = %+v", i, tick.Left)
		}
		if tick.Completed {
			completions++
		}
	}
	if completions != 1 {
		t.Errorf("completion fired %d times, want 1", completions)
	}
	if !tr.Fired() {
		t.Error("Fired() = false after completion")
	}
}

func TestTrackerAlreadyPast(t *testing.T) {
	tr := NewTracker(base.Add(-time.Hour))

	if tick := tr.Observe(base); !tick.Completed {
		t.Error("first observation of a past target should complete")
	}
	if tick := tr.Observe(base.Add(time.Second)); tick.Completed {
		t.Error("second observation re-fired completion")
	}
}

func TestTrackerUndefined(t *testing.T) {
	tr := NewTracker(time.Time{})

	for i := 0; i < 3; i++ {
		tick := tr.Observe(base.Add(time.Duration(i) * time.Hour))
		if tick.State != Undefined || tick.Completed {
			t.Errorf("tick %d = %+v", i, tick)
		}
	}
}
