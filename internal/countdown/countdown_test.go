package countdown

import (
	"testing"
	"time"
)

var base = time.Date(2025, 2, 12, 6, 0, 0, 0, time.UTC)

func TestCompute(t *testing.T) {
	target := base.Add(36 * time.Hour)

	tests := []struct {
		name string
		now  time.Time
		want TimeLeft
	}{
		{
			name: "thirty six hours out",
			now:  base,
			want: TimeLeft{Days: 1, Hours: 12, TotalMs: 36 * 3600 * 1000},
		},
		{
			name: "one second before",
			now:  target.Add(-time.Second),
			want: TimeLeft{Seconds: 1, TotalMs: 1000},
		},
		{
			name: "one day less a second",
			now:  target.Add(-(24*time.Hour - time.Second)),
			want: TimeLeft{Hours: 23, Minutes: 59, Seconds: 59, TotalMs: 86399000},
		},
		{
			name: "sub-second remainder floors to zero seconds",
			now:  target.Add(-999 * time.Millisecond),
			want: TimeLeft{TotalMs: 999},
		},
		{
			name: "exactly at target",
			now:  target,
			want: TimeLeft{Complete: true},
		},
		{
			name: "after target",
			now:  target.Add(72 * time.Hour),
			want: TimeLeft{Complete: true},
		},
		{
			name: "mixed units",
			now:  target.Add(-(3*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second)),
			want: TimeLeft{Days: 3, Hours: 4, Minutes: 5, Seconds: 6, TotalMs: (3*86400 + 4*3600 + 5*60 + 6) * 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(tt.now, target); got != tt.want {
				t.Errorf("Compute() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDaysRemainingRoundsUp(t *testing.T) {
	target := base.Add(36 * time.Hour)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "a day and a half", now: base, want: 2},
		{name: "exactly one day", now: target.Add(-24 * time.Hour), want: 1},
		{name: "one second", now: target.Add(-time.Second), want: 1},
		{name: "at target", now: target, want: 0},
		{name: "past target clamps", now: target.Add(time.Hour), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysRemaining(tt.now, target); got != tt.want {
				t.Errorf("DaysRemaining() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFloorAndCeilDisagreeWithinADay(t *testing.T) {
	target := base.Add(36 * time.Hour)
	if Compute(base, target).Days == DaysRemaining(base, target) {
		t.Error("live breakdown and summary should differ for a partial day")
	}
	if got := DaysWaited(base, target); got != 1 {
		t.Errorf("DaysWaited() = %d, want 1", got)
	}
	if got := DaysWaited(target.Add(time.Hour), target); got != 0 {
		t.Errorf("DaysWaited() past target = %d, want 0", got)
	}
}

func TestStateAt(t *testing.T) {
	target := base.Add(time.Minute)

	if got := StateAt(base, time.Time{}); got != Undefined {
		t.Errorf("StateAt(zero target) = %v", got)
	}
	if got := StateAt(base, target); got != Pending {
		t.Errorf("StateAt(before) = %v", got)
	}
	if got := StateAt(target, target); got != Complete {
		t.Errorf("StateAt(at) = %v", got)
	}
}

func TestTimeLeftString(t *testing.T) {
	left := TimeLeft{Days: 1, Hours: 2, Minutes: 3, Seconds: 4}
	if got := left.String(); got != "1d 02h 03m 04s" {
		t.Errorf("String() = %q", got)
	}
	if got := (TimeLeft{TotalMs: 1500}).Total(); got != 1500*time.Millisecond {
		t.Errorf("Total() = %v", got)
	}
}
