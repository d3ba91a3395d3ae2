package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: ""},
		{name: "Local returns local", timezone: "Local"},
		{name: "UTC", timezone: "UTC"},
		{name: "Asia/Ho_Chi_Minh", timezone: "Asia/Ho_Chi_Minh"},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && loc == nil {
				t.Error("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestNowInTimezoneInvalid(t *testing.T) {
	if _, err := NowInTimezone("Mars/Olympus"); err == nil {
		t.Error("NowInTimezone() with invalid zone returned nil error")
	}
}

func TestDayKey(t *testing.T) {
	hcm := time.FixedZone("ICT", 7*3600)
	instant := time.Date(2025, 2, 13, 20, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		loc  *time.Location
		want string
	}{
		{name: "utc", loc: time.UTC, want: "2025-02-13"},
		{name: "east of utc rolls over", loc: hcm, want: "2025-02-14"},
		{name: "west of utc", loc: time.FixedZone("PST", -8*3600), want: "2025-02-13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayKey(instant, tt.loc); got != tt.want {
				t.Errorf("DayKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), want: 1},
		{date: time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC), want: 1},
		{date: time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC), want: 45},
		{date: time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC), want: 366},
	}

	for _, tt := range tests {
		if got := DayOfYear(tt.date); got != tt.want {
			t.Errorf("DayOfYear(%v) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestCombineDateAndTime(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)

	got, err := CombineDateAndTime("2025-02-14", "18:00", loc)
	if err != nil {
		t.Fatalf("CombineDateAndTime() error = %v", err)
	}
	want := time.Date(2025, 2, 14, 18, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("CombineDateAndTime() = %v, want %v", got, want)
	}

	if _, err := CombineDateAndTime("14/02/2025", "18:00", loc); err == nil {
		t.Error("expected error for malformed date")
	}
	if _, err := CombineDateAndTime("2025-02-14", "6pm", loc); err == nil {
		t.Error("expected error for malformed time")
	}
}

func TestParseDateInLocation(t *testing.T) {
	got, err := ParseDateInLocation("2025-03-08", time.UTC)
	if err != nil {
		t.Fatalf("ParseDateInLocation() error = %v", err)
	}
	if got.Hour() != 0 || got.Day() != 8 || got.Month() != time.March {
		t.Errorf("ParseDateInLocation() = %v", got)
	}
}

func TestFormatValidators(t *testing.T) {
	if !ValidateDateFormat("2025-12-24") || ValidateDateFormat("2025-13-01") {
		t.Error("ValidateDateFormat misclassified input")
	}
	if !ValidateTimeFormat("09:30") || ValidateTimeFormat("25:00") {
		t.Error("ValidateTimeFormat misclassified input")
	}
	if !ValidateTimezone("Local") || ValidateTimezone("Nowhere/Town") {
		t.Error("ValidateTimezone misclassified input")
	}
}
