package models

// MoodRecord holds both partners' mood for one calendar day.
type MoodRecord struct {
	Date     string `json:"date"` // YYYY-MM-DD
	BoyMood  string `json:"boyMood"`
	GirlMood string `json:"girlMood"`
}

func (m MoodRecord) MoodOf(p Partner) string {
	if p == Girl {
		return m.GirlMood
	}
	return m.BoyMood
}

// WithMood returns a copy with p's mood replaced.
func (m MoodRecord) WithMood(p Partner, emoji string) MoodRecord {
	if p == Girl {
		m.GirlMood = emoji
	} else {
		m.BoyMood = emoji
	}
	return m
}

// MissCounter counts "I miss you" clicks per partner for one day.
type MissCounter struct {
	Date      string `json:"date"` // YYYY-MM-DD
	BoyCount  int    `json:"boyCount"`
	GirlCount int    `json:"girlCount"`
}

func (m MissCounter) Count(p Partner) int {
	if p == Girl {
		return m.GirlCount
	}
	return m.BoyCount
}

func (m MissCounter) Total() int {
	return m.BoyCount + m.GirlCount
}

// Incremented returns a copy with p's count bumped by one.
func (m MissCounter) Incremented(p Partner) MissCounter {
	if p == Girl {
		m.GirlCount++
	} else {
		m.BoyCount++
	}
	return m
}
