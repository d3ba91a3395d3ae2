package models

type DiaryEntry struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"` // ISO-8601 instant
	Text   string  `json:"text"`
	Author Partner `json:"author"`
}

// TimeCapsule is a sealed message that can only be read after the countdown ends.
type TimeCapsule struct {
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
	IsOpened  bool   `json:"isOpened"`
}

// LoveStats holds the dashboard counters. TotalDaysWaited is derived from
// the countdown whenever stats are shown and is never incremented.
type LoveStats struct {
	TotalDaysWaited int `json:"totalDaysWaited"`
	WebOpenCount    int `json:"webOpenCount"`
	ChallengesDone  int `json:"challengesDone"`
	MissClicks      int `json:"missClicks"`
}

// StatField names one of the incrementable LoveStats counters.
type StatField string

const (
	StatWebOpenCount   StatField = "webOpenCount"
	StatChallengesDone StatField = "challengesDone"
	StatMissClicks     StatField = "missClicks"
)

// Counter returns a pointer to the addressed counter, or nil for an unknown field.
func (s *LoveStats) Counter(f StatField) *int {
	switch f {
	case StatWebOpenCount:
		return &s.WebOpenCount
	case StatChallengesDone:
		return &s.ChallengesDone
	case StatMissClicks:
		return &s.MissClicks
	}
	return nil
}

type BucketListItem struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	AddedAt     string `json:"addedAt"`
	CompletedAt string `json:"completedAt,omitempty"`
	Emoji       string `json:"emoji"`
}

type Promise struct {
	ID        string  `json:"id"`
	From      Partner `json:"from"`
	Text      string  `json:"text"`
	CreatedAt string  `json:"createdAt"`
	Pinky     bool    `json:"pinky"` // pinky promise, shown with extra emphasis
}

type MemoryEvent struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Emoji       string  `json:"emoji"`
	AddedBy     Partner `json:"addedBy"`
}

type CardKind string

const (
	Truth CardKind = "truth"
	Dare  CardKind = "dare"
)

type TruthOrDareHistoryItem struct {
	Type       CardKind `json:"type"`
	Text       string   `json:"text"`
	AnsweredBy string   `json:"answeredBy"`
	Timestamp  string   `json:"timestamp"`
}

// WheelCategory selects one of the spin wheels.
type WheelCategory string

const (
	WheelFood WheelCategory = "food"
	WheelDate WheelCategory = "date"
)
