package validation

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/utils"
)

// ConflictType represents the type of problem found in stored records
type ConflictType string

const (
	ConflictDuplicateDay      ConflictType = "duplicate_day"
	ConflictDuplicateID       ConflictType = "duplicate_id"
	ConflictMissingID         ConflictType = "missing_id"
	ConflictOverRetention     ConflictType = "over_retention"
	ConflictTextTooLong       ConflictType = "text_too_long"
	ConflictInvalidDateTime   ConflictType = "invalid_datetime"
	ConflictUnknownMood       ConflictType = "unknown_mood"
	ConflictOutOfOrder        ConflictType = "out_of_order"
	ConflictNegativeCount     ConflictType = "negative_count"
	ConflictTooFewWheelOption ConflictType = "too_few_wheel_options"
)

// Conflict represents one detected problem
type Conflict struct {
	Type        ConflictType
	Description string
	Key         string   // storage key the record lives under
	Items       []string // IDs or day keys involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

func (vr *ValidationResult) add(c Conflict) {
	vr.Conflicts = append(vr.Conflicts, c)
}

// Records is everything the validator inspects, as loaded from the store.
type Records struct {
	Profile  *models.CoupleProfile
	Moods    []models.MoodRecord
	Misses   []models.MissCounter
	Diary    []models.DiaryEntry
	Capsule  *models.TimeCapsule
	Stats    models.LoveStats
	Bucket   []models.BucketListItem
	Promises []models.Promise
	Memories []models.MemoryEvent
	Truth    []models.TruthOrDareHistoryItem
	Wheels   map[models.WheelCategory][]string
}

// Validator checks stored records against the rules the app writes them with
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateRecords reports every rule the stored records break. It never
// modifies anything; the app already reads around these problems.
func (v *Validator) ValidateRecords(r Records) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if p := r.Profile; p != nil {
		if _, err := utils.CombineDateAndTime(p.MeetingDate, p.MeetingTime, time.UTC); err != nil {
			result.add(Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Profile has an unreadable meeting date/time: %q %q", p.MeetingDate, p.MeetingTime),
				Key:         constants.KeyProfile,
			})
		}
	}

	checkDays(&result, constants.KeyMood, r.Moods, func(m models.MoodRecord) string { return m.Date })
	for _, m := range r.Moods {
		for _, emoji := range []string{m.BoyMood, m.GirlMood} {
			if emoji != "" && !knownMood(emoji) {
				result.add(Conflict{
					Type:        ConflictUnknownMood,
					Description: fmt.Sprintf("Mood on %s uses an unknown emoji %q", m.Date, emoji),
					Key:         constants.KeyMood,
					Items:       []string{m.Date},
				})
			}
		}
	}

	checkDays(&result, constants.KeyMiss, r.Misses, func(m models.MissCounter) string { return m.Date })
	for _, m := range r.Misses {
		if m.BoyCount < 0 || m.GirlCount < 0 {
			result.add(Conflict{
				Type:        ConflictNegativeCount,
				Description: fmt.Sprintf("Miss counter on %s is negative", m.Date),
				Key:         constants.KeyMiss,
				Items:       []string{m.Date},
			})
		}
	}

	checkIDs(&result, constants.KeyDiary, r.Diary, func(e models.DiaryEntry) string { return e.ID })
	checkRetention(&result, constants.KeyDiary, len(r.Diary), constants.MaxDiaryEntries)
	for _, e := range r.Diary {
		checkLength(&result, constants.KeyDiary, e.ID, e.Text, constants.MaxDiaryText)
	}

	if c := r.Capsule; c != nil {
		checkLength(&result, constants.KeyCapsule, "capsule", c.Message, constants.MaxCapsuleText)
	}

	if r.Stats.WebOpenCount < 0 || r.Stats.ChallengesDone < 0 || r.Stats.MissClicks < 0 {
		result.add(Conflict{
			Type:        ConflictNegativeCount,
			Description: "Stats contain a negative counter",
			Key:         constants.KeyStats,
		})
	}

	checkIDs(&result, constants.KeyBucket, r.Bucket, func(b models.BucketListItem) string { return b.ID })
	for _, b := range r.Bucket {
		if !b.Completed && b.CompletedAt != "" {
			result.add(Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Bucket item %q is open but has a completion time", b.Text),
				Key:         constants.KeyBucket,
				Items:       []string{b.ID},
			})
		}
	}

	checkIDs(&result, constants.KeyPromises, r.Promises, func(p models.Promise) string { return p.ID })
	for _, p := range r.Promises {
		checkLength(&result, constants.KeyPromises, p.ID, p.Text, constants.MaxPromiseText)
	}

	checkIDs(&result, constants.KeyMemories, r.Memories, func(m models.MemoryEvent) string { return m.ID })
	for i, m := range r.Memories {
		if !utils.ValidateDateFormat(m.Date) {
			result.add(Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Memory %q has an invalid date %q", m.Title, m.Date),
				Key:         constants.KeyMemories,
				Items:       []string{m.ID},
			})
		}
		if i > 0 && r.Memories[i-1].Date > m.Date {
			result.add(Conflict{
				Type:        ConflictOutOfOrder,
				Description: fmt.Sprintf("Memory %q is out of date order", m.Title),
				Key:         constants.KeyMemories,
				Items:       []string{m.ID},
			})
		}
	}

	checkRetention(&result, constants.KeyTruth, len(r.Truth), constants.MaxTruthHistory)

	wheelKeys := map[models.WheelCategory]string{
		models.WheelFood: constants.KeyWheelFood,
		models.WheelDate: constants.KeyWheelDate,
	}
	for _, cat := range []models.WheelCategory{models.WheelFood, models.WheelDate} {
		opts, ok := r.Wheels[cat]
		if ok && len(opts) < constants.MinWheelOptions {
			result.add(Conflict{
				Type:        ConflictTooFewWheelOption,
				Description: fmt.Sprintf("The %s wheel has %d option(s), spinning needs %d", cat, len(opts), constants.MinWheelOptions),
				Key:         wheelKeys[cat],
			})
		}
	}

	return result
}

func knownMood(emoji string) bool {
	for _, m := range constants.Moods {
		if m.Emoji == emoji {
			return true
		}
	}
	return false
}

func checkDays[T any](result *ValidationResult, key string, items []T, day func(T) string) {
	seen := map[string]bool{}
	for _, it := range items {
		d := day(it)
		if !utils.ValidateDateFormat(d) {
			result.add(Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Record under %s has an invalid day %q", key, d),
				Key:         key,
				Items:       []string{d},
			})
			continue
		}
		if seen[d] {
			result.add(Conflict{
				Type:        ConflictDuplicateDay,
				Description: fmt.Sprintf("More than one record for %s under %s", d, key),
				Key:         key,
				Items:       []string{d},
			})
		}
		seen[d] = true
	}
}

func checkIDs[T any](result *ValidationResult, key string, items []T, id func(T) string) {
	seen := map[string]bool{}
	for _, it := range items {
		i := id(it)
		switch {
		case i == "":
			result.add(Conflict{
				Type:        ConflictMissingID,
				Description: fmt.Sprintf("Record under %s has no id", key),
				Key:         key,
			})
		case seen[i]:
			result.add(Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("Duplicate id %s under %s", i, key),
				Key:         key,
				Items:       []string{i},
			})
		}
		seen[i] = true
	}
}

func checkRetention(result *ValidationResult, key string, n, limit int) {
	if n > limit {
		result.add(Conflict{
			Type:        ConflictOverRetention,
			Description: fmt.Sprintf("%s holds %d records, more than the %d kept", key, n, limit),
			Key:         key,
		})
	}
}

func checkLength(result *ValidationResult, key, id, text string, limit int) {
	if n := utf8.RuneCountInString(text); n > limit {
		result.add(Conflict{
			Type:        ConflictTextTooLong,
			Description: fmt.Sprintf("Text of %s under %s is %d characters, limit is %d", id, key, n, limit),
			Key:         key,
			Items:       []string{id},
		})
	}
}
