package state

import (
	"fmt"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
)

func moodDate(r models.MoodRecord) string  { return r.Date }
func missDate(r models.MissCounter) string { return r.Date }

// KnownMood reports whether emoji is one of the selectable moods.
func KnownMood(emoji string) bool {
	for _, mood := range constants.Moods {
		if mood.Emoji == emoji {
			return true
		}
	}
	return false
}

func (m *Manager) LoadMoods() ([]models.MoodRecord, error) {
	return load[[]models.MoodRecord](m, constants.KeyMood, nil)
}

// MoodFor returns the record for a calendar day key.
func (m *Manager) MoodFor(day string) (models.MoodRecord, bool, error) {
	moods, err := m.LoadMoods()
	if err != nil {
		return models.MoodRecord{}, false, err
	}
	rec, ok := findBy(moods, func(r models.MoodRecord) bool { return r.Date == day })
	return rec, ok, nil
}

func (m *Manager) TodayMood() (models.MoodRecord, bool, error) {
	return m.MoodFor(m.today())
}

// SaveMood upserts rec by date.
func (m *Manager) SaveMood(rec models.MoodRecord) error {
	moods, err := m.LoadMoods()
	if err != nil {
		return err
	}
	return save(m, constants.KeyMood, upsertBy(moods, rec, moodDate))
}

// SetMood records today's mood for one partner and keeps the other's.
func (m *Manager) SetMood(p models.Partner, emoji string) (models.MoodRecord, error) {
	if !p.Valid() {
		return models.MoodRecord{}, ErrInvalidPartner
	}
	if !KnownMood(emoji) {
		return models.MoodRecord{}, fmt.Errorf("%w %q", ErrUnknownMood, emoji)
	}

	rec, ok, err := m.TodayMood()
	if err != nil {
		return models.MoodRecord{}, err
	}
	if !ok {
		rec = models.MoodRecord{Date: m.today()}
	}
	rec = rec.WithMood(p, emoji)
	return rec, m.SaveMood(rec)
}

// CountMissMoods counts days on which either partner picked the "miss you" mood.
func (m *Manager) CountMissMoods() (int, error) {
	moods, err := m.LoadMoods()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range moods {
		if r.BoyMood == constants.MissMoodEmoji || r.GirlMood == constants.MissMoodEmoji {
			n++
		}
	}
	return n, nil
}

func (m *Manager) LoadMisses() ([]models.MissCounter, error) {
	return load[[]models.MissCounter](m, constants.KeyMiss, nil)
}

// TodayMiss returns today's counter, zeroed when nobody has clicked yet.
func (m *Manager) TodayMiss() (models.MissCounter, error) {
	today := m.today()
	all, err := m.LoadMisses()
	if err != nil {
		return models.MissCounter{}, err
	}
	rec, ok := findBy(all, func(r models.MissCounter) bool { return r.Date == today })
	if !ok {
		rec = models.MissCounter{Date: today}
	}
	return rec, nil
}

// IncrementMiss bumps today's count for p by one.
func (m *Manager) IncrementMiss(p models.Partner) (models.MissCounter, error) {
	if !p.Valid() {
		return models.MissCounter{}, ErrInvalidPartner
	}
	all, err := m.LoadMisses()
	if err != nil {
		return models.MissCounter{}, err
	}

	today := m.today()
	rec, ok := findBy(all, func(r models.MissCounter) bool { return r.Date == today })
	if !ok {
		rec = models.MissCounter{Date: today}
	}
	rec = rec.Incremented(p)
	return rec, save(m, constants.KeyMiss, upsertBy(all, rec, missDate))
}

// MissClick is what the "miss you" button does: today's counter and the
// lifetime missClicks stat both go up by one.
func (m *Manager) MissClick(p models.Partner) (models.MissCounter, error) {
	rec, err := m.IncrementMiss(p)
	if err != nil {
		return rec, err
	}
	_, err = m.IncrementStat(models.StatMissClicks)
	return rec, err
}
