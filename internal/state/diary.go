package state

import (
	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/utils"
)

// LoadDiary returns entries newest first.
func (m *Manager) LoadDiary() ([]models.DiaryEntry, error) {
	return load[[]models.DiaryEntry](m, constants.KeyDiary, nil)
}

// AddDiaryEntry prepends a note. Blank text is declined (added is false,
// nothing is written); text over the cap is cut. Only the newest
// MaxDiaryEntries survive.
func (m *Manager) AddDiaryEntry(author models.Partner, text string) (models.DiaryEntry, bool, error) {
	if !author.Valid() {
		return models.DiaryEntry{}, false, ErrInvalidPartner
	}
	text, ok := utils.CleanText(text, constants.MaxDiaryText)
	if !ok {
		return models.DiaryEntry{}, false, nil
	}

	entries, err := m.LoadDiary()
	if err != nil {
		return models.DiaryEntry{}, false, err
	}

	entry := models.DiaryEntry{
		ID:     m.newID(),
		Date:   m.timestamp(),
		Text:   text,
		Author: author,
	}
	entries = prependBounded(entries, entry, constants.MaxDiaryEntries)
	if err := save(m, constants.KeyDiary, entries); err != nil {
		return models.DiaryEntry{}, false, err
	}
	return entry, true, nil
}
