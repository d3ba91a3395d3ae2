package state

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/utils"
)

// Bucket list. Insertion order is kept.

func (m *Manager) LoadBucket() ([]models.BucketListItem, error) {
	return load[[]models.BucketListItem](m, constants.KeyBucket, nil)
}

func (m *Manager) AddBucketItem(text, emoji string) (models.BucketListItem, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.BucketListItem{}, false, nil
	}
	if emoji = strings.TrimSpace(emoji); emoji == "" {
		emoji = constants.DefaultBucketIcon
	}

	items, err := m.LoadBucket()
	if err != nil {
		return models.BucketListItem{}, false, err
	}
	item := models.BucketListItem{
		ID:      m.newID(),
		Text:    text,
		AddedAt: m.timestamp(),
		Emoji:   emoji,
	}
	if err := save(m, constants.KeyBucket, append(items, item)); err != nil {
		return models.BucketListItem{}, false, err
	}
	return item, true, nil
}

// ToggleBucketItem flips completion. CompletedAt is stamped when an item is
// completed and cleared when it is reopened.
func (m *Manager) ToggleBucketItem(id string) (models.BucketListItem, error) {
	items, err := m.LoadBucket()
	if err != nil {
		return models.BucketListItem{}, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Completed = !items[i].Completed
		items[i].CompletedAt = ""
		if items[i].Completed {
			items[i].CompletedAt = m.timestamp()
		}
		return items[i], save(m, constants.KeyBucket, items)
	}
	return models.BucketListItem{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (m *Manager) RemoveBucketItem(id string) error {
	items, err := m.LoadBucket()
	if err != nil {
		return err
	}
	items, ok := removeWhere(items, func(it models.BucketListItem) bool { return it.ID == id })
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return save(m, constants.KeyBucket, items)
}

// BucketProgress returns how many items are done out of how many.
func (m *Manager) BucketProgress() (done, total int, err error) {
	items, err := m.LoadBucket()
	if err != nil {
		return 0, 0, err
	}
	for _, it := range items {
		if it.Completed {
			done++
		}
	}
	return done, len(items), nil
}

// Promises, newest first.

func (m *Manager) LoadPromises() ([]models.Promise, error) {
	return load[[]models.Promise](m, constants.KeyPromises, nil)
}

func (m *Manager) AddPromise(from models.Partner, text string, pinky bool) (models.Promise, bool, error) {
	if !from.Valid() {
		return models.Promise{}, false, ErrInvalidPartner
	}
	text, ok := utils.CleanText(text, constants.MaxPromiseText)
	if !ok {
		return models.Promise{}, false, nil
	}

	promises, err := m.LoadPromises()
	if err != nil {
		return models.Promise{}, false, err
	}
	p := models.Promise{
		ID:        m.newID(),
		From:      from,
		Text:      text,
		CreatedAt: m.timestamp(),
		Pinky:     pinky,
	}
	promises = append([]models.Promise{p}, promises...)
	if err := save(m, constants.KeyPromises, promises); err != nil {
		return models.Promise{}, false, err
	}
	return p, true, nil
}

func (m *Manager) RemovePromise(id string) error {
	promises, err := m.LoadPromises()
	if err != nil {
		return err
	}
	promises, ok := removeWhere(promises, func(p models.Promise) bool { return p.ID == id })
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return save(m, constants.KeyPromises, promises)
}

// Memories, sorted by date ascending.

// MemoryInput is what the add-memory form collects.
type MemoryInput struct {
	Title       string
	Description string
	Date        string // YYYY-MM-DD
	Emoji       string
	AddedBy     models.Partner
}

func (m *Manager) LoadMemories() ([]models.MemoryEvent, error) {
	return load[[]models.MemoryEvent](m, constants.KeyMemories, nil)
}

// AddMemory declines a blank title. The date is required and must be a
// calendar date; the whole list is re-sorted by date after the insert, with
// ties kept in insertion order.
func (m *Manager) AddMemory(in MemoryInput) (models.MemoryEvent, bool, error) {
	if !in.AddedBy.Valid() {
		return models.MemoryEvent{}, false, ErrInvalidPartner
	}
	title, ok := utils.CleanText(in.Title, constants.MaxMemoryTitle)
	if !ok {
		return models.MemoryEvent{}, false, nil
	}
	date := strings.TrimSpace(in.Date)
	if !utils.ValidateDateFormat(date) {
		return models.MemoryEvent{}, false, fmt.Errorf("%w: %q", ErrInvalidDate, in.Date)
	}
	emoji := strings.TrimSpace(in.Emoji)
	if emoji == "" {
		emoji = constants.DefaultMemoryIcon
	}
	desc, _ := utils.CleanText(in.Description, constants.MaxMemoryDesc)

	memories, err := m.LoadMemories()
	if err != nil {
		return models.MemoryEvent{}, false, err
	}
	ev := models.MemoryEvent{
		ID:          m.newID(),
		Title:       title,
		Description: desc,
		Date:        date,
		Emoji:       emoji,
		AddedBy:     in.AddedBy,
	}
	memories = append(memories, ev)
	// YYYY-MM-DD sorts lexically in date order.
	sort.SliceStable(memories, func(i, j int) bool { return memories[i].Date < memories[j].Date })

	if err := save(m, constants.KeyMemories, memories); err != nil {
		return models.MemoryEvent{}, false, err
	}
	return ev, true, nil
}

func (m *Manager) RemoveMemory(id string) error {
	memories, err := m.LoadMemories()
	if err != nil {
		return err
	}
	memories, ok := removeWhere(memories, func(ev models.MemoryEvent) bool { return ev.ID == id })
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return save(m, constants.KeyMemories, memories)
}

// Truth or dare history, newest first.

func (m *Manager) LoadTruthHistory() ([]models.TruthOrDareHistoryItem, error) {
	return load[[]models.TruthOrDareHistoryItem](m, constants.KeyTruth, nil)
}

// AppendTruth records a drawn card. A missing timestamp is filled from the clock.
func (m *Manager) AppendTruth(item models.TruthOrDareHistoryItem) (models.TruthOrDareHistoryItem, error) {
	if item.Timestamp == "" {
		item.Timestamp = m.timestamp()
	}
	history, err := m.LoadTruthHistory()
	if err != nil {
		return item, err
	}
	return item, save(m, constants.KeyTruth, prependBounded(history, item, constants.MaxTruthHistory))
}
