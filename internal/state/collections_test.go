package state

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
)

func TestBucketList(t *testing.T) {
	m, _, clock := newTestManager(t)

	a, _, _ := m.AddBucketItem("  Cùng ngắm hoàng hôn ", "🌅")
	b, added, err := m.AddBucketItem("Đi cắm trại", "")
	if err != nil || !added {
		t.Fatalf("AddBucketItem() = %v, %v", added, err)
	}
	if b.Emoji != constants.DefaultBucketIcon {
		t.Errorf("default emoji = %q", b.Emoji)
	}
	if _, added, _ := m.AddBucketItem("   ", "🎲"); added {
		t.Error("blank bucket item was added")
	}

	clock.Advance(time.Hour)
	done, err := m.ToggleBucketItem(a.ID)
	if err != nil || !done.Completed || done.CompletedAt != "2025-02-12T10:30:00.000Z" {
		t.Fatalf("ToggleBucketItem() = %+v, %v", done, err)
	}
	if d, total, _ := m.BucketProgress(); d != 1 || total != 2 {
		t.Errorf("BucketProgress() = %d/%d", d, total)
	}

	undone, _ := m.ToggleBucketItem(a.ID)
	if undone.Completed || undone.CompletedAt != "" {
		t.Errorf("untoggled = %+v", undone)
	}

	items, _ := m.LoadBucket()
	if len(items) != 2 || items[0].ID != a.ID || items[1].ID != b.ID {
		t.Errorf("insertion order lost: %+v", items)
	}

	if err := m.RemoveBucketItem(a.ID); err != nil {
		t.Fatal(err)
	}
	if err := m.RemoveBucketItem(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second RemoveBucketItem() error = %v", err)
	}
	if _, err := m.ToggleBucketItem("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ToggleBucketItem(nope) error = %v", err)
	}
}

func TestPromisesNewestFirst(t *testing.T) {
	m, _, _ := newTestManager(t)

	first, _, _ := m.AddPromise(models.Boy, "Nói yêu nhau mỗi ngày 💕", false)
	second, _, _ := m.AddPromise(models.Girl, strings.Repeat("x", 200), true)

	if len([]rune(second.Text)) != constants.MaxPromiseText || !second.Pinky {
		t.Errorf("second = %+v", second)
	}

	promises, _ := m.LoadPromises()
	if len(promises) != 2 || promises[0].ID != second.ID || promises[1].ID != first.ID {
		t.Errorf("order = %+v", promises)
	}

	if _, _, err := m.AddPromise("dog", "woof", false); !errors.Is(err, ErrInvalidPartner) {
		t.Errorf("AddPromise(dog) error = %v", err)
	}
	if _, added, _ := m.AddPromise(models.Boy, " ", false); added {
		t.Error("blank promise was added")
	}

	if err := m.RemovePromise(first.ID); err != nil {
		t.Fatal(err)
	}
	if promises, _ := m.LoadPromises(); len(promises) != 1 {
		t.Errorf("after remove = %+v", promises)
	}
}

func TestMemoriesSortedByDate(t *testing.T) {
	m, _, _ := newTestManager(t)

	add := func(title, date string) models.MemoryEvent {
		t.Helper()
		ev, added, err := m.AddMemory(MemoryInput{Title: title, Date: date, AddedBy: models.Boy})
		if err != nil || !added {
			t.Fatalf("AddMemory(%q) = %v, %v", title, added, err)
		}
		return ev
	}

	add("first date", "2024-06-01")
	add("anniversary", "2025-06-01")
	add("met online", "2024-01-15")
	add("same day, later", "2024-06-01")

	memories, _ := m.LoadMemories()
	var titles []string
	for _, ev := range memories {
		titles = append(titles, ev.Title)
	}
	want := []string{"met online", "first date", "same day, later", "anniversary"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("order = %v, want %v", titles, want)
	}
	if memories[0].Emoji != constants.DefaultMemoryIcon {
		t.Errorf("default emoji = %q", memories[0].Emoji)
	}
}

func TestAddMemoryValidation(t *testing.T) {
	m, _, _ := newTestManager(t)

	if _, added, err := m.AddMemory(MemoryInput{Title: "  ", Date: "2025-01-01", AddedBy: models.Girl}); err != nil || added {
		t.Errorf("blank title = %v, %v", added, err)
	}
	if _, _, err := m.AddMemory(MemoryInput{Title: "trip", AddedBy: models.Girl}); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("missing date error = %v", err)
	}
	if _, _, err := m.AddMemory(MemoryInput{Title: "trip", Date: "01/02/2025", AddedBy: models.Girl}); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("bad date error = %v", err)
	}

	ev, _, err := m.AddMemory(MemoryInput{
		Title:       strings.Repeat("t", 80),
		Description: strings.Repeat("d", 200),
		Date:        "2025-01-01",
		Emoji:       "✈️",
		AddedBy:     models.Girl,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(ev.Title) != constants.MaxMemoryTitle || len(ev.Description) != constants.MaxMemoryDesc {
		t.Errorf("caps not applied: %d/%d", len(ev.Title), len(ev.Description))
	}

	if err := m.RemoveMemory(ev.ID); err != nil {
		t.Fatal(err)
	}
	if err := m.RemoveMemory(ev.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second RemoveMemory() error = %v", err)
	}
}

func TestTruthHistoryBounded(t *testing.T) {
	m, _, _ := newTestManager(t)

	for i := 0; i < 35; i++ {
		kind := models.Truth
		if i%2 == 1 {
			kind = models.Dare
		}
		if _, err := m.AppendTruth(models.TruthOrDareHistoryItem{Type: kind, Text: string(rune('A' + i)), AnsweredBy: "An"}); err != nil {
			t.Fatal(err)
		}
	}

	history, _ := m.LoadTruthHistory()
	if len(history) != constants.MaxTruthHistory {
		t.Fatalf("len = %d, want %d", len(history), constants.MaxTruthHistory)
	}
	if history[0].Text != string(rune('A'+34)) || history[29].Text != string(rune('A'+5)) {
		t.Errorf("window = %q..%q", history[0].Text, history[29].Text)
	}
	if history[0].Timestamp == "" {
		t.Error("timestamp not filled")
	}
}

func TestWheelOptions(t *testing.T) {
	m, store, _ := newTestManager(t)

	opts, err := m.LoadWheel(models.WheelDate)
	if err != nil || !reflect.DeepEqual(opts, constants.DefaultDateOptions) {
		t.Fatalf("LoadWheel() = %v, %v", opts, err)
	}
	if _, ok, _ := store.Get(constants.KeyWheelDate); ok {
		t.Error("loading defaults wrote to the store")
	}

	opts, added, err := m.AddWheelOption(models.WheelDate, "  Picnic 🧺  ")
	if err != nil || !added || opts[len(opts)-1] != "Picnic 🧺" {
		t.Fatalf("AddWheelOption() = %v, %v, %v", opts, added, err)
	}
	if _, added, _ := m.AddWheelOption(models.WheelDate, "Picnic 🧺"); added {
		t.Error("duplicate option was added")
	}
	if _, added, _ := m.AddWheelOption(models.WheelDate, "   "); added {
		t.Error("blank option was added")
	}

	opts, err = m.RemoveWheelOption(models.WheelDate, 0)
	if err != nil || opts[0] != constants.DefaultDateOptions[1] {
		t.Fatalf("RemoveWheelOption() = %v, %v", opts, err)
	}
	if _, err := m.RemoveWheelOption(models.WheelDate, 99); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("RemoveWheelOption(99) error = %v", err)
	}

	// The food wheel is independent.
	food, _ := m.LoadWheel(models.WheelFood)
	if !reflect.DeepEqual(food, constants.DefaultFoodOptions) {
		t.Errorf("food wheel changed: %v", food)
	}

	opts, err = m.ResetWheel(models.WheelDate)
	if err != nil || !reflect.DeepEqual(opts, constants.DefaultDateOptions) {
		t.Errorf("ResetWheel() = %v, %v", opts, err)
	}
	if _, err := m.LoadWheel("drinks"); !errors.Is(err, ErrUnknownWheel) {
		t.Errorf("LoadWheel(drinks) error = %v", err)
	}

	// Defaults are never aliased by stored edits.
	if constants.DefaultDateOptions[0] != "Xem phim 🎬" {
		t.Error("default options were mutated")
	}
}

func TestWheelCanDropBelowSpinMinimum(t *testing.T) {
	m, store, _ := newTestManager(t)
	_ = store.Set(constants.KeyWheelFood, `["Phở 🍜","Pizza 🍕"]`)

	opts, err := m.RemoveWheelOption(models.WheelFood, 1)
	if err != nil || !reflect.DeepEqual(opts, []string{"Phở 🍜"}) {
		t.Errorf("RemoveWheelOption() = %v, %v", opts, err)
	}

	_ = store.Set(constants.KeyWheelFood, `[]`)
	if opts, _ := m.LoadWheel(models.WheelFood); len(opts) != 0 {
		t.Errorf("stored empty list replaced by defaults: %v", opts)
	}
}

func TestSilentMode(t *testing.T) {
	m, _, _ := newTestManager(t)

	if on, _ := m.SilentMode(); on {
		t.Error("silent mode on by default")
	}
	if err := m.SetSilentMode(true); err != nil {
		t.Fatal(err)
	}
	if on, _ := m.SilentMode(); !on {
		t.Error("silent mode not persisted")
	}
}
