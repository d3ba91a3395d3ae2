package system

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/love"
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/state"
	"github.com/julianstephens/lovecount/internal/storage/sqlite"
)

var testNow = time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T, initialize bool) (*cli.Context, *bytes.Buffer, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := sqlite.NewStore(dbPath)
	if initialize {
		if err := store.Init(); err != nil {
			t.Fatalf("failed to initialize store: %v", err)
		}
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Store:  store,
		State:  state.New(store, state.WithClock(func() time.Time { return testNow }), state.WithLocation(time.UTC)),
		Picker: love.NewPicker(nil),
		Out:    out,
	}
	return ctx, out, dbPath
}

func testProfile() models.CoupleProfile {
	return models.CoupleProfile{
		BoyName:     "Minh",
		GirlName:    "Lan",
		BoyAge:      24,
		GirlAge:     23,
		MeetingDate: "2025-03-01",
		MeetingTime: "18:00",
	}
}
