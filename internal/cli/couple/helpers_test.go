package couple

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/love"
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/state"
	"github.com/julianstephens/lovecount/internal/storage"
)

var testNow = time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC)

type fakeNotifier struct {
	calls []string
}

func (f *fakeNotifier) Notify(_ context.Context, title, text string) error {
	f.calls = append(f.calls, title+": "+text)
	return nil
}

func newTestContext(t *testing.T, now time.Time) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewMemoryStore()
	out := &bytes.Buffer{}
	return &cli.Context{
		Store:  store,
		State:  state.New(store, state.WithClock(func() time.Time { return now }), state.WithLocation(time.UTC)),
		Picker: love.NewPicker(nil),
		Out:    out,
	}, out
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func testProfile() models.CoupleProfile {
	return models.CoupleProfile{
		BoyName:      "Minh",
		GirlName:     "Lan",
		BoyAge:       24,
		GirlAge:      23,
		MeetingDate:  "2025-03-01",
		MeetingTime:  "18:00",
		GirlNickname: "Bé",
	}
}
