package state

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/lovecount/internal/storage"
)

var day0 = time.Date(2025, 2, 12, 9, 30, 0, 0, time.UTC)

// testClock is a settable clock.
type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestManager(t *testing.T) (*Manager, *storage.MemoryStore, *testClock) {
	t.Helper()
	store := storage.NewMemoryStore()
	clock := &testClock{t: day0}
	n := 0
	m := New(store,
		WithClock(clock.Now),
		WithLocation(time.UTC),
		WithIDs(func() string {
			n++
			return fmt.Sprintf("id-%03d", n)
		}),
	)
	return m, store, clock
}

// brokenStore fails every operation, standing in for an unavailable medium.
type brokenStore struct{ storage.MemoryStore }

var errBroken = errors.New("disk on fire")

func (*brokenStore) Get(string) (string, bool, error) { return "", false, errBroken }
func (*brokenStore) Set(string, string) error         { return errBroken }
func (*brokenStore) Remove(string) error              { return errBroken }
