// Package state reads and writes every record the app keeps, one JSON blob
// per key. Each mutation loads the whole collection, changes it in memory and
// writes it back; the store is the only source of truth.
package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lovecount/internal/codec"
	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/storage"
	"github.com/julianstephens/lovecount/internal/utils"
)

var (
	ErrNotFound       = errors.New("no record with that id")
	ErrUnknownMood    = errors.New("unknown mood")
	ErrUnknownStat    = errors.New("unknown stat")
	ErrCapsuleExists  = errors.New("a time capsule already exists, delete it before sealing a new one")
	ErrCapsuleLocked  = errors.New("the time capsule stays locked until the countdown completes")
	ErrNoCapsule      = errors.New("no time capsule has been sealed")
	ErrInvalidIndex   = errors.New("option index out of range")
	ErrUnknownWheel   = errors.New("unknown wheel")
	ErrInvalidPartner = errors.New("partner must be boy or girl")
	ErrInvalidDate    = errors.New("date must be YYYY-MM-DD")
)

// Manager is a stateless service over an externally owned store.
type Manager struct {
	store storage.Provider
	now   func() time.Time
	loc   *time.Location
	newID func() string
}

type Option func(*Manager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLocation sets the zone that decides calendar day keys and meeting times.
func WithLocation(loc *time.Location) Option {
	return func(m *Manager) {
		if loc != nil {
			m.loc = loc
		}
	}
}

// WithIDs replaces the record ID generator.
func WithIDs(gen func() string) Option {
	return func(m *Manager) { m.newID = gen }
}

func New(store storage.Provider, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		now:   time.Now,
		loc:   time.Local,
		newID: newUUIDv7,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// newUUIDv7 yields time-ordered IDs; v7 embeds the creation millisecond.
func newUUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (m *Manager) Store() storage.Provider { return m.store }

func (m *Manager) Location() *time.Location { return m.loc }

// Now returns the manager's clock reading in its location.
func (m *Manager) Now() time.Time { return m.now().In(m.loc) }

func (m *Manager) today() string {
	return utils.DayKey(m.now(), m.loc)
}

func (m *Manager) timestamp() string {
	return m.now().UTC().Format(constants.TimestampFormat)
}

// load decodes key, substituting def for absent or unreadable data.
// Only store failures are returned.
func load[T any](m *Manager, key string, def T) (T, error) {
	raw, ok, err := m.store.Get(key)
	if err != nil {
		return def, fmt.Errorf("load %s: %w", key, err)
	}
	return codec.Decode(raw, ok, def), nil
}

func save[T any](m *Manager, key string, v T) error {
	raw, err := codec.Encode(v)
	if err != nil {
		return err
	}
	if err := m.store.Set(key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// upsertBy replaces the first element whose key matches item's, or appends.
func upsertBy[T any, K comparable](items []T, item T, key func(T) K) []T {
	k := key(item)
	for i := range items {
		if key(items[i]) == k {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

// prependBounded puts item first and keeps at most limit elements.
func prependBounded[T any](items []T, item T, limit int) []T {
	out := make([]T, 0, min(len(items)+1, limit))
	out = append(out, item)
	for _, it := range items {
		if len(out) == limit {
			break
		}
		out = append(out, it)
	}
	return out
}

// removeWhere drops every element matching pred and reports whether any did.
func removeWhere[T any](items []T, pred func(T) bool) ([]T, bool) {
	out := items[:0:0]
	removed := false
	for _, it := range items {
		if pred(it) {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out, removed
}

func findBy[T any](items []T, pred func(T) bool) (T, bool) {
	for _, it := range items {
		if pred(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}
