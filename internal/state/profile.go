package state

import (
	"time"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/countdown"
	"github.com/julianstephens/lovecount/internal/models"
)

// LoadProfile returns the couple profile, or nil when none is stored or the
// stored one is unusable.
func (m *Manager) LoadProfile() (*models.CoupleProfile, error) {
	p, err := load[*models.CoupleProfile](m, constants.KeyProfile, nil)
	if err != nil || p == nil || p.MeetingDate == "" {
		return nil, err
	}
	return p, nil
}

// SaveProfile overwrites the profile. Input validation happens before this.
func (m *Manager) SaveProfile(p models.CoupleProfile) error {
	return save(m, constants.KeyProfile, p)
}

func (m *Manager) ClearProfile() error {
	return m.store.Remove(constants.KeyProfile)
}

// Target resolves the stored meeting instant. ok is false without a usable profile.
func (m *Manager) Target() (target time.Time, ok bool, err error) {
	p, err := m.LoadProfile()
	if err != nil || p == nil {
		return time.Time{}, false, err
	}
	t, err := p.Target(m.loc)
	if err != nil {
		return time.Time{}, false, nil
	}
	return t, true, nil
}

// CountdownState evaluates the countdown at the manager's clock.
func (m *Manager) CountdownState() (countdown.State, error) {
	target, ok, err := m.Target()
	if err != nil || !ok {
		return countdown.Undefined, err
	}
	return countdown.StateAt(m.now(), target), nil
}
