package state

import (
	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/countdown"
	"github.com/julianstephens/lovecount/internal/logger"
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/utils"
)

// LoadCapsule returns the capsule, or nil when none is sealed.
func (m *Manager) LoadCapsule() (*models.TimeCapsule, error) {
	return load[*models.TimeCapsule](m, constants.KeyCapsule, nil)
}

// SealCapsule stores a new capsule. Only one may exist at a time; a second
// seal fails with ErrCapsuleExists until the first is deleted. Blank
// messages are declined without error.
func (m *Manager) SealCapsule(message string) (models.TimeCapsule, bool, error) {
	message, ok := utils.CleanText(message, constants.MaxCapsuleText)
	if !ok {
		return models.TimeCapsule{}, false, nil
	}

	existing, err := m.LoadCapsule()
	if err != nil {
		return models.TimeCapsule{}, false, err
	}
	if existing != nil {
		return *existing, false, ErrCapsuleExists
	}

	c := models.TimeCapsule{Message: message, CreatedAt: m.timestamp()}
	if err := save(m, constants.KeyCapsule, c); err != nil {
		return models.TimeCapsule{}, false, err
	}
	return c, true, nil
}

// OpenCapsule flips isOpened once the countdown is Complete. Opening an
// already opened capsule is a no-op.
func (m *Manager) OpenCapsule(st countdown.State) (models.TimeCapsule, error) {
	c, err := m.LoadCapsule()
	if err != nil {
		return models.TimeCapsule{}, err
	}
	if c == nil {
		return models.TimeCapsule{}, ErrNoCapsule
	}
	if st != countdown.Complete {
		logger.Debug("capsule open refused", "state", st)
		return *c, ErrCapsuleLocked
	}
	if c.IsOpened {
		return *c, nil
	}

	c.IsOpened = true
	return *c, save(m, constants.KeyCapsule, *c)
}

func (m *Manager) DeleteCapsule() error {
	return m.store.Remove(constants.KeyCapsule)
}
