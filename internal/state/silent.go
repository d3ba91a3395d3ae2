package state

import (
	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/logger"
)

func (m *Manager) SilentMode() (bool, error) {
	return load(m, constants.KeySilent, false)
}

func (m *Manager) SetSilentMode(on bool) error {
	return save(m, constants.KeySilent, on)
}

// ResetAll deletes every key the app owns, one by one. Deletes are
// idempotent, so a failed reset can simply be run again.
func (m *Manager) ResetAll() error {
	for _, key := range constants.AllKeys {
		if err := m.store.Remove(key); err != nil {
			return err
		}
	}
	logger.Info("all data cleared", "keys", len(constants.AllKeys))
	return nil
}
