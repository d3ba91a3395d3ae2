package state

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
)

type wheelSpec struct {
	key      string
	defaults []string
}

func wheelFor(cat models.WheelCategory) (wheelSpec, error) {
	switch cat {
	case models.WheelFood:
		return wheelSpec{key: constants.KeyWheelFood, defaults: constants.DefaultFoodOptions}, nil
	case models.WheelDate:
		return wheelSpec{key: constants.KeyWheelDate, defaults: constants.DefaultDateOptions}, nil
	}
	return wheelSpec{}, fmt.Errorf("%w %q (expected food or date)", ErrUnknownWheel, cat)
}

// LoadWheel returns the wheel's options, or the built-in set when none are
// stored. A stored empty list stays empty.
func (m *Manager) LoadWheel(cat models.WheelCategory) ([]string, error) {
	w, err := wheelFor(cat)
	if err != nil {
		return nil, err
	}
	return load(m, w.key, slices.Clone(w.defaults))
}

// AddWheelOption appends a trimmed label. Blank and duplicate labels are
// declined with added=false.
func (m *Manager) AddWheelOption(cat models.WheelCategory, label string) (opts []string, added bool, err error) {
	w, err := wheelFor(cat)
	if err != nil {
		return nil, false, err
	}
	opts, err = m.LoadWheel(cat)
	if err != nil {
		return nil, false, err
	}
	label = strings.TrimSpace(label)
	if label == "" || slices.Contains(opts, label) {
		return opts, false, nil
	}
	opts = append(opts, label)
	return opts, true, save(m, w.key, opts)
}

// RemoveWheelOption drops the option at index. The wheel may go below the
// two options a spin needs.
func (m *Manager) RemoveWheelOption(cat models.WheelCategory, index int) ([]string, error) {
	w, err := wheelFor(cat)
	if err != nil {
		return nil, err
	}
	opts, err := m.LoadWheel(cat)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(opts) {
		return opts, fmt.Errorf("%w: %d (have %d)", ErrInvalidIndex, index, len(opts))
	}
	opts = slices.Delete(opts, index, index+1)
	return opts, save(m, w.key, opts)
}

// ResetWheel stores the built-in options again.
func (m *Manager) ResetWheel(cat models.WheelCategory) ([]string, error) {
	w, err := wheelFor(cat)
	if err != nil {
		return nil, err
	}
	opts := slices.Clone(w.defaults)
	return opts, save(m, w.key, opts)
}
