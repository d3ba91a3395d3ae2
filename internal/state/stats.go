package state

import (
	"fmt"
	"time"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/countdown"
	"github.com/julianstephens/lovecount/internal/models"
)

func (m *Manager) LoadStats() (models.LoveStats, error) {
	return load(m, constants.KeyStats, models.LoveStats{})
}

// IncrementStat adds one to a counter and returns the stored stats.
func (m *Manager) IncrementStat(f models.StatField) (models.LoveStats, error) {
	var unknown bool
	stats, err := m.UpdateStats(func(s *models.LoveStats) {
		c := s.Counter(f)
		if c == nil {
			unknown = true
			return
		}
		*c++
	})
	if unknown {
		return stats, fmt.Errorf("%w %q", ErrUnknownStat, f)
	}
	return stats, err
}

// UpdateStats applies fn to the stored stats and writes them back. If fn
// leaves them unchanged nothing is written.
func (m *Manager) UpdateStats(fn func(*models.LoveStats)) (models.LoveStats, error) {
	stats, err := m.LoadStats()
	if err != nil {
		return stats, err
	}
	before := stats
	fn(&stats)
	if stats == before {
		return stats, nil
	}
	return stats, save(m, constants.KeyStats, stats)
}

// StatsSnapshot returns stored counters with TotalDaysWaited derived from
// the countdown at now. The derived value is never written back.
func (m *Manager) StatsSnapshot(now time.Time) (models.LoveStats, error) {
	stats, err := m.LoadStats()
	if err != nil {
		return stats, err
	}
	stats.TotalDaysWaited = 0
	target, ok, err := m.Target()
	if err != nil {
		return stats, err
	}
	if ok {
		stats.TotalDaysWaited = countdown.DaysWaited(now, target)
	}
	return stats, nil
}

// Summary is everything the stats dashboard shows.
type Summary struct {
	models.LoveStats
	DiaryEntries int
	MissMoods    int
}

// Dashboard counts one dashboard open and returns the summary.
func (m *Manager) Dashboard() (Summary, error) {
	if _, err := m.IncrementStat(models.StatWebOpenCount); err != nil {
		return Summary{}, err
	}
	stats, err := m.StatsSnapshot(m.now())
	if err != nil {
		return Summary{}, err
	}
	diary, err := m.LoadDiary()
	if err != nil {
		return Summary{}, err
	}
	missMoods, err := m.CountMissMoods()
	if err != nil {
		return Summary{}, err
	}
	return Summary{LoveStats: stats, DiaryEntries: len(diary), MissMoods: missMoods}, nil
}
