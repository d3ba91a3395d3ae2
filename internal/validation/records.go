package validation

import (
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/state"
)

// LoadRecords reads every collection the validator inspects.
func LoadRecords(st *state.Manager) (Records, error) {
	var (
		r   Records
		err error
	)
	if r.Profile, err = st.LoadProfile(); err != nil {
		return r, err
	}
	if r.Moods, err = st.LoadMoods(); err != nil {
		return r, err
	}
	if r.Misses, err = st.LoadMisses(); err != nil {
		return r, err
	}
	if r.Diary, err = st.LoadDiary(); err != nil {
		return r, err
	}
	if r.Capsule, err = st.LoadCapsule(); err != nil {
		return r, err
	}
	if r.Stats, err = st.LoadStats(); err != nil {
		return r, err
	}
	if r.Bucket, err = st.LoadBucket(); err != nil {
		return r, err
	}
	if r.Promises, err = st.LoadPromises(); err != nil {
		return r, err
	}
	if r.Memories, err = st.LoadMemories(); err != nil {
		return r, err
	}
	if r.Truth, err = st.LoadTruthHistory(); err != nil {
		return r, err
	}
	r.Wheels = map[models.WheelCategory][]string{}
	for _, cat := range []models.WheelCategory{models.WheelFood, models.WheelDate} {
		opts, err := st.LoadWheel(cat)
		if err != nil {
			return r, err
		}
		r.Wheels[cat] = opts
	}
	return r, nil
}
