package models

import (
	"time"

	"github.com/julianstephens/lovecount/internal/utils"
)

// CoupleProfile is the setup record that drives the countdown.
type CoupleProfile struct {
	BoyName      string `json:"boyName"`
	GirlName     string `json:"girlName"`
	BoyAge       int    `json:"boyAge"`
	GirlAge      int    `json:"girlAge"`
	MeetingDate  string `json:"meetingDate"` // YYYY-MM-DD
	MeetingTime  string `json:"meetingTime"` // HH:MM
	BoyNickname  string `json:"boyNickname,omitempty"`
	GirlNickname string `json:"girlNickname,omitempty"`
}

// Name returns the partner's given name.
func (c *CoupleProfile) Name(p Partner) string {
	if p == Girl {
		return c.GirlName
	}
	return c.BoyName
}

// DisplayName prefers the nickname and falls back to the name.
func (c *CoupleProfile) DisplayName(p Partner) string {
	nick := c.BoyNickname
	if p == Girl {
		nick = c.GirlNickname
	}
	if nick != "" {
		return nick
	}
	return c.Name(p)
}

// Target resolves the meeting date and time to an instant in loc.
func (c *CoupleProfile) Target(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return utils.CombineDateAndTime(c.MeetingDate, c.MeetingTime, loc)
}
