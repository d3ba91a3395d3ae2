package validation

import (
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/gookit/validate"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/utils"
)

// SetupForm is the raw input of the setup screen.
type SetupForm struct {
	BoyName      string `json:"boyName" validate:"required"`
	GirlName     string `json:"girlName" validate:"required"`
	BoyAge       int    `json:"boyAge" validate:"required|min:1|max:100"`
	GirlAge      int    `json:"girlAge" validate:"required|min:1|max:100"`
	MeetingDate  string `json:"meetingDate" validate:"required|calendarDate"`
	MeetingTime  string `json:"meetingTime" validate:"required|clockTime"`
	BoyNickname  string `json:"boyNickname"`
	GirlNickname string `json:"girlNickname"`
}

// CalendarDate is the calendarDate rule.
func (f SetupForm) CalendarDate(val string) bool { return utils.ValidateDateFormat(val) }

// ClockTime is the clockTime rule.
func (f SetupForm) ClockTime(val string) bool { return utils.ValidateTimeFormat(val) }

// Messages shown inline next to each field.
var fieldMessages = map[string]string{
	"boyName":     "Please enter his name",
	"girlName":    "Please enter her name",
	"boyAge":      "Age must be between 1 and 100",
	"girlAge":     "Age must be between 1 and 100",
	"meetingDate": "Pick a meeting date (YYYY-MM-DD)",
	"meetingTime": "Pick a meeting time (HH:MM)",
}

const pastTargetMessage = "The meeting must be in the future"

// FormErrors maps a form field (by its JSON name) to one message.
type FormErrors map[string]string

func (e FormErrors) Empty() bool { return len(e) == 0 }

// Fields returns the failing fields in a stable order.
func (e FormErrors) Fields() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (e FormErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// Normalize trims every text field.
func (f SetupForm) Normalize() SetupForm {
	f.BoyName = strings.TrimSpace(f.BoyName)
	f.GirlName = strings.TrimSpace(f.GirlName)
	f.MeetingDate = strings.TrimSpace(f.MeetingDate)
	f.MeetingTime = strings.TrimSpace(f.MeetingTime)
	f.BoyNickname = strings.TrimSpace(f.BoyNickname)
	f.GirlNickname = strings.TrimSpace(f.GirlNickname)
	return f
}

// Profile converts a validated form.
func (f SetupForm) Profile() models.CoupleProfile {
	f = f.Normalize()
	return models.CoupleProfile{
		BoyName:      f.BoyName,
		GirlName:     f.GirlName,
		BoyAge:       f.BoyAge,
		GirlAge:      f.GirlAge,
		MeetingDate:  f.MeetingDate,
		MeetingTime:  f.MeetingTime,
		BoyNickname:  f.BoyNickname,
		GirlNickname: f.GirlNickname,
	}
}

// FormFromProfile pre-fills the form for editing.
func FormFromProfile(p *models.CoupleProfile) SetupForm {
	if p == nil {
		return SetupForm{
			BoyAge:      constants.DefaultAge,
			GirlAge:     constants.DefaultAge,
			MeetingTime: constants.DefaultMeetingTime,
		}
	}
	return SetupForm{
		BoyName:      p.BoyName,
		GirlName:     p.GirlName,
		BoyAge:       p.BoyAge,
		GirlAge:      p.GirlAge,
		MeetingDate:  p.MeetingDate,
		MeetingTime:  p.MeetingTime,
		BoyNickname:  p.BoyNickname,
		GirlNickname: p.GirlNickname,
	}
}

// ValidateSetup checks the form and that the meeting lies strictly after now
// in loc. An empty result means the profile can be saved.
func ValidateSetup(form SetupForm, now time.Time, loc *time.Location) FormErrors {
	form = form.Normalize()
	errs := FormErrors{}

	v := validate.Struct(&form)
	v.StopOnError = false
	if !v.Validate() {
		for key := range v.Errors {
			field := jsonField(key)
			if msg, ok := fieldMessages[field]; ok {
				errs[field] = msg
			} else {
				errs[field] = v.Errors.FieldOne(key)
			}
		}
	}

	_, dateBad := errs["meetingDate"]
	_, timeBad := errs["meetingTime"]
	if !dateBad && !timeBad {
		target, err := utils.CombineDateAndTime(form.MeetingDate, form.MeetingTime, loc)
		if err != nil || !target.After(now) {
			errs["meetingDate"] = pastTargetMessage
		}
	}
	return errs
}

var jsonNames = func() map[string]string {
	out := map[string]string{}
	t := reflect.TypeOf(SetupForm{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		out[strings.ToLower(f.Name)] = name
		out[strings.ToLower(name)] = name
	}
	return out
}()

// jsonField maps whatever key the validator reports to the JSON field name.
func jsonField(key string) string {
	if name, ok := jsonNames[strings.ToLower(key)]; ok {
		return name
	}
	return key
}
