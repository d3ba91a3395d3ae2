package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/utils"
	"github.com/julianstephens/lovecount/internal/validation"
)

// SetupFields holds the setup form's text inputs. Ages stay strings until
// the form is submitted.
type SetupFields struct {
	BoyName      string
	GirlName     string
	BoyAge       string
	GirlAge      string
	MeetingDate  string
	MeetingTime  string
	BoyNickname  string
	GirlNickname string
}

func SetupFieldsFrom(f validation.SetupForm) SetupFields {
	age := func(n int) string {
		if n == 0 {
			return ""
		}
		return strconv.Itoa(n)
	}
	return SetupFields{
		BoyName:      f.BoyName,
		GirlName:     f.GirlName,
		BoyAge:       age(f.BoyAge),
		GirlAge:      age(f.GirlAge),
		MeetingDate:  f.MeetingDate,
		MeetingTime:  f.MeetingTime,
		BoyNickname:  f.BoyNickname,
		GirlNickname: f.GirlNickname,
	}
}

// SetupForm converts the inputs. An unparsable age becomes 0 and fails
// validation.
func (s SetupFields) SetupForm() validation.SetupForm {
	boyAge, _ := strconv.Atoi(strings.TrimSpace(s.BoyAge))
	girlAge, _ := strconv.Atoi(strings.TrimSpace(s.GirlAge))
	return validation.SetupForm{
		BoyName:      s.BoyName,
		GirlName:     s.GirlName,
		BoyAge:       boyAge,
		GirlAge:      girlAge,
		MeetingDate:  s.MeetingDate,
		MeetingTime:  s.MeetingTime,
		BoyNickname:  s.BoyNickname,
		GirlNickname: s.GirlNickname,
	}
}

func notBlank(msg string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

func validAge(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < constants.MinAge || n > constants.MaxAge {
		return errors.New("age must be between 1 and 100")
	}
	return nil
}

// NewSetupForm builds the profile form bound to s.
func NewSetupForm(s *SetupFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("His name").Value(&s.BoyName).Validate(notBlank("please enter his name")),
			huh.NewInput().Title("His age").Value(&s.BoyAge).Validate(validAge),
			huh.NewInput().Title("His nickname").Description("optional").Value(&s.BoyNickname),
		),
		huh.NewGroup(
			huh.NewInput().Title("Her name").Value(&s.GirlName).Validate(notBlank("please enter her name")),
			huh.NewInput().Title("Her age").Value(&s.GirlAge).Validate(validAge),
			huh.NewInput().Title("Her nickname").Description("optional").Value(&s.GirlNickname),
		),
		huh.NewGroup(
			huh.NewInput().Title("Meeting date").Placeholder("YYYY-MM-DD").Value(&s.MeetingDate).
				Validate(func(v string) error {
					if !utils.ValidateDateFormat(strings.TrimSpace(v)) {
						return errors.New("use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().Title("Meeting time").Placeholder("HH:MM").Value(&s.MeetingTime).
				Validate(func(v string) error {
					if !utils.ValidateTimeFormat(strings.TrimSpace(v)) {
						return errors.New("use HH:MM")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

type DiaryFormModel struct {
	Author models.Partner
	Text   string
}

func partnerOptions(names map[models.Partner]string) []huh.Option[models.Partner] {
	opts := make([]huh.Option[models.Partner], 0, len(models.Partners))
	for _, p := range models.Partners {
		label := names[p]
		if label == "" {
			label = string(p)
		}
		opts = append(opts, huh.NewOption(label, p))
	}
	return opts
}

func newDiaryForm(f *DiaryFormModel, names map[models.Partner]string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Partner]().Title("Who is writing?").Options(partnerOptions(names)...).Value(&f.Author),
			huh.NewInput().Title("Note").CharLimit(constants.MaxDiaryText).Value(&f.Text),
		),
	).WithTheme(huh.ThemeDracula())
}

type CapsuleFormModel struct {
	Message string
}

func newCapsuleForm(f *CapsuleFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Time capsule").
				Description("Sealed until the countdown ends").
				CharLimit(constants.MaxCapsuleText).
				Value(&f.Message),
		),
	).WithTheme(huh.ThemeDracula())
}

type WheelFormModel struct {
	Category models.WheelCategory
	Label    string
}

func newWheelForm(f *WheelFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("New " + string(f.Category) + " option").Value(&f.Label),
		),
	).WithTheme(huh.ThemeDracula())
}
