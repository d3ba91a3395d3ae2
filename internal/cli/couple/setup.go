package couple

import (
	"fmt"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/tui"
	"github.com/julianstephens/lovecount/internal/validation"
)

// SetupCmd creates or edits the couple profile. Flags that are not given
// keep their current values.
type SetupCmd struct {
	Interactive bool `short:"i" help:"Fill the profile in with an interactive form."`

	Boy          *string `help:"His name."`
	Girl         *string `help:"Her name."`
	BoyAge       *int    `help:"His age (1-100)."`
	GirlAge      *int    `help:"Her age (1-100)."`
	Date         *string `short:"d" help:"Meeting date (YYYY-MM-DD)."`
	Time         *string `short:"t" help:"Meeting time (HH:MM)."`
	BoyNickname  *string `help:"His nickname."`
	GirlNickname *string `help:"Her nickname."`
}

func (c *SetupCmd) apply(form *validation.SetupForm) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&form.BoyName, c.Boy)
	set(&form.GirlName, c.Girl)
	set(&form.MeetingDate, c.Date)
	set(&form.MeetingTime, c.Time)
	set(&form.BoyNickname, c.BoyNickname)
	set(&form.GirlNickname, c.GirlNickname)
	if c.BoyAge != nil {
		form.BoyAge = *c.BoyAge
	}
	if c.GirlAge != nil {
		form.GirlAge = *c.GirlAge
	}
}

func (c *SetupCmd) Run(ctx *cli.Context) error {
	existing, err := ctx.State.LoadProfile()
	if err != nil {
		return err
	}
	form := validation.FormFromProfile(existing)
	c.apply(&form)

	if c.Interactive {
		fields := tui.SetupFieldsFrom(form)
		if err := tui.NewSetupForm(&fields).Run(); err != nil {
			return fmt.Errorf("setup cancelled: %w", err)
		}
		form = fields.SetupForm()
	}

	if errs := validation.ValidateSetup(form, ctx.State.Now(), ctx.State.Location()); !errs.Empty() {
		for _, f := range errs.Fields() {
			ctx.Printf("  ✗ %s: %s\n", f, errs[f])
		}
		return fmt.Errorf("profile not saved")
	}

	profile := form.Profile()
	if err := ctx.State.SaveProfile(profile); err != nil {
		return err
	}

	verb := "created"
	if existing != nil {
		verb = "updated"
	}
	ctx.Printf("✓ Profile %s: %s 💕 %s, meeting on %s at %s\n", verb,
		profile.DisplayName(models.Boy), profile.DisplayName(models.Girl), profile.MeetingDate, profile.MeetingTime)
	return nil
}
