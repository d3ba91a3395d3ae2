package daily

import (
	"fmt"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
)

// MoodCmd sets one partner's mood for today, or shows today's moods.
type MoodCmd struct {
	Partner string `arg:"" optional:"" help:"boy, girl, or a name from the profile."`
	Mood    string `arg:"" optional:"" help:"Mood emoji or label (e.g. 🥰 or yêu)."`
}

// resolveMood accepts the emoji itself or its label.
func resolveMood(s string) (string, bool) {
	for _, m := range constants.Moods {
		if s == m.Emoji || s == m.Label {
			return m.Emoji, true
		}
	}
	return "", false
}

func (c *MoodCmd) Run(ctx *cli.Context) error {
	if c.Partner == "" {
		return c.show(ctx)
	}
	if c.Mood == "" {
		return fmt.Errorf("give a mood for %s", c.Partner)
	}

	p, err := ctx.ParsePartner(c.Partner)
	if err != nil {
		return err
	}
	emoji, ok := resolveMood(c.Mood)
	if !ok {
		return fmt.Errorf("unknown mood %q, pick one of: %s", c.Mood, moodChoices())
	}

	if _, err := ctx.State.SetMood(p, emoji); err != nil {
		return err
	}
	ctx.Printf("✓ %s is feeling %s today\n", ctx.PartnerName(p), emoji)
	return nil
}

func (c *MoodCmd) show(ctx *cli.Context) error {
	rec, _, err := ctx.State.TodayMood()
	if err != nil {
		return err
	}
	ctx.Println("Today's moods:")
	for _, p := range models.Partners {
		mood := rec.MoodOf(p)
		if mood == "" {
			mood = "-"
		}
		ctx.Printf("  %-12s %s\n", ctx.PartnerName(p), mood)
	}
	ctx.Printf("\nMoods: %s\n", moodChoices())
	return nil
}

func moodChoices() string {
	out := ""
	for i, m := range constants.Moods {
		if i > 0 {
			out += "  "
		}
		out += m.Emoji + " " + m.Label
	}
	return out
}
