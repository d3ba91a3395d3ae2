package couple

import (
	"fmt"
	"time"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/countdown"
	"github.com/julianstephens/lovecount/internal/love"
	"github.com/julianstephens/lovecount/internal/models"
)

type CountdownCmd struct{}

func (c *CountdownCmd) Run(ctx *cli.Context) error {
	p, err := ctx.RequireProfile()
	if err != nil {
		return err
	}
	target, ok, err := ctx.State.Target()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("stored meeting date/time %q %q is unreadable, run 'lovecount setup' again", p.MeetingDate, p.MeetingTime)
	}

	now := ctx.State.Now()
	ctx.Printf("%s 💕 %s\n", p.DisplayName(models.Boy), p.DisplayName(models.Girl))
	ctx.Printf("Meeting: %s\n\n", target.Format("Mon 2006-01-02 15:04"))
	ctx.Println(Describe(now, target))
	ctx.Printf("\n✨ %s\n", love.DailyQuote(now))
	return nil
}

// Describe renders the countdown at now. The breakdown is floored; the
// day summary is rounded up.
func Describe(now, target time.Time) string {
	if countdown.StateAt(now, target) == countdown.Complete {
		return "🎉 It's time! You're finally together 💕"
	}
	left := countdown.Compute(now, target)
	days := countdown.DaysRemaining(now, target)
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	return fmt.Sprintf("⏳ %d days %02d:%02d:%02d\n📅 %d %s to go", left.Days, left.Hours, left.Minutes, left.Seconds, days, unit)
}
