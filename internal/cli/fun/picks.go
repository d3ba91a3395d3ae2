package fun

import (
	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/countdown"
	"github.com/julianstephens/lovecount/internal/love"
	"github.com/julianstephens/lovecount/internal/models"
)

// ChallengeCmd draws a date challenge. Every draw counts toward the stats.
type ChallengeCmd struct{}

func (c *ChallengeCmd) Run(ctx *cli.Context) error {
	challenge := ctx.Picker.DateChallenge()
	stats, err := ctx.State.IncrementStat(models.StatChallengesDone)
	if err != nil {
		return err
	}
	ctx.Printf("🎯 %s\n", challenge)
	ctx.Printf("   (%d challenges so far 🏆)\n", stats.ChallengesDone)
	return nil
}

type MessageCmd struct{}

func (c *MessageCmd) Run(ctx *cli.Context) error {
	days := 0
	target, ok, err := ctx.State.Target()
	if err != nil {
		return err
	}
	if ok {
		days = countdown.DaysRemaining(ctx.State.Now(), target)
	}
	ctx.Println(ctx.Picker.CuteMessage(days))
	return nil
}

type QuoteCmd struct {
	Random bool `short:"r" help:"A random love quote instead of the quote of the day."`
}

func (c *QuoteCmd) Run(ctx *cli.Context) error {
	if c.Random {
		ctx.Println(ctx.Picker.LoveQuote())
		return nil
	}
	ctx.Println(love.DailyQuote(ctx.State.Now()))
	return nil
}
