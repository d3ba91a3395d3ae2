package daily

import (
	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/love"
	"github.com/julianstephens/lovecount/internal/models"
)

// MissCmd counts one "I miss you" click, or shows today's tally.
type MissCmd struct {
	Partner string `arg:"" optional:"" help:"Who misses the other: boy, girl, or a name."`
}

func (c *MissCmd) Run(ctx *cli.Context) error {
	var (
		rec models.MissCounter
		err error
	)
	if c.Partner != "" {
		p, perr := ctx.ParsePartner(c.Partner)
		if perr != nil {
			return perr
		}
		if rec, err = ctx.State.MissClick(p); err != nil {
			return err
		}
		ctx.Printf("🥹 %s misses %s\n", ctx.PartnerName(p), ctx.PartnerName(p.Other()))
	} else if rec, err = ctx.State.TodayMiss(); err != nil {
		return err
	}

	ctx.Printf("Today: %s %d  ·  %s %d\n",
		ctx.PartnerName(models.Boy), rec.BoyCount,
		ctx.PartnerName(models.Girl), rec.GirlCount)
	if winner, ok := love.MissWinner(rec); ok {
		ctx.Printf("%s misses more today (+%d) 💕\n", ctx.PartnerName(winner), love.MissMargin(rec))
	} else if rec.Total() > 0 {
		ctx.Println("Even! You miss each other just as much 💕")
	}
	return nil
}
