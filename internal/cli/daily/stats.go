package daily

import (
	"github.com/julianstephens/lovecount/internal/cli"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	s, err := ctx.State.Dashboard()
	if err != nil {
		return err
	}
	done, total, err := ctx.State.BucketProgress()
	if err != nil {
		return err
	}

	ctx.Println("💕 Love Stats")
	ctx.Printf("  Days waited:        %d\n", s.TotalDaysWaited)
	ctx.Printf("  Times opened:       %d\n", s.WebOpenCount)
	ctx.Printf("  Challenges done:    %d\n", s.ChallengesDone)
	ctx.Printf("  Miss clicks:        %d\n", s.MissClicks)
	ctx.Printf("  Diary notes:        %d\n", s.DiaryEntries)
	ctx.Printf("  Days missing 🥹:     %d\n", s.MissMoods)
	ctx.Printf("  Bucket list:        %d/%d\n", done, total)
	return nil
}
