package daily

import (
	"strings"
	"time"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/constants"
)

type DiaryCmd struct {
	Add  DiaryAddCmd  `cmd:"" help:"Write a short note."`
	List DiaryListCmd `cmd:"" default:"1" help:"Show notes, newest first."`
}

type DiaryAddCmd struct {
	Author string   `arg:"" help:"boy, girl, or a name from the profile."`
	Text   []string `arg:"" help:"The note (up to 100 characters)."`
}

func (c *DiaryAddCmd) Run(ctx *cli.Context) error {
	author, err := ctx.ParsePartner(c.Author)
	if err != nil {
		return err
	}
	entry, added, err := ctx.State.AddDiaryEntry(author, strings.Join(c.Text, " "))
	if err != nil {
		return err
	}
	if !added {
		ctx.Println("Nothing to save, the note is empty.")
		return nil
	}
	ctx.Printf("✓ Saved: %s\n", entry.Text)
	return nil
}

type DiaryListCmd struct {
	Limit int `short:"n" default:"10" help:"How many notes to show (0 for all)."`
}

func (c *DiaryListCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.State.LoadDiary()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.Println("The diary is empty.")
		return nil
	}
	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}
	loc := ctx.State.Location()
	for _, e := range entries {
		ctx.Printf("  %s  %-10s %s\n", formatInstant(e.Date, loc), ctx.PartnerName(e.Author), e.Text)
	}
	return nil
}

// formatInstant shows a stored timestamp in loc, or verbatim when unreadable.
func formatInstant(ts string, loc *time.Location) string {
	t, err := time.Parse(constants.TimestampFormat, ts)
	if err != nil {
		if t, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return ts
		}
	}
	return t.In(loc).Format("2006-01-02 15:04")
}
