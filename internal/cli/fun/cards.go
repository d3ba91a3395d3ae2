package fun

import (
	"time"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
)

type TruthCmd struct {
	By string `short:"b" help:"Who answers (boy, girl, or a name)."`
}

func (c *TruthCmd) Run(ctx *cli.Context) error {
	return draw(ctx, models.Truth, c.By)
}

type DareCmd struct {
	By string `short:"b" help:"Who takes the dare (boy, girl, or a name)."`
}

func (c *DareCmd) Run(ctx *cli.Context) error {
	return draw(ctx, models.Dare, c.By)
}

// draw picks a card and records it in the history.
func draw(ctx *cli.Context, kind models.CardKind, by string) error {
	answeredBy := by
	if by != "" {
		if p, err := ctx.ParsePartner(by); err == nil {
			answeredBy = ctx.PartnerName(p)
		}
	}

	text := ctx.Picker.DrawCard(kind)
	if _, err := ctx.State.AppendTruth(models.TruthOrDareHistoryItem{
		Type:       kind,
		Text:       text,
		AnsweredBy: answeredBy,
	}); err != nil {
		return err
	}

	label := "💬 Truth"
	if kind == models.Dare {
		label = "🔥 Dare"
	}
	if answeredBy != "" {
		label += " for " + answeredBy
	}
	ctx.Printf("%s:\n  %s\n", label, text)
	return nil
}

type HistoryCmd struct {
	Limit int `short:"n" default:"10" help:"How many cards to show (0 for all)."`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	items, err := ctx.State.LoadTruthHistory()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		ctx.Println("No cards drawn yet.")
		return nil
	}
	if c.Limit > 0 && len(items) > c.Limit {
		items = items[:c.Limit]
	}
	for _, it := range items {
		when := it.Timestamp
		if t, err := time.Parse(constants.TimestampFormat, it.Timestamp); err == nil {
			when = t.In(ctx.State.Location()).Format("2006-01-02 15:04")
		}
		who := it.AnsweredBy
		if who == "" {
			who = "-"
		}
		ctx.Printf("  %s  %-5s %-10s %s\n", when, it.Type, who, it.Text)
	}
	return nil
}
