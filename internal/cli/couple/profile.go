package couple

import (
	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/models"
)

type ProfileCmd struct {
	Clear bool `help:"Delete the profile and return to setup. Other records are kept."`
}

func (c *ProfileCmd) Run(ctx *cli.Context) error {
	if c.Clear {
		ok, err := ctx.Confirm("Delete the couple profile?")
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Cancelled.")
			return nil
		}
		if err := ctx.State.ClearProfile(); err != nil {
			return err
		}
		ctx.Println("✓ Profile deleted")
		return nil
	}

	p, err := ctx.RequireProfile()
	if err != nil {
		return err
	}

	ctx.Println("Couple Profile:")
	for _, partner := range models.Partners {
		label := "He"
		age := p.BoyAge
		if partner == models.Girl {
			label = "She"
			age = p.GirlAge
		}
		name := p.Name(partner)
		if nick := p.DisplayName(partner); nick != name {
			name += " (" + nick + ")"
		}
		ctx.Printf("  %-4s %s, %d\n", label+":", name, age)
	}
	ctx.Printf("  Meeting: %s at %s\n", p.MeetingDate, p.MeetingTime)
	return nil
}
