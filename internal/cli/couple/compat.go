package couple

import (
	"errors"
	"strings"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/love"
)

// CompatCmd scores two names. Without arguments it uses the profile's names.
type CompatCmd struct {
	Names []string `arg:"" optional:"" help:"Two names; order matters."`
}

func (c *CompatCmd) Run(ctx *cli.Context) error {
	var a, b string
	switch len(c.Names) {
	case 0:
		p, err := ctx.RequireProfile()
		if err != nil {
			return err
		}
		a, b = p.BoyName, p.GirlName
	case 2:
		a, b = c.Names[0], c.Names[1]
	default:
		return errors.New("give exactly two names, or none to use the profile")
	}

	score := love.Compatibility(a, b)
	ctx.Printf("%s 💕 %s\n", a, b)
	ctx.Printf("Compatibility: %d%% %s\n", score, hearts(score))
	return nil
}

// hearts draws one heart per full ten points.
func hearts(score int) string {
	return strings.Repeat("❤", score/10)
}
