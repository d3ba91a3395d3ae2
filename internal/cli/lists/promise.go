package lists

import (
	"strings"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/constants"
)

type PromiseCmd struct {
	List    PromiseListCmd    `cmd:"" default:"1" help:"Show promises, newest first."`
	Add     PromiseAddCmd     `cmd:"" help:"Make a promise."`
	Remove  PromiseRemoveCmd  `cmd:"" help:"Take a promise back."`
	Suggest PromiseSuggestCmd `cmd:"" help:"Show ideas."`
}

type PromiseListCmd struct{}

func (c *PromiseListCmd) Run(ctx *cli.Context) error {
	promises, err := ctx.State.LoadPromises()
	if err != nil {
		return err
	}
	if len(promises) == 0 {
		ctx.Println("No promises yet.")
		return nil
	}
	for i, p := range promises {
		pinky := ""
		if p.Pinky {
			pinky = " 🤙"
		}
		ctx.Printf("  %2d. %s: %s%s  (%s)\n", i+1, ctx.PartnerName(p.From), p.Text, pinky, shortID(p.ID))
	}
	return nil
}

type PromiseAddCmd struct {
	From  string   `arg:"" help:"Who promises: boy, girl, or a name."`
	Text  []string `arg:"" help:"The promise (up to 150 characters)."`
	Pinky bool     `help:"Make it a pinky promise."`
}

func (c *PromiseAddCmd) Run(ctx *cli.Context) error {
	from, err := ctx.ParsePartner(c.From)
	if err != nil {
		return err
	}
	p, added, err := ctx.State.AddPromise(from, strings.Join(c.Text, " "), c.Pinky)
	if err != nil {
		return err
	}
	if !added {
		ctx.Println("Nothing to promise, the text is empty.")
		return nil
	}
	ctx.Printf("🤝 %s promised: %s\n", ctx.PartnerName(p.From), p.Text)
	return nil
}

type PromiseRemoveCmd struct {
	Ref string `arg:"" help:"Promise number or ID prefix."`
}

func (c *PromiseRemoveCmd) Run(ctx *cli.Context) error {
	promises, err := ctx.State.LoadPromises()
	if err != nil {
		return err
	}
	ids := make([]string, len(promises))
	for i, p := range promises {
		ids[i] = p.ID
	}
	id, err := resolveRef(ids, c.Ref)
	if err != nil {
		return err
	}
	if err := ctx.State.RemovePromise(id); err != nil {
		return err
	}
	ctx.Println("✓ Removed")
	return nil
}

type PromiseSuggestCmd struct{}

func (c *PromiseSuggestCmd) Run(ctx *cli.Context) error {
	for _, s := range constants.PromiseSuggestions {
		ctx.Printf("  %s\n", s)
	}
	return nil
}

