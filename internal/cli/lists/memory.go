package lists

import (
	"strings"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/state"
)

type MemoryCmd struct {
	List   MemoryListCmd   `cmd:"" default:"1" help:"Show the timeline, oldest first."`
	Add    MemoryAddCmd    `cmd:"" help:"Add a memory."`
	Remove MemoryRemoveCmd `cmd:"" help:"Remove a memory."`
}

type MemoryListCmd struct{}

func (c *MemoryListCmd) Run(ctx *cli.Context) error {
	memories, err := ctx.State.LoadMemories()
	if err != nil {
		return err
	}
	if len(memories) == 0 {
		ctx.Println("No memories yet.")
		return nil
	}
	for i, m := range memories {
		ctx.Printf("  %2d. %s %s %s  (%s)\n", i+1, m.Date, m.Emoji, m.Title, shortID(m.ID))
		if m.Description != "" {
			ctx.Printf("        %s\n", m.Description)
		}
	}
	return nil
}

type MemoryAddCmd struct {
	By          string   `arg:"" help:"Who adds it: boy, girl, or a name."`
	Date        string   `arg:"" help:"When it happened (YYYY-MM-DD)."`
	Title       []string `arg:"" help:"Title (up to 60 characters)."`
	Description string   `short:"d" help:"Longer description (up to 150 characters)."`
	Emoji       string   `short:"e" help:"Icon (defaults to 💕)."`
}

func (c *MemoryAddCmd) Run(ctx *cli.Context) error {
	by, err := ctx.ParsePartner(c.By)
	if err != nil {
		return err
	}
	ev, added, err := ctx.State.AddMemory(state.MemoryInput{
		Title:       strings.Join(c.Title, " "),
		Description: c.Description,
		Date:        c.Date,
		Emoji:       c.Emoji,
		AddedBy:     by,
	})
	if err != nil {
		return err
	}
	if !added {
		ctx.Println("Nothing to add, the title is empty.")
		return nil
	}
	ctx.Printf("✓ Remembered %s %s on %s\n", ev.Emoji, ev.Title, ev.Date)
	return nil
}

type MemoryRemoveCmd struct {
	Ref string `arg:"" help:"Memory number or ID prefix."`
}

func (c *MemoryRemoveCmd) Run(ctx *cli.Context) error {
	memories, err := ctx.State.LoadMemories()
	if err != nil {
		return err
	}
	ids := make([]string, len(memories))
	for i, m := range memories {
		ids[i] = m.ID
	}
	id, err := resolveRef(ids, c.Ref)
	if err != nil {
		return err
	}
	if err := ctx.State.RemoveMemory(id); err != nil {
		return err
	}
	ctx.Println("✓ Removed")
	return nil
}
