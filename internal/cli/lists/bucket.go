package lists

import (
	"strings"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
)

type BucketCmd struct {
	List    BucketListCmd    `cmd:"" default:"1" help:"Show the bucket list."`
	Add     BucketAddCmd     `cmd:"" help:"Add something to do together."`
	Toggle  BucketToggleCmd  `cmd:"" help:"Mark an item done, or not done."`
	Remove  BucketRemoveCmd  `cmd:"" help:"Remove an item."`
	Suggest BucketSuggestCmd `cmd:"" help:"Show ideas."`
}

func bucketIDs(items []models.BucketListItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

type BucketListCmd struct{}

func (c *BucketListCmd) Run(ctx *cli.Context) error {
	items, err := ctx.State.LoadBucket()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		ctx.Println("The bucket list is empty. Try 'lovecount bucket suggest'.")
		return nil
	}
	done := 0
	for i, it := range items {
		mark := "[ ]"
		if it.Completed {
			mark = "[x]"
			done++
		}
		ctx.Printf("  %2d. %s %s %s  (%s)\n", i+1, mark, it.Emoji, it.Text, shortID(it.ID))
	}
	ctx.Printf("\n%d/%d done\n", done, len(items))
	return nil
}

type BucketAddCmd struct {
	Text  []string `arg:"" help:"What to do."`
	Emoji string   `short:"e" help:"Icon (defaults to 💕)."`
}

func (c *BucketAddCmd) Run(ctx *cli.Context) error {
	item, added, err := ctx.State.AddBucketItem(strings.Join(c.Text, " "), c.Emoji)
	if err != nil {
		return err
	}
	if !added {
		ctx.Println("Nothing to add, the text is empty.")
		return nil
	}
	ctx.Printf("✓ Added %s %s\n", item.Emoji, item.Text)
	return nil
}

type BucketToggleCmd struct {
	Ref string `arg:"" help:"Item number or ID prefix."`
}

func (c *BucketToggleCmd) Run(ctx *cli.Context) error {
	items, err := ctx.State.LoadBucket()
	if err != nil {
		return err
	}
	id, err := resolveRef(bucketIDs(items), c.Ref)
	if err != nil {
		return err
	}
	item, err := ctx.State.ToggleBucketItem(id)
	if err != nil {
		return err
	}
	if item.Completed {
		ctx.Printf("🎉 Done: %s\n", item.Text)
	} else {
		ctx.Printf("↩ Reopened: %s\n", item.Text)
	}
	return nil
}

type BucketRemoveCmd struct {
	Ref string `arg:"" help:"Item number or ID prefix."`
}

func (c *BucketRemoveCmd) Run(ctx *cli.Context) error {
	items, err := ctx.State.LoadBucket()
	if err != nil {
		return err
	}
	id, err := resolveRef(bucketIDs(items), c.Ref)
	if err != nil {
		return err
	}
	if err := ctx.State.RemoveBucketItem(id); err != nil {
		return err
	}
	ctx.Println("✓ Removed")
	return nil
}

type BucketSuggestCmd struct{}

func (c *BucketSuggestCmd) Run(ctx *cli.Context) error {
	for _, s := range constants.BucketSuggestions {
		ctx.Printf("  %s %s\n", s.Emoji, s.Text)
	}
	return nil
}
