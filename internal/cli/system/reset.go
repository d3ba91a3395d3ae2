package system

import (
	"github.com/julianstephens/lovecount/internal/cli"
)

// ResetCmd wipes every record after a confirmation, like the app's
// "reset everything" button.
type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ctx.Println("⚠️  This deletes the profile and every diary entry, mood, capsule and list.")
		ok, err := ctx.Confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.State.ResetAll(); err != nil {
		return err
	}
	ctx.Println("✓ All data cleared. Run 'lovecount setup' to start a new countdown.")
	return nil
}
