package couple

import (
	"github.com/julianstephens/lovecount/internal/cli"
)

type SilentCmd struct {
	Mode string `arg:"" optional:"" enum:"on,off,status" default:"status" help:"on, off or status."`
}

func (c *SilentCmd) Run(ctx *cli.Context) error {
	switch c.Mode {
	case "on", "off":
		if err := ctx.State.SetSilentMode(c.Mode == "on"); err != nil {
			return err
		}
	}

	on, err := ctx.State.SilentMode()
	if err != nil {
		return err
	}
	if on {
		ctx.Println("🤫 Silent mode is on")
	} else {
		ctx.Println("🔔 Silent mode is off")
	}
	return nil
}
