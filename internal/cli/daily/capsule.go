package daily

import (
	"errors"
	"strings"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/state"
)

type CapsuleCmd struct {
	Seal   CapsuleSealCmd   `cmd:"" help:"Seal a message until the countdown ends."`
	Open   CapsuleOpenCmd   `cmd:"" help:"Open the capsule once the countdown is complete."`
	Delete CapsuleDeleteCmd `cmd:"" help:"Throw the capsule away."`
	Show   CapsuleShowCmd   `cmd:"" default:"1" help:"Show the capsule's status."`
}

type CapsuleSealCmd struct {
	Message []string `arg:"" help:"The message (up to 200 characters)."`
}

func (c *CapsuleSealCmd) Run(ctx *cli.Context) error {
	_, sealed, err := ctx.State.SealCapsule(strings.Join(c.Message, " "))
	if err != nil {
		return err
	}
	if !sealed {
		ctx.Println("Nothing to seal, the message is empty.")
		return nil
	}
	ctx.Println("🔒 Time capsule sealed. It opens when you meet.")
	return nil
}

type CapsuleOpenCmd struct{}

func (c *CapsuleOpenCmd) Run(ctx *cli.Context) error {
	st, err := ctx.State.CountdownState()
	if err != nil {
		return err
	}
	capsule, err := ctx.State.OpenCapsule(st)
	if errors.Is(err, state.ErrCapsuleLocked) {
		ctx.Println("🔒 Still locked. Wait until you meet 💕")
		return nil
	}
	if err != nil {
		return err
	}
	ctx.Println("💌 Your time capsule:")
	ctx.Printf("\n  %s\n", capsule.Message)
	return nil
}

type CapsuleDeleteCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *CapsuleDeleteCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := ctx.Confirm("Delete the time capsule?")
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Cancelled.")
			return nil
		}
	}
	if err := ctx.State.DeleteCapsule(); err != nil {
		return err
	}
	ctx.Println("✓ Time capsule deleted")
	return nil
}

type CapsuleShowCmd struct{}

func (c *CapsuleShowCmd) Run(ctx *cli.Context) error {
	capsule, err := ctx.State.LoadCapsule()
	if err != nil {
		return err
	}
	switch {
	case capsule == nil:
		ctx.Println("No time capsule yet. Seal one with 'lovecount capsule seal <message>'.")
	case capsule.IsOpened:
		ctx.Println("💌 Opened:")
		ctx.Printf("\n  %s\n", capsule.Message)
	default:
		ctx.Printf("🔒 Sealed on %s\n", formatInstant(capsule.CreatedAt, ctx.State.Location()))
	}
	return nil
}
