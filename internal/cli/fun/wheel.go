package fun

import (
	"errors"
	"fmt"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/love"
	"github.com/julianstephens/lovecount/internal/models"
)

type WheelCmd struct {
	Spin   WheelSpinCmd   `cmd:"" default:"withargs" help:"Spin a wheel."`
	List   WheelListCmd   `cmd:"" help:"List a wheel's options."`
	Add    WheelAddCmd    `cmd:"" help:"Add an option."`
	Remove WheelRemoveCmd `cmd:"" help:"Remove an option by its number."`
	Reset  WheelResetCmd  `cmd:"" help:"Restore the built-in options."`
}

// WheelArg is the category every wheel subcommand takes.
type WheelArg struct {
	Category string `arg:"" optional:"" enum:"food,date" default:"food" help:"food or date."`
}

func (w WheelArg) category() models.WheelCategory {
	return models.WheelCategory(w.Category)
}

func printOptions(ctx *cli.Context, opts []string) {
	if len(opts) == 0 {
		ctx.Println("  (no options)")
		return
	}
	for i, o := range opts {
		ctx.Printf("  %2d. %s\n", i+1, o)
	}
}

type WheelSpinCmd struct {
	WheelArg `embed:""`
}

func (c *WheelSpinCmd) Run(ctx *cli.Context) error {
	opts, err := ctx.State.LoadWheel(c.category())
	if err != nil {
		return err
	}
	choice, _, err := ctx.Picker.Spin(opts)
	if errors.Is(err, love.ErrTooFewOptions) {
		return fmt.Errorf("%w, add some with 'lovecount wheel add %s <option>'", err, c.Category)
	}
	if err != nil {
		return err
	}
	ctx.Printf("🎡 The wheel says: %s\n", choice)
	return nil
}

type WheelListCmd struct {
	WheelArg `embed:""`
}

func (c *WheelListCmd) Run(ctx *cli.Context) error {
	opts, err := ctx.State.LoadWheel(c.category())
	if err != nil {
		return err
	}
	ctx.Printf("%s wheel:\n", c.Category)
	printOptions(ctx, opts)
	return nil
}

type WheelAddCmd struct {
	Category string `arg:"" enum:"food,date" help:"food or date."`
	Option   string `arg:"" help:"Option label."`
}

func (c *WheelAddCmd) Run(ctx *cli.Context) error {
	opts, added, err := ctx.State.AddWheelOption(models.WheelCategory(c.Category), c.Option)
	if err != nil {
		return err
	}
	if !added {
		ctx.Println("Not added: the option is empty or already on the wheel.")
		return nil
	}
	ctx.Printf("✓ Added. The %s wheel has %d options.\n", c.Category, len(opts))
	return nil
}

type WheelRemoveCmd struct {
	Category string `arg:"" enum:"food,date" help:"food or date."`
	Number   int    `arg:"" help:"Option number as shown by 'wheel list'."`
}

func (c *WheelRemoveCmd) Run(ctx *cli.Context) error {
	opts, err := ctx.State.RemoveWheelOption(models.WheelCategory(c.Category), c.Number-1)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Removed. The %s wheel has %d options.\n", c.Category, len(opts))
	return nil
}

type WheelResetCmd struct {
	WheelArg `embed:""`
}

func (c *WheelResetCmd) Run(ctx *cli.Context) error {
	opts, err := ctx.State.ResetWheel(c.category())
	if err != nil {
		return err
	}
	ctx.Printf("✓ The %s wheel is back to its %d built-in options.\n", c.Category, len(opts))
	return nil
}
