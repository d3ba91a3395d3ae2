package couple

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/countdown"
	"github.com/julianstephens/lovecount/internal/logger"
	"github.com/julianstephens/lovecount/internal/models"
)

const (
	completeTitle = "lovecount"
	completeText  = "It's time! You're finally together 💕"
)

// WatchCmd prints a live countdown line until the meeting, then notifies
// the tray app once.
type WatchCmd struct {
	Interval time.Duration `help:"Refresh interval (defaults to the tick_interval setting)."`
	Keep     bool          `help:"Keep running after the countdown completes."`
}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	p, err := ctx.RequireProfile()
	if err != nil {
		return err
	}
	target, ok, err := ctx.State.Target()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("stored meeting date/time %q %q is unreadable", p.MeetingDate, p.MeetingTime)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticker := countdown.NewTicker(target)
	ticker.Now = ctx.State.Now
	ticker.StopOnComplete = !c.Keep
	if c.Interval > 0 {
		ticker.Interval = c.Interval
	} else if ctx.Config != nil && ctx.Config.TickInterval > 0 {
		ticker.Interval = ctx.Config.TickInterval
	}
	ticker.OnComplete = func(countdown.Tick) {
		notifyComplete(runCtx, ctx)
	}

	ctx.Printf("Counting down to %s 💕 %s\n", p.DisplayName(models.Boy), p.DisplayName(models.Girl))
	err = ticker.Run(runCtx, func(t countdown.Tick) {
		if t.State == countdown.Complete {
			ctx.Printf("\r🎉 %s\033[K\n", completeText)
			return
		}
		ctx.Printf("\r⏳ %s\033[K", t.Left)
	})
	if errors.Is(err, context.Canceled) {
		ctx.Println()
		return nil
	}
	return err
}

// notifyComplete sends the completion notification unless silent mode is on.
func notifyComplete(runCtx context.Context, ctx *cli.Context) {
	silent, err := ctx.State.SilentMode()
	if err != nil {
		logger.Warn("could not read silent mode", "error", err)
	}
	if silent || ctx.Notifier == nil {
		return
	}
	if err := ctx.Notifier.Notify(runCtx, completeTitle, completeText); err != nil {
		logger.Warn("completion notification failed", "error", err)
	}
}
