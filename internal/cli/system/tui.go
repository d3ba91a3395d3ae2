package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// Back up on startup, after the store has loaded.
	ctx.PerformAutomaticBackup()

	model := tui.NewModel(ctx.State, ctx.Picker, ctx.Notifier)
	if ctx.Config != nil {
		model.SetTickInterval(ctx.Config.TickInterval)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}
