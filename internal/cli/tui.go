package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dayface/internal/tui"
)

type TuiCmd struct {
	Date string `short:"D" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	cfg := ctx.config()
	model := tui.NewModel(ctx.Store, tui.Options{
		Date:        date,
		Timezone:    cfg.Timezone,
		Metrics:     cfg.Metrics(),
		Rotation:    cfg.RotationSettings(),
		WindowHours: cfg.WindowHours,
		Sunrise:     cfg.Sunrise,
		Sunset:      cfg.Sunset,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
