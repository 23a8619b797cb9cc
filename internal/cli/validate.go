package cli

import (
	"fmt"

	"github.com/julianstephens/dayface/internal/validation"
)

type ValidateCmd struct {
	Date string `short:"D" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *ValidateCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	events, err := ctx.Store.GetEventsForDate(date)
	if err != nil {
		return fmt.Errorf("failed to get events: %w", err)
	}

	result := validation.New().ValidateEvents(events)
	ctx.printf("%s", result.FormatReport())
	if result.HasBlocking() {
		return fmt.Errorf("%s has events that cannot be laid out: %w", date, validation.ErrInvalidInterval)
	}
	return nil
}
