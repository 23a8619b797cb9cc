package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/logger"
	"github.com/julianstephens/dayface/internal/models"
	"github.com/julianstephens/dayface/internal/scheduler"
	"github.com/julianstephens/dayface/internal/utils"
	"github.com/julianstephens/dayface/internal/validation"
)

type EventAddCmd struct {
	Title    string `arg:"" help:"Event title."`
	Start    string `short:"s" help:"Start time (HH:MM)."`
	End      string `short:"e" help:"End time (HH:MM, 00:00 or 24:00 for end of day)."`
	Duration int    `short:"m" help:"Length in minutes; without --start the event goes in the first free block that fits."`
	After    string `help:"With --duration, start no earlier than this time (HH:MM)."`
	Before   string `help:"With --duration, end no later than this time (HH:MM)."`
	Date     string `short:"D" help:"Date (YYYY-MM-DD), defaults to today."`
	Color    string `short:"c" help:"Slice color (hex)."`
	Icon     string `help:"Icon name."`
	Notes    string `short:"n" help:"Free-form notes."`
}

// span fills in start and end times, placing the event when only a duration
// was given.
func (c *EventAddCmd) span(ctx *Context, date string) (string, string, error) {
	if c.Start != "" {
		if c.End != "" {
			return c.Start, c.End, nil
		}
		if c.Duration <= 0 {
			return "", "", fmt.Errorf("--end or --duration is required with --start")
		}
		start, err := utils.ParseTimeToMinutes(c.Start)
		if err != nil {
			return "", "", fmt.Errorf("invalid start time %q: %w", c.Start, err)
		}
		end := start + c.Duration
		if end > constants.MinutesPerDay {
			return "", "", fmt.Errorf("%w: %s plus %d minutes runs past the end of the day",
				validation.ErrInvalidInterval, c.Start, c.Duration)
		}
		return c.Start, utils.MinutesToTime(end), nil
	}
	if c.Duration <= 0 {
		return "", "", fmt.Errorf("--start or --duration is required")
	}

	req := scheduler.Request{Duration: c.Duration}
	if c.After != "" {
		m, err := utils.ParseTimeToMinutes(c.After)
		if err != nil {
			return "", "", fmt.Errorf("invalid --after %q: %w", c.After, err)
		}
		req.Earliest = m
	}
	if c.Before != "" {
		m, err := utils.ParseEndTimeToMinutes(c.Before)
		if err != nil {
			return "", "", fmt.Errorf("invalid --before %q: %w", c.Before, err)
		}
		req.Latest = m
	}

	_, entries, err := ctx.LoadEntries(date)
	if err != nil {
		return "", "", err
	}
	iv, err := scheduler.Place(entries, req)
	if err != nil {
		return "", "", err
	}
	logger.Debug("placed event", "date", date, "interval", iv)
	return utils.MinutesToTime(iv.Start), utils.MinutesToTime(iv.End), nil
}

func (c *EventAddCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	start, end, err := c.span(ctx, date)
	if err != nil {
		return err
	}
	ev := models.Event{
		ID:        uuid.New().String(),
		Date:      date,
		Title:     strings.TrimSpace(c.Title),
		StartTime: start,
		EndTime:   end,
		Color:     c.Color,
		Icon:      c.Icon,
		Notes:     c.Notes,
	}
	if ev.Title == "" {
		return fmt.Errorf("title is required")
	}
	if _, err := validation.EventInterval(ev); err != nil {
		return err
	}
	if err := ctx.Store.AddEvent(ev); err != nil {
		return err
	}
	ctx.printf("Added event: %s (%s %s-%s) [%s]\n", ev.Title, ev.Date, ev.StartTime, ev.EndTime, ev.ID)
	return nil
}

type EventListCmd struct {
	Date    string `short:"D" help:"Date (YYYY-MM-DD), defaults to today."`
	ShowIDs bool   `help:"Show event IDs." name:"show-ids"`
}

func (c *EventListCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	events, err := ctx.Store.GetEventsForDate(date)
	if err != nil {
		return fmt.Errorf("failed to get events: %w", err)
	}
	if len(events) == 0 {
		ctx.printf("No events on %s\n", date)
		return nil
	}

	ctx.printf("%s\n", headerStyle.Render("Events on "+date+":"))
	for _, ev := range events {
		done := " "
		if ev.Completed {
			done = "x"
		}
		idStr := ""
		if c.ShowIDs {
			idStr = dimStyle.Render(fmt.Sprintf(" (ID: %s)", ev.ID))
		}
		ctx.printf("  [%s] %s-%s %s%s\n", done, ev.StartTime, ev.EndTime, ev.Title, idStr)
	}
	return nil
}

type EventDeleteCmd struct {
	ID string `arg:"" help:"Event ID."`
}

func (c *EventDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteEvent(c.ID); err != nil {
		return err
	}
	ctx.printf("Deleted event %s\n", c.ID)
	return nil
}

type EventRestoreCmd struct {
	ID string `arg:"" help:"Event ID."`
}

func (c *EventRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.RestoreEvent(c.ID); err != nil {
		return err
	}
	ctx.printf("Restored event %s\n", c.ID)
	return nil
}

type EventDoneCmd struct {
	ID   string `arg:"" help:"Event ID."`
	Undo bool   `help:"Mark the event as not done."`
}

func (c *EventDoneCmd) Run(ctx *Context) error {
	ev, err := ctx.Store.GetEvent(c.ID)
	if err != nil {
		return err
	}
	ev.Completed = !c.Undo
	if err := ctx.Store.UpdateEvent(ev); err != nil {
		return err
	}
	state := "done"
	if c.Undo {
		state = "not done"
	}
	ctx.printf("Marked %s as %s\n", ev.Title, state)
	return nil
}

// EventImportCmd loads events from a YAML list, e.g.
//
//   - title: Standup
//     start_time: "09:00"
//     end_time: "09:15"
type EventImportCmd struct {
	File     string `arg:"" help:"YAML file with a list of events." type:"existingfile"`
	Date     string `short:"D" help:"Date for events that do not set one."`
	NoBackup bool   `help:"Skip the snapshot taken before importing."`
}

func (c *EventImportCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}
	var events []models.Event
	if err := yaml.Unmarshal(data, &events); err != nil {
		return fmt.Errorf("failed to parse %s: %w", c.File, err)
	}

	if !c.NoBackup {
		snapshotBeforeImport(ctx)
	}

	defaultDate := ""
	imported := 0
	for i, ev := range events {
		if ev.Date == "" {
			if defaultDate == "" {
				if defaultDate, err = ctx.ResolveDate(c.Date); err != nil {
					return err
				}
			}
			ev.Date = defaultDate
		}
		if ev.ID == "" {
			ev.ID = uuid.New().String()
		}
		if _, err := validation.EventInterval(ev); err != nil {
			return fmt.Errorf("event %d: %w", i+1, err)
		}
		if err := ctx.Store.AddEvent(ev); err != nil {
			return fmt.Errorf("event %d: %w", i+1, err)
		}
		imported++
	}
	logger.Info("events imported", "file", c.File, "count", imported)
	ctx.printf("Imported %d event(s)\n", imported)
	return nil
}
