package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dayface/internal/config"
	"github.com/julianstephens/dayface/internal/models"
	"github.com/julianstephens/dayface/internal/polar"
	"github.com/julianstephens/dayface/internal/storage"
	"github.com/julianstephens/dayface/internal/timeline"
	"github.com/julianstephens/dayface/internal/utils"
)

type Context struct {
	Store      storage.Provider
	Config     *config.Config
	ConfigPath string
	Out        io.Writer
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) config() *config.Config {
	if c.Config == nil {
		c.Config = config.DefaultConfig()
	}
	return c.Config
}

// ResolveDate returns date, or today in the configured timezone when empty.
func (c *Context) ResolveDate(date string) (string, error) {
	if date == "" {
		return utils.GetTodayInTimezone(c.config().Timezone)
	}
	if !utils.ValidateDateFormat(date) {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// ResolveMinute parses an HH:MM time, or returns the current minute when empty.
func (c *Context) ResolveMinute(at string) (int, error) {
	if at == "" {
		return utils.NowMinutes(c.config().Timezone)
	}
	return utils.ParseTimeToMinutes(at)
}

// LoadEntries reads a date's events and converts them for the layout engine.
func (c *Context) LoadEntries(date string) ([]models.Event, []timeline.Entry, error) {
	events, err := c.Store.GetEventsForDate(date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get events for %s: %w", date, err)
	}
	entries, err := timeline.NewEntries(events)
	if err != nil {
		return nil, nil, err
	}
	return events, entries, nil
}

// Projector builds the clock projector for a window mode: "full" for the
// whole day, otherwise the aligned window of hours around at (default now).
func (c *Context) Projector(window, at string, hours int) (polar.Projector, error) {
	if strings.EqualFold(window, "full") {
		return polar.NewFullDay(), nil
	}
	if hours <= 0 {
		hours = c.config().WindowHours
	}
	minute, err := c.ResolveMinute(at)
	if err != nil {
		return polar.Projector{}, err
	}
	return polar.New(polar.WindowAt(minute, hours)), nil
}

// Layout runs a full-day merge and layout for date with the configured metrics.
func (c *Context) Layout(date string) (*timeline.Layout, []timeline.Item, error) {
	_, entries, err := c.LoadEntries(date)
	if err != nil {
		return nil, nil, err
	}
	items := timeline.Merge(entries)
	return timeline.NewLayout(items, c.config().Metrics()), items, nil
}

func describeItem(item timeline.Item) string {
	members := timeline.Events(item)
	if len(members) == 0 {
		return "free"
	}
	titles := make([]string, 0, len(members))
	for _, e := range members {
		titles = append(titles, e.Event.Title)
	}
	return strings.Join(titles, ", ")
}

func formatSpan(iv models.Interval) string {
	return fmt.Sprintf("%s-%s", utils.MinutesToTime(iv.Start), utils.MinutesToTime(iv.End))
}

func formatMinute(m int) string {
	return utils.MinutesToTime(m)
}
