package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dayface/internal/astro"
	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/gesture"
	"github.com/julianstephens/dayface/internal/polar"
	"github.com/julianstephens/dayface/internal/timeline"
	"github.com/julianstephens/dayface/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateForm:
		content = m.viewForm()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = docStyle.Render(m.viewport.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewStatusLine(),
		content,
		m.viewFooter(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Timeline", "Clock"} {
		active := m.state == SessionState(i) ||
			(m.state >= StateForm && m.previousState == SessionState(i))
		if active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	tabs = append(tabs, timeStyle.Render("  "+m.opts.Date+" "+utils.MinutesToTime(m.nowMinute)))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatusLine() string {
	var parts []string
	if m.state == StateClock || m.previousState == StateClock {
		w := m.projector.Window
		label := fmt.Sprintf("window %s-%s", utils.MinutesToTime(w.Start), utils.MinutesToTime(w.End))
		if m.projector.Semicircle {
			label += fmt.Sprintf(" (rotation %+.0f°)", m.rotation.Offset())
		}
		parts = append(parts, label)
	}
	parts = append(parts, m.astroLabel())
	if n := len(m.conflicts); n > 0 {
		parts = append(parts, warningStyle.Render(fmt.Sprintf("⚠ %d validation warning(s)", n)))
	}
	return strings.Join(parts, "  ")
}

func (m Model) astroLabel() string {
	var labels []string
	for _, mk := range m.arc.Markers(float64(m.nowMinute), astro.Point{}, 1) {
		icon := "☀"
		if mk.Body == astro.Moon {
			icon = "☾"
		}
		labels = append(labels, fmt.Sprintf("%s %.0f%%", icon, mk.Progress*100))
	}
	return strings.Join(labels, " ")
}

func (m Model) viewFooter() string {
	if m.selected != nil {
		ev := m.selected
		done := ""
		if ev.Completed {
			done = " ✓"
		}
		return eventStyle(colorOr(ev.Color), false).Render(
			fmt.Sprintf("▶ %s %s-%s%s", ev.Title, ev.StartTime, ev.EndTime, done))
	}
	if m.status != "" {
		return m.status
	}
	return ""
}

func (m Model) viewForm() string {
	if m.form == nil {
		return ""
	}
	view := docStyle.Render(m.form.View())
	if m.formError != "" {
		view += "\n" + dangerStyle.Render(m.formError)
	}
	return view
}

func (m Model) viewConfirmDelete() string {
	if m.selected == nil {
		return ""
	}
	return docStyle.Render(dangerStyle.Render(
		fmt.Sprintf("Delete %q (%s-%s)? [y/n]", m.selected.Title, m.selected.StartTime, m.selected.EndTime)))
}

func colorOr(c string) string {
	if c == "" {
		return constants.DefaultEventColor
	}
	return c
}

// renderTimeline draws one terminal line per cellPixels of layout height. The
// same line-to-pixel mapping is used for mouse input.
func (m Model) renderTimeline() string {
	if m.layout == nil {
		return ""
	}
	lines := int(math.Ceil(m.layout.ContentHeight() / cellPixels))
	width := max(10, m.viewport.Width)

	nowLine := -1
	if m.nowMinute >= 0 && m.nowMinute < constants.MinutesPerDay {
		nowLine = int(m.layout.MinuteToPixel(float64(m.nowMinute)) / cellPixels)
	}

	selLo, selHi := -1, -1
	if m.selection != nil {
		selLo, selHi = m.selection.Bounds()
	}

	var b strings.Builder
	var prev *timeline.Row
	var prevEventID string
	for i := 0; i < lines; i++ {
		y := lineCenter(i)
		row, ok := m.layout.RowAt(y)
		if !ok {
			b.WriteString("\n")
			continue
		}

		first := prev == nil || prev.Top != row.Top
		label := "     "
		if first {
			label = utils.MinutesToTime(row.Item.Span().Start)
		}

		var body string
		switch row.Item.(type) {
		case timeline.GapItem:
			body = gapStyle.Render("┆")
			if first {
				body += gapStyle.Render(" free")
			}
		default:
			tap := gesture.Tap(m.layout, y)
			if tap.Event != nil {
				ev := m.findEvent(tap.Event.ID)
				if ev == nil {
					ev = tap.Event
				}
				bar := "█"
				if m.selected != nil && m.selected.ID == ev.ID {
					bar = "▌"
				}
				body = eventStyle(colorOr(ev.Color), ev.Completed).Render(bar)
				if ev.ID != prevEventID {
					body += " " + eventStyle(colorOr(ev.Color), ev.Completed).Render(
						fmt.Sprintf("%s %s-%s", ev.Title, ev.StartTime, ev.EndTime))
				}
				prevEventID = ev.ID
			}
		}
		if _, isGap := row.Item.(timeline.GapItem); isGap {
			prevEventID = ""
		}

		marker := " "
		if i == nowLine {
			marker = nowStyle.Render("◀")
		}

		line := timeStyle.Render(label) + " " + body
		if selLo >= 0 {
			minute := gesture.MinuteAt(m.layout, y)
			if minute >= selLo && minute < selHi {
				line = selectionStyle.Render(lipgloss.PlaceHorizontal(width-2, lipgloss.Left, line))
			}
		}
		b.WriteString(line + " " + marker + "\n")

		r := row
		prev = &r
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderClock rasterizes the projected slices into terminal cells, using the
// hit test to find the slice under each cell.
func (m Model) renderClock() string {
	cols, rows := m.viewport.Width, m.viewport.Height
	if cols <= 0 || rows <= 0 {
		return ""
	}
	_, _, radius := m.clockGeometry()

	offset := 0.0
	if m.projector.Semicircle {
		offset = m.rotation.Offset()
	}
	nowAngle, nowVisible := 0.0, false
	if m.projector.Window.Contains(m.nowMinute) {
		nowAngle = m.projector.AngleForMinute(float64(m.nowMinute))
		nowVisible = true
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := m.clockPoint(col, row)
			r := math.Hypot(x, y)
			if r > radius {
				b.WriteByte(' ')
				continue
			}
			if r < 0.5 {
				b.WriteString("+")
				continue
			}
			if offset != 0 {
				x, y = rotate(x, y, -offset)
			}
			raw := math.Atan2(y, x) * 180 / math.Pi
			if m.projector.Semicircle && (raw < 0 || raw > constants.SemicircleDegrees) {
				b.WriteByte(' ')
				continue
			}
			if nowVisible && angleDelta(raw, nowAngle) < 90/radius {
				b.WriteString(nowStyle.Render("•"))
				continue
			}

			hit := m.projector.HitTest(m.slices, x, y)
			if hit.Slice == nil || r > radius*hit.Slice.OuterRadiusMultiplier {
				b.WriteString(gapStyle.Render("·"))
				continue
			}
			s := hit.Slice
			switch {
			case s.IsFree:
				b.WriteString(gapStyle.Render("░"))
			case m.selected != nil && s.Event != nil && s.Event.ID == m.selected.ID:
				b.WriteString(eventStyle(s.Color, false).Render("▓"))
			default:
				b.WriteString(eventStyle(s.Color, s.Event != nil && s.Event.Completed).Render("█"))
			}
		}
		if row < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func rotate(x, y, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return x*cos - y*sin, x*sin + y*cos
}

func angleDelta(a, b float64) float64 {
	d := math.Abs(polar.Normalize(a) - polar.Normalize(b))
	return math.Min(d, 360-d)
}
