package tui

import (
	"fmt"
	"io"
	"strings"

	"itinerary-studio/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type itineraryItem struct {
	it model.Itinerary
}

func (i itineraryItem) FilterValue() string {
	return strings.Join([]string{i.it.ItineraryCode, i.it.ClientName, i.it.Destination, i.it.Duration}, " ")
}

func (i itineraryItem) Title() string {
	parts := []string{}
	for _, s := range []string{i.it.ClientName, i.it.Destination, i.it.Duration} {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "(untitled)")
	}
	return fmt.Sprintf("%-16s %s", i.it.ItineraryCode, strings.Join(parts, " · "))
}

func (i itineraryItem) Description() string {
	return fmt.Sprintf("%d days · group of %d · updated %s", len(i.it.DayPlans), i.it.GroupSize, i.it.UpdatedAt.Local().Format("02 Jan 15:04"))
}

// rowDelegate renders one line per item, cut to the list width.
type rowDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	meta     lipgloss.Style
}

func newRowDelegate() rowDelegate {
	return rowDelegate{
		normal:   lipgloss.NewStyle(),
		selected: styleSelected(),
		meta:     styleMuted(),
	}
}

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		return
	}
	it, ok := item.(itineraryItem)
	if !ok {
		return
	}

	line := it.Title()
	if meta := it.Description(); xansi.StringWidth(line)+3+xansi.StringWidth(meta) <= contentW {
		gap := contentW - xansi.StringWidth(line) - xansi.StringWidth(meta)
		line += strings.Repeat(" ", gap) + meta
	}
	line = fitLine(line, contentW)

	style := d.normal
	if index == m.Index() {
		style = d.selected
	}
	fmt.Fprint(w, style.Render(line))
}

// fitLine pads or truncates s to exactly w cells.
func fitLine(s string, w int) string {
	sw := xansi.StringWidth(s)
	switch {
	case sw < w:
		return s + strings.Repeat(" ", w-sw)
	case sw > w:
		return xansi.Truncate(s, w, "…")
	}
	return s
}

func newList(items []list.Item) list.Model {
	l := list.New(items, newRowDelegate(), 0, 0)
	l.Title = "Itineraries"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("itinerary", "itineraries")
	// ESC is back/cancel here, not quit.
	l.KeyMap.Quit.SetKeys("q")
	l.KeyMap.CursorUp.SetKeys(append(l.KeyMap.CursorUp.Keys(), "ctrl+p")...)
	l.KeyMap.CursorDown.SetKeys(append(l.KeyMap.CursorDown.Keys(), "ctrl+n")...)
	return l
}

func itineraryItems(its []model.Itinerary) []list.Item {
	out := make([]list.Item, len(its))
	for i, it := range its {
		out[i] = itineraryItem{it: it}
	}
	return out
}
