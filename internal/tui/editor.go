package tui

import (
	"fmt"
	"strings"

	"itinerary-studio/internal/model"
	"itinerary-studio/internal/mutate"
	"itinerary-studio/internal/publish"
	"itinerary-studio/internal/wizard"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

const labelWidth = 26

// editorModel drives one wizard.Session. It is held by pointer in appModel.
type editorModel struct {
	sess *wizard.Session
	log  *zap.Logger

	focus   int
	editing bool
	editRow editorRow
	input   textinput.Model
	area    textarea.Model

	preview   bool
	dirty     bool
	status    string
	statusErr bool

	width  int
	height int
}

type editorResult int

const (
	editorContinue editorResult = iota
	editorClose
	editorQuit
)

func newEditorModel(sess *wizard.Session, log *zap.Logger, width, height int) *editorModel {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 0
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	e := &editorModel{sess: sess, log: log, input: in, area: ta}
	e.resize(width, height)
	return e
}

func (e *editorModel) resize(width, height int) {
	e.width = width
	e.height = height
	w := width - 4
	if w < 20 {
		w = 20
	}
	e.input.Width = w
	e.area.SetWidth(w)
	e.area.SetHeight(6)
}

func (e *editorModel) rows() []editorRow { return stepRows(e.sess) }

func (e *editorModel) clampFocus() {
	n := len(e.rows())
	if e.focus >= n {
		e.focus = n - 1
	}
	if e.focus < 0 {
		e.focus = 0
	}
}

func (e *editorModel) focusedRow() (editorRow, bool) {
	rows := e.rows()
	if e.focus < 0 || e.focus >= len(rows) {
		return editorRow{}, false
	}
	return rows[e.focus], true
}

func (e *editorModel) setStatus(msg string, isErr bool) {
	e.status = msg
	e.statusErr = isErr
}

// focusRow moves focus to the first row matching kind and id.
func (e *editorModel) focusRow(kind rowKind, id string) {
	for i, r := range e.rows() {
		if r.kind == kind && r.id == id {
			e.focus = i
			return
		}
	}
}

func (e *editorModel) Update(msg tea.KeyMsg) (tea.Cmd, editorResult) {
	if e.editing {
		return e.updateEditing(msg)
	}

	key := msg.String()
	step := e.sess.Step()
	switch key {
	case "ctrl+c":
		return nil, editorQuit
	case "esc", "q":
		if e.preview {
			e.preview = false
			return nil, editorContinue
		}
		return nil, editorClose
	case "ctrl+s":
		e.save()
	case "tab", "]":
		e.sess.Next()
		e.focus = 0
	case "shift+tab", "[":
		e.sess.Previous()
		e.focus = 0
	case "1", "2", "3", "4":
		e.sess.Jump(wizard.Step(int(key[0] - '1')))
		e.focus = 0
	case "up", "k":
		e.focus--
	case "down", "j":
		e.focus++
	case "P":
		e.preview = !e.preview
	case "enter":
		return e.startEdit(), editorContinue
	case "a":
		if step == wizard.StepDays {
			e.sess.AddDay()
			days := e.sess.Draft().DayPlans
			e.focusRow(rowDayKeyword, days[len(days)-1].ID)
			e.dirty = true
		}
	case "0":
		if step == wizard.StepDays {
			e.sess.SetDay0(!e.sess.Day0Enabled())
			e.dirty = true
		}
	case "h":
		if step == wizard.StepDetails {
			e.sess.AddHeading("New heading", "")
			hs := e.sess.Draft().CustomHeadings
			e.focusRow(rowHeadingTitle, hs[len(hs)-1].ID)
			e.dirty = true
		}
	case "p":
		if step == wizard.StepDetails {
			e.sess.AddPricingSlot("")
			ps := e.sess.Draft().PricingSlots
			e.focusRow(rowPriceLabel, ps[len(ps)-1].ID)
			e.dirty = true
		}
	case " ":
		if r, ok := e.focusedRow(); ok && r.isHeading() {
			for _, h := range e.sess.Draft().CustomHeadings {
				if h.ID == r.id {
					enabled := !h.Enabled
					e.sess.UpdateHeading(h.ID, mutate.HeadingPatch{Enabled: &enabled})
					e.dirty = true
				}
			}
		}
	case "x":
		e.removeFocused()
	}
	e.clampFocus()
	return nil, editorContinue
}

func (e *editorModel) removeFocused() {
	r, ok := e.focusedRow()
	if !ok {
		return
	}
	switch {
	case r.isDay():
		e.sess.RemoveDay(r.id)
	case r.isHeading():
		e.sess.RemoveHeading(r.id)
	case r.isPricing():
		e.sess.RemovePricingSlot(r.id)
	default:
		return
	}
	e.dirty = true
}

func (e *editorModel) startEdit() tea.Cmd {
	r, ok := e.focusedRow()
	if !ok {
		return nil
	}
	if r.kind == rowPriceUnit {
		for _, p := range e.sess.Draft().PricingSlots {
			if p.ID == r.id {
				u := nextUnit(p.Unit)
				e.sess.UpdatePricingSlot(p.ID, mutate.PricingPatch{Unit: &u})
				e.dirty = true
			}
		}
		return nil
	}
	e.editing = true
	e.editRow = r
	if r.multiline {
		e.area.SetValue(r.value)
		return e.area.Focus()
	}
	e.input.SetValue(r.value)
	e.input.CursorEnd()
	return e.input.Focus()
}

func (e *editorModel) stopEdit() {
	e.editing = false
	e.input.Blur()
	e.area.Blur()
}

func (e *editorModel) commit() {
	value := e.input.Value()
	if e.editRow.multiline {
		value = e.area.Value()
	}
	if err := commitRow(e.sess, e.editRow, value); err != nil {
		e.setStatus(err.Error(), true)
	} else {
		e.setStatus("", false)
	}
	e.dirty = true
	e.stopEdit()
}

func (e *editorModel) updateEditing(msg tea.KeyMsg) (tea.Cmd, editorResult) {
	switch msg.String() {
	case "ctrl+c":
		return nil, editorQuit
	case "esc":
		e.stopEdit()
		return nil, editorContinue
	case "ctrl+s":
		e.commit()
		e.save()
		return nil, editorContinue
	case "enter":
		if !e.editRow.multiline {
			e.commit()
			return nil, editorContinue
		}
	case "ctrl+d":
		if e.editRow.multiline {
			e.commit()
			return nil, editorContinue
		}
	}

	var cmd tea.Cmd
	if e.editRow.multiline {
		e.area, cmd = e.area.Update(msg)
		return cmd, editorContinue
	}
	e.input, cmd = e.input.Update(msg)
	if e.editRow.kind == rowDayKeyword {
		// Substitution runs on every keystroke, not only on commit.
		e.sess.ApplyKeyword(e.editRow.id, e.input.Value())
		e.dirty = true
	}
	return cmd, editorContinue
}

func (e *editorModel) save() {
	it, err := e.sess.Save()
	if err != nil {
		e.log.Error("save itinerary failed", zap.Error(err))
		e.setStatus("save failed: "+err.Error(), true)
		return
	}
	e.dirty = false
	e.setStatus("Saved "+it.ItineraryCode, false)
}

func (e *editorModel) View() string {
	d := e.sess.Draft()
	var b strings.Builder

	title := "New itinerary " + d.ItineraryCode
	if e.sess.Editing() {
		title = "Editing " + d.ItineraryCode
	}
	if e.dirty {
		title += " *"
	}
	b.WriteString(styleTitle().Render(title))
	b.WriteString("\n")
	b.WriteString(e.pills())
	b.WriteString("\n\n")

	if e.preview {
		b.WriteString(publish.RenderTerminal(d, model.Company, e.width-2, publish.PreviewStyle(previewStyleName())))
		b.WriteString("\n\n")
		b.WriteString(styleMuted().Render("esc: close preview"))
		return b.String()
	}

	if e.sess.Step() == wizard.StepDays {
		state := "off"
		if e.sess.Day0Enabled() {
			state = "on"
		}
		b.WriteString(styleMuted().Render(fmt.Sprintf("Day 0 (arrival): %s    %d days", state, len(d.DayPlans))))
		b.WriteString("\n")
	}

	b.WriteString(e.renderRows())

	if e.editing {
		b.WriteString("\n")
		b.WriteString(styleTitle().Render(e.editRow.label))
		b.WriteString("\n")
		if e.editRow.multiline {
			b.WriteString(e.area.View())
		} else {
			b.WriteString(e.input.View())
		}
	}

	b.WriteString("\n")
	if e.status != "" {
		b.WriteString(styleStatus(e.statusErr).Render(e.status))
		b.WriteString("\n")
	}
	b.WriteString(styleMuted().Render(e.help()))
	return b.String()
}

func (e *editorModel) pills() string {
	parts := make([]string, 0, len(wizard.Steps))
	for i, s := range wizard.Steps {
		parts = append(parts, stylePill(s == e.sess.Step()).Render(fmt.Sprintf("%d %s", i+1, s.Title())))
	}
	return strings.Join(parts, " ")
}

func (e *editorModel) renderRows() string {
	rows := e.rows()
	if len(rows) == 0 {
		return styleMuted().Render("(nothing here yet)") + "\n"
	}

	visible := e.height - 12
	if visible < 5 {
		visible = 5
	}
	start := 0
	if e.focus >= visible {
		start = e.focus - visible + 1
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}

	valueW := e.width - labelWidth - 2
	if valueW < 10 {
		valueW = 10
	}
	var b strings.Builder
	for i := start; i < end; i++ {
		r := rows[i]
		v := r.value
		if r.multiline {
			lines := strings.Split(v, "\n")
			v = lines[0]
			if len(lines) > 1 {
				v += fmt.Sprintf(" (+%d lines)", len(lines)-1)
			}
		}
		label := fitLine(r.label, labelWidth)
		line := label + " " + xansi.Truncate(v, valueW, "…")
		if i == e.focus {
			b.WriteString(styleSelected().Render(fitLine(line, e.width)))
		} else {
			b.WriteString(styleMuted().Render(label) + " " + xansi.Truncate(v, valueW, "…"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (e *editorModel) help() string {
	if e.editing {
		if e.editRow.multiline {
			return "ctrl+d: done   esc: cancel   ctrl+s: save"
		}
		return "enter: done   esc: cancel   ctrl+s: save"
	}
	base := "tab/shift+tab: step   1-4: jump   enter: edit   ctrl+s: save   P: preview   esc: back"
	switch e.sess.Step() {
	case wizard.StepDays:
		return base + "\na: add day   x: remove day   0: toggle day 0"
	case wizard.StepDetails:
		return base + "\nh: add heading   p: add price   space: show/hide heading   x: remove"
	}
	return base
}
