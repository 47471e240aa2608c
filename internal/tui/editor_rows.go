package tui

import (
	"fmt"
	"strconv"
	"strings"

	"itinerary-studio/internal/model"
	"itinerary-studio/internal/mutate"
	"itinerary-studio/internal/publish"
	"itinerary-studio/internal/wizard"
)

type rowKind int

const (
	rowField rowKind = iota
	rowDayKeyword
	rowDayTitle
	rowDayDate
	rowDayActivities
	rowHeadingTitle
	rowHeadingContent
	rowPriceLabel
	rowPrice
	rowPriceUnit
)

// editorRow is one editable line of the current step.
type editorRow struct {
	kind      rowKind
	key       string // field key for rowField
	id        string // day, heading or pricing slot id
	label     string
	value     string
	multiline bool
}

func (r editorRow) isDay() bool {
	return r.kind >= rowDayKeyword && r.kind <= rowDayActivities
}

func (r editorRow) isHeading() bool {
	return r.kind == rowHeadingTitle || r.kind == rowHeadingContent
}

func (r editorRow) isPricing() bool {
	return r.kind >= rowPriceLabel && r.kind <= rowPriceUnit
}

func stepRows(sess *wizard.Session) []editorRow {
	out := []editorRow{}
	for _, f := range wizard.FieldsFor(sess.Step()) {
		v, _ := sess.Field(f.Key)
		out = append(out, editorRow{kind: rowField, key: f.Key, label: f.Label, value: v, multiline: f.Multiline})
	}

	d := sess.Draft()
	switch sess.Step() {
	case wizard.StepDays:
		for _, day := range d.DayPlans {
			lbl := publish.DayLabel(day.DayNumber)
			out = append(out,
				editorRow{kind: rowDayKeyword, id: day.ID, label: lbl + " keyword", value: day.Keyword},
				editorRow{kind: rowDayTitle, id: day.ID, label: lbl + " title", value: day.Title},
				editorRow{kind: rowDayDate, id: day.ID, label: lbl + " date", value: day.Date},
				editorRow{kind: rowDayActivities, id: day.ID, label: lbl + " activities", value: strings.Join(day.Activities, "\n"), multiline: true},
			)
		}
	case wizard.StepDetails:
		for i, h := range d.CustomHeadings {
			state := "on"
			if !h.Enabled {
				state = "off"
			}
			lbl := fmt.Sprintf("Heading %d [%s]", i+1, state)
			out = append(out,
				editorRow{kind: rowHeadingTitle, id: h.ID, label: lbl + " title", value: h.Title},
				editorRow{kind: rowHeadingContent, id: h.ID, label: lbl + " text", value: h.Content, multiline: true},
			)
		}
		for i, p := range d.PricingSlots {
			lbl := fmt.Sprintf("Price %d", i+1)
			out = append(out,
				editorRow{kind: rowPriceLabel, id: p.ID, label: lbl + " label", value: p.Label},
				editorRow{kind: rowPrice, id: p.ID, label: lbl + " amount", value: strconv.FormatFloat(p.Price, 'f', -1, 64)},
				editorRow{kind: rowPriceUnit, id: p.ID, label: lbl + " unit", value: string(p.Unit)},
			)
		}
	}
	return out
}

// commitRow writes value into the draft field r points at. Coercion
// warnings come back as errors; the value has been applied regardless.
func commitRow(sess *wizard.Session, r editorRow, value string) error {
	switch r.kind {
	case rowField:
		return sess.SetField(r.key, value)
	case rowDayKeyword:
		sess.ApplyKeyword(r.id, value)
	case rowDayTitle:
		sess.UpdateDay(r.id, mutate.DayPatch{Title: &value})
	case rowDayDate:
		v := strings.TrimSpace(value)
		sess.UpdateDay(r.id, mutate.DayPatch{Date: &v})
	case rowDayActivities:
		acts := model.SplitLines(value)
		sess.UpdateDay(r.id, mutate.DayPatch{Activities: &acts})
	case rowHeadingTitle:
		sess.UpdateHeading(r.id, mutate.HeadingPatch{Title: &value})
	case rowHeadingContent:
		sess.UpdateHeading(r.id, mutate.HeadingPatch{Content: &value})
	case rowPriceLabel:
		sess.UpdatePricingSlot(r.id, mutate.PricingPatch{Label: &value})
	case rowPrice:
		return sess.SetPrice(r.id, value)
	}
	return nil
}

func nextUnit(u model.PricingUnit) model.PricingUnit {
	for i, x := range model.PricingUnits {
		if x == u {
			return model.PricingUnits[(i+1)%len(model.PricingUnits)]
		}
	}
	return model.PricingUnits[0]
}
