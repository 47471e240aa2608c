package mutate

import (
	"strings"

	"itinerary-studio/internal/model"
	"itinerary-studio/internal/store"
)

// NewID generates ids for days, headings and pricing slots created here.
var NewID = store.NewID

// KeywordSearcher finds keyword templates by case-insensitive substring.
type KeywordSearcher interface {
	SearchKeywords(query string) []model.Keyword
}

// DayPatch holds the day fields UpdateDay may change. Keyword is set through
// ApplyKeyword.
type DayPatch struct {
	Title      *string
	Date       *string
	Activities *[]string
}

func dayOffset(day0Enabled bool) int {
	if day0Enabled {
		return 0
	}
	return 1
}

// AddDay appends an empty day numbered after the current last position.
func AddDay(days []model.DayPlan, day0Enabled bool) []model.DayPlan {
	out := model.CloneDays(days)
	return append(out, model.DayPlan{
		ID:         NewID(),
		DayNumber:  len(days) + dayOffset(day0Enabled),
		Activities: []string{},
	})
}

// RemoveDay deletes the day with id and renumbers the rest by position.
func RemoveDay(days []model.DayPlan, id string, day0Enabled bool) []model.DayPlan {
	out := make([]model.DayPlan, 0, len(days))
	for _, d := range days {
		if d.ID == id {
			continue
		}
		out = append(out, d.Clone())
	}
	return renumber(out, day0Enabled)
}

// Renumber returns days with DayNumber recomputed from position.
func Renumber(days []model.DayPlan, day0Enabled bool) []model.DayPlan {
	return renumber(model.CloneDays(days), day0Enabled)
}

func renumber(days []model.DayPlan, day0Enabled bool) []model.DayPlan {
	off := dayOffset(day0Enabled)
	for i := range days {
		days[i].DayNumber = i + off
	}
	return days
}

// ToggleDay0 switches day-0 mode. Enabling prepends an arrival day numbered 0
// and leaves the other numbers as they are, so a plan numbered 1..N becomes
// 0..N. Disabling drops every day numbered 0 and renumbers the rest 1..N.
func ToggleDay0(days []model.DayPlan, enabling bool) []model.DayPlan {
	if enabling {
		out := make([]model.DayPlan, 0, len(days)+1)
		out = append(out, model.DayPlan{
			ID:         NewID(),
			DayNumber:  0,
			Title:      model.DefaultDay0Title,
			Activities: []string{},
		})
		return append(out, model.CloneDays(days)...)
	}
	out := make([]model.DayPlan, 0, len(days))
	for _, d := range days {
		if d.DayNumber == 0 {
			continue
		}
		out = append(out, d.Clone())
	}
	return renumber(out, false)
}

// InferDay0 reports whether days is in day-0 mode.
func InferDay0(days []model.DayPlan) bool {
	return len(days) > 0 && days[0].DayNumber == 0
}

// ApplyKeyword records typed as the day's keyword. When a template's keyword
// equals typed case-insensitively, the day's activities are replaced with a
// copy of the template's. An unknown dayID leaves days unchanged.
func ApplyKeyword(days []model.DayPlan, dayID, typed string, kw KeywordSearcher) []model.DayPlan {
	out := model.CloneDays(days)
	idx := dayIndex(out, dayID)
	if idx < 0 {
		return out
	}
	out[idx].Keyword = typed
	if kw == nil || typed == "" {
		return out
	}
	for _, k := range kw.SearchKeywords(typed) {
		if strings.EqualFold(k.Keyword, typed) {
			acts := make([]string, len(k.Activities))
			copy(acts, k.Activities)
			out[idx].Activities = acts
			break
		}
	}
	return out
}

// UpdateDay merges p into the day with id; an unknown id is a no-op.
func UpdateDay(days []model.DayPlan, id string, p DayPatch) []model.DayPlan {
	out := model.CloneDays(days)
	idx := dayIndex(out, id)
	if idx < 0 {
		return out
	}
	if p.Title != nil {
		out[idx].Title = *p.Title
	}
	if p.Date != nil {
		out[idx].Date = *p.Date
	}
	if p.Activities != nil {
		acts := make([]string, len(*p.Activities))
		copy(acts, *p.Activities)
		out[idx].Activities = acts
	}
	return out
}

func dayIndex(days []model.DayPlan, id string) int {
	for i, d := range days {
		if d.ID == id {
			return i
		}
	}
	return -1
}
