package store

import (
	"fmt"
	"sort"
	"strings"

	"itinerary-studio/internal/model"
)

type DoctorIssueLevel string

const (
	DoctorIssueLevelError DoctorIssueLevel = "error"
	DoctorIssueLevelWarn  DoctorIssueLevel = "warn"
)

type DoctorIssue struct {
	Level    DoctorIssueLevel `json:"level"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	EntityID string           `json:"entityId,omitempty"`
}

type DoctorReport struct {
	Issues []DoctorIssue `json:"issues"`
}

func (r DoctorReport) HasErrors() bool {
	for _, it := range r.Issues {
		if it.Level == DoctorIssueLevelError {
			return true
		}
	}
	return false
}

// Doctor checks st for integrity problems. Ids and codes that collide are
// errors; everything else the editor tolerates is reported as a warning.
func Doctor(st State) DoctorReport {
	var issues []DoctorIssue
	add := func(level DoctorIssueLevel, code, entityID, format string, args ...any) {
		issues = append(issues, DoctorIssue{Level: level, Code: code, EntityID: entityID, Message: fmt.Sprintf(format, args...)})
	}

	ids := map[string]int{}
	codes := map[string]int{}
	for _, it := range st.Itineraries {
		ids[it.ID]++
		codes[it.ItineraryCode]++

		if strings.TrimSpace(it.ID) == "" {
			add(DoctorIssueLevelError, "itinerary_missing_id", "", "itinerary %q has no id", it.ItineraryCode)
		}
		if !ValidItineraryCode(it.ItineraryCode) {
			add(DoctorIssueLevelWarn, "itinerary_code_malformed", it.ID, "itinerary code %q does not match AH<YY>-DOM-FIT-<NNN>", it.ItineraryCode)
		}
		if it.GroupSize < 1 {
			add(DoctorIssueLevelWarn, "group_size_invalid", it.ID, "%s: group size %d is below 1", it.ItineraryCode, it.GroupSize)
		}
		if !daysContiguous(it.DayPlans) {
			add(DoctorIssueLevelWarn, "day_numbers_not_contiguous", it.ID, "%s: day numbers %v are not contiguous", it.ItineraryCode, dayNumbers(it.DayPlans))
		}
		for _, p := range it.PricingSlots {
			if p.Price < 0 {
				add(DoctorIssueLevelWarn, "price_negative", it.ID, "%s: pricing slot %q has negative price %v", it.ItineraryCode, p.Label, p.Price)
			}
			if !p.Unit.Valid() {
				add(DoctorIssueLevelWarn, "pricing_unit_unknown", it.ID, "%s: pricing slot %q has unknown unit %q", it.ItineraryCode, p.Label, p.Unit)
			}
		}
	}
	for _, id := range sortedDupes(ids) {
		add(DoctorIssueLevelError, "itinerary_id_duplicate", id, "itinerary id %s is used %d times", id, ids[id])
	}
	for _, code := range sortedDupes(codes) {
		add(DoctorIssueLevelError, "itinerary_code_duplicate", "", "itinerary code %s is used %d times", code, codes[code])
	}

	kwIDs := map[string]int{}
	kwNames := map[string]int{}
	for _, k := range st.Keywords {
		kwIDs[k.ID]++
		kwNames[strings.ToLower(k.Keyword)]++
		if strings.TrimSpace(k.Keyword) == "" {
			add(DoctorIssueLevelWarn, "keyword_empty", k.ID, "keyword %s is empty", k.ID)
		}
	}
	for _, id := range sortedDupes(kwIDs) {
		add(DoctorIssueLevelError, "keyword_id_duplicate", id, "keyword id %s is used %d times", id, kwIDs[id])
	}
	for _, name := range sortedDupes(kwNames) {
		add(DoctorIssueLevelWarn, "keyword_duplicate", "", "keyword %q exists %d times (case-insensitive)", name, kwNames[name])
	}

	if issues == nil {
		issues = []DoctorIssue{}
	}
	return DoctorReport{Issues: issues}
}

// daysContiguous accepts 0..N-1 and 1..N numbering.
func daysContiguous(days []model.DayPlan) bool {
	if len(days) == 0 {
		return true
	}
	start := days[0].DayNumber
	if start != 0 && start != 1 {
		return false
	}
	for i, d := range days {
		if d.DayNumber != start+i {
			return false
		}
	}
	return true
}

func dayNumbers(days []model.DayPlan) []int {
	out := make([]int, len(days))
	for i, d := range days {
		out[i] = d.DayNumber
	}
	return out
}

func sortedDupes(counts map[string]int) []string {
	var out []string
	for k, n := range counts {
		if n > 1 {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
