package store

import (
	"strings"

	"itinerary-studio/internal/model"
)

// CopySuffix is appended to the client name of a duplicated itinerary.
const CopySuffix = " (Copy)"

// ItineraryPatch is a top-level merge: every non-nil field replaces the
// stored value, nested collections included. ID, code and CreatedAt are not
// patchable.
type ItineraryPatch struct {
	ConsultantName   *string
	ConsultantNumber *string
	QuotationDate    *string
	Destination      *string
	Duration         *string
	TravelDate       *string
	TransportDetails *string
	ClientName       *string
	SourceOfLead     *string
	Purpose          *string
	GroupSize        *int

	CustomHeadings *[]model.CustomHeading
	PricingSlots   *[]model.PricingSlot
	DayPlans       *[]model.DayPlan
	Inclusions     *[]string
	Exclusions     *[]string

	TermsConditions    *string
	CancellationPolicy *string
	BankDetails        *model.BankDetails
}

// FullPatch returns a patch that overwrites every patchable field with the
// values of it.
func FullPatch(it model.Itinerary) ItineraryPatch {
	cp := it.Clone()
	return ItineraryPatch{
		ConsultantName:     &cp.ConsultantName,
		ConsultantNumber:   &cp.ConsultantNumber,
		QuotationDate:      &cp.QuotationDate,
		Destination:        &cp.Destination,
		Duration:           &cp.Duration,
		TravelDate:         &cp.TravelDate,
		TransportDetails:   &cp.TransportDetails,
		ClientName:         &cp.ClientName,
		SourceOfLead:       &cp.SourceOfLead,
		Purpose:            &cp.Purpose,
		GroupSize:          &cp.GroupSize,
		CustomHeadings:     &cp.CustomHeadings,
		PricingSlots:       &cp.PricingSlots,
		DayPlans:           &cp.DayPlans,
		Inclusions:         &cp.Inclusions,
		Exclusions:         &cp.Exclusions,
		TermsConditions:    &cp.TermsConditions,
		CancellationPolicy: &cp.CancellationPolicy,
		BankDetails:        &cp.BankDetails,
	}
}

func (p ItineraryPatch) apply(it *model.Itinerary) {
	setString(&it.ConsultantName, p.ConsultantName)
	setString(&it.ConsultantNumber, p.ConsultantNumber)
	setString(&it.QuotationDate, p.QuotationDate)
	setString(&it.Destination, p.Destination)
	setString(&it.Duration, p.Duration)
	setString(&it.TravelDate, p.TravelDate)
	setString(&it.TransportDetails, p.TransportDetails)
	setString(&it.ClientName, p.ClientName)
	setString(&it.SourceOfLead, p.SourceOfLead)
	setString(&it.Purpose, p.Purpose)
	if p.GroupSize != nil {
		it.GroupSize = *p.GroupSize
	}
	setString(&it.TermsConditions, p.TermsConditions)
	setString(&it.CancellationPolicy, p.CancellationPolicy)
	if p.BankDetails != nil {
		it.BankDetails = *p.BankDetails
	}

	// Replace nested collections with copies so the stored record never
	// aliases the caller's slices.
	src := model.Itinerary{}
	if p.CustomHeadings != nil {
		src.CustomHeadings = *p.CustomHeadings
	}
	if p.PricingSlots != nil {
		src.PricingSlots = *p.PricingSlots
	}
	if p.DayPlans != nil {
		src.DayPlans = *p.DayPlans
	}
	if p.Inclusions != nil {
		src.Inclusions = *p.Inclusions
	}
	if p.Exclusions != nil {
		src.Exclusions = *p.Exclusions
	}
	src = src.Clone()
	if p.CustomHeadings != nil {
		it.CustomHeadings = nonNil(src.CustomHeadings)
	}
	if p.PricingSlots != nil {
		it.PricingSlots = nonNil(src.PricingSlots)
	}
	if p.DayPlans != nil {
		it.DayPlans = nonNil(src.DayPlans)
	}
	if p.Inclusions != nil {
		it.Inclusions = nonNil(src.Inclusions)
	}
	if p.Exclusions != nil {
		it.Exclusions = nonNil(src.Exclusions)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func nonNil[T any](xs []T) []T {
	if xs == nil {
		return []T{}
	}
	return xs
}

// Itineraries returns copies of all itineraries, newest first.
func (r *Repo) Itineraries() []model.Itinerary {
	return r.ListItineraries("")
}

// AddItinerary inserts it at the front as-is. The caller supplies id, code
// and timestamps.
func (r *Repo) AddItinerary(it model.Itinerary) error {
	cp := it.Clone()
	next := make([]model.Itinerary, 0, len(r.itineraries)+1)
	next = append(next, cp)
	next = append(next, r.itineraries...)
	r.itineraries = next
	return r.commit("itinerary.add", cp.ID, map[string]any{"itineraryCode": cp.ItineraryCode})
}

func (r *Repo) UpdateItinerary(id string, p ItineraryPatch) (model.Itinerary, error) {
	idx := r.itineraryIndex(id)
	if idx < 0 {
		return model.Itinerary{}, NotFoundError{Kind: "itinerary", ID: id}
	}
	it := r.itineraries[idx].Clone()
	p.apply(&it)
	it.UpdatedAt = r.now()

	next := make([]model.Itinerary, len(r.itineraries))
	copy(next, r.itineraries)
	next[idx] = it
	r.itineraries = next

	return it.Clone(), r.commit("itinerary.update", it.ID, map[string]any{"itineraryCode": it.ItineraryCode})
}

// DeleteItinerary removes the itinerary with id. Deleting an unknown id does
// nothing and does not persist.
func (r *Repo) DeleteItinerary(id string) error {
	idx := r.itineraryIndex(id)
	if idx < 0 {
		return nil
	}
	code := r.itineraries[idx].ItineraryCode
	next := make([]model.Itinerary, 0, len(r.itineraries)-1)
	next = append(next, r.itineraries[:idx]...)
	next = append(next, r.itineraries[idx+1:]...)
	r.itineraries = next
	return r.commit("itinerary.delete", id, map[string]any{"itineraryCode": code})
}

// DuplicateItinerary inserts a deep copy of the itinerary with id at the
// front, under a fresh id and code, and returns it.
func (r *Repo) DuplicateItinerary(id string) (model.Itinerary, error) {
	idx := r.itineraryIndex(id)
	if idx < 0 {
		return model.Itinerary{}, NotFoundError{Kind: "itinerary", ID: id}
	}
	now := r.now()
	cp := r.itineraries[idx].Clone()
	cp.ID = r.newID()
	cp.ItineraryCode = GenerateItineraryCode(r.codes(), now)
	cp.ClientName += CopySuffix
	cp.CreatedAt = now
	cp.UpdatedAt = now

	next := make([]model.Itinerary, 0, len(r.itineraries)+1)
	next = append(next, cp)
	next = append(next, r.itineraries...)
	r.itineraries = next

	return cp.Clone(), r.commit("itinerary.duplicate", cp.ID, map[string]any{
		"sourceId":      id,
		"itineraryCode": cp.ItineraryCode,
	})
}

func (r *Repo) GetItinerary(id string) (model.Itinerary, bool) {
	idx := r.itineraryIndex(id)
	if idx < 0 {
		return model.Itinerary{}, false
	}
	return r.itineraries[idx].Clone(), true
}

// FindItineraryByRef resolves ref as an id, then as an itinerary code
// (case-insensitive).
func (r *Repo) FindItineraryByRef(ref string) (model.Itinerary, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Itinerary{}, false
	}
	if it, ok := r.GetItinerary(ref); ok {
		return it, true
	}
	for _, it := range r.itineraries {
		if strings.EqualFold(it.ItineraryCode, ref) {
			return it.Clone(), true
		}
	}
	return model.Itinerary{}, false
}

// ListItineraries returns itineraries whose client name, destination,
// duration or code contains query (case-insensitive), in repository order.
func (r *Repo) ListItineraries(query string) []model.Itinerary {
	q := strings.ToLower(query)
	out := []model.Itinerary{}
	for _, it := range r.itineraries {
		if q == "" || matchesItinerary(it, q) {
			out = append(out, it.Clone())
		}
	}
	return out
}

func matchesItinerary(it model.Itinerary, q string) bool {
	for _, f := range []string{it.ClientName, it.Destination, it.Duration, it.ItineraryCode} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// NextItineraryCode returns the code a new itinerary would get now.
func (r *Repo) NextItineraryCode() string {
	return GenerateItineraryCode(r.codes(), r.now())
}

// CodeTaken reports whether an itinerary already uses code.
func (r *Repo) CodeTaken(code string) bool {
	return r.codes()[code]
}

func (r *Repo) codes() map[string]bool {
	out := make(map[string]bool, len(r.itineraries))
	for _, it := range r.itineraries {
		out[it.ItineraryCode] = true
	}
	return out
}

func (r *Repo) itineraryIndex(id string) int {
	for i, it := range r.itineraries {
		if it.ID == id {
			return i
		}
	}
	return -1
}
