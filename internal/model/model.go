package model

import "time"

type PricingUnit string

const (
	PricingUnitPerPax       PricingUnit = "Per Pax"
	PricingUnitPerRoom      PricingUnit = "Per Room"
	PricingUnitPerPerson    PricingUnit = "Per Person"
	PricingUnitTotalPackage PricingUnit = "Total Package"
)

// PricingUnits lists the accepted units in display order.
var PricingUnits = []PricingUnit{
	PricingUnitPerPax,
	PricingUnitPerRoom,
	PricingUnitPerPerson,
	PricingUnitTotalPackage,
}

type CustomHeading struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Enabled bool   `json:"enabled"`
}

type PricingSlot struct {
	ID    string      `json:"id"`
	Label string      `json:"label"`
	Price float64     `json:"price"`
	Unit  PricingUnit `json:"unit"`
}

// DayPlan is one day of an itinerary. DayNumber is derived from the day's
// position in Itinerary.DayPlans and is recomputed on every structural edit.
type DayPlan struct {
	ID         string   `json:"id"`
	DayNumber  int      `json:"dayNumber"`
	Keyword    string   `json:"keyword"`
	Title      string   `json:"title"`
	Date       string   `json:"date"` // YYYY-MM-DD or empty
	Activities []string `json:"activities"`
}

type BankDetails struct {
	Bank          string `json:"bank"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
}

type Itinerary struct {
	ID               string `json:"id"`
	ItineraryCode    string `json:"itineraryCode"`
	ConsultantName   string `json:"consultantName"`
	ConsultantNumber string `json:"consultantNumber"`
	QuotationDate    string `json:"quotationDate"`
	Destination      string `json:"destination"`
	Duration         string `json:"duration"`
	TravelDate       string `json:"travelDate"`
	TransportDetails string `json:"transportDetails"`
	ClientName       string `json:"clientName"`
	SourceOfLead     string `json:"sourceOfLead,omitempty"`
	Purpose          string `json:"purpose,omitempty"`
	GroupSize        int    `json:"groupSize"`

	CustomHeadings []CustomHeading `json:"customHeadings"`
	PricingSlots   []PricingSlot   `json:"pricingSlots"`
	DayPlans       []DayPlan       `json:"dayPlans"`
	Inclusions     []string        `json:"inclusions"`
	Exclusions     []string        `json:"exclusions"`

	TermsConditions    string      `json:"termsConditions"`
	CancellationPolicy string      `json:"cancellationPolicy"`
	BankDetails        BankDetails `json:"bankDetails"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Keyword is a reusable day template: typing Keyword into a day's keyword
// field fills the day with Activities.
type Keyword struct {
	ID         string    `json:"id"`
	Keyword    string    `json:"keyword"`
	Activities []string  `json:"activities"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CompanyInfo is the static letterhead handed to document renderers.
type CompanyInfo struct {
	Name           string  `json:"name"`
	Tagline        string  `json:"tagline"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	Website        string  `json:"website"`
	Address        string  `json:"address"`
	GoogleRating   float64 `json:"googleRating"`
	HappyTravelers string  `json:"happyTravelers"`
	Destinations   string  `json:"destinations"`
}

// Clone returns a deep copy; no slice in the result shares a backing array
// with it.
func (it Itinerary) Clone() Itinerary {
	out := it
	out.CustomHeadings = cloneSlice(it.CustomHeadings)
	out.PricingSlots = cloneSlice(it.PricingSlots)
	out.DayPlans = CloneDays(it.DayPlans)
	out.Inclusions = cloneSlice(it.Inclusions)
	out.Exclusions = cloneSlice(it.Exclusions)
	return out
}

func (d DayPlan) Clone() DayPlan {
	d.Activities = cloneSlice(d.Activities)
	return d
}

func CloneDays(days []DayPlan) []DayPlan {
	if days == nil {
		return nil
	}
	out := make([]DayPlan, len(days))
	for i, d := range days {
		out[i] = d.Clone()
	}
	return out
}

func (k Keyword) Clone() Keyword {
	k.Activities = cloneSlice(k.Activities)
	return k
}

func cloneSlice[T any](xs []T) []T {
	if xs == nil {
		return nil
	}
	out := make([]T, len(xs))
	copy(out, xs)
	return out
}
