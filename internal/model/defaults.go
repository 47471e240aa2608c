package model

import (
	"strings"
	"time"
)

// DefaultDay0Title is the title given to a freshly inserted day 0.
const DefaultDay0Title = "Arrival & Check-in"

// DefaultConsultantNumber seeds the consultant phone field with the country prefix.
const DefaultConsultantNumber = "+91 "

var Company = CompanyInfo{
	Name:           "Adventure Holidays",
	Tagline:        "Greetings from Adventure",
	Phone:          "+91 70109 33178",
	Email:          "contact@adventureholidays.co",
	Website:        "www.adventureholidays.co",
	Address:        "2nd Floor, Vishnu Complex, 1st Cross Street, Gandhipuram, Coimbatore - 641012",
	GoogleRating:   4.8,
	HappyTravelers: "25000+",
	Destinations:   "1500+",
}

var DefaultBankDetails = BankDetails{
	Bank:          "Yes Bank, Gandhipuram",
	AccountName:   "Adventure Holidays",
	AccountNumber: "135261900002320",
	IFSCCode:      "YESB0001352",
}

var DefaultTermsConditions = strings.Join([]string{
	"Package confirmation will only be upon half of the payment and the balance before 72 Hours of Departure.",
	"The Accommodation, Vehicle, Tour Organizer allotments will be done thereafter.",
	"Hotels are Subject to Availability.",
	"Natural Calamities, Road Traffic, Public Crowd, Sightseeing Walk is mandatory.",
	"A Detailed PPT Presentation will be done before 72 hours before the tour date.",
	"The Co-operation of all the Tourists are merely important as traffic delays, some long Walks are unavoidable in a trip.",
	"The Tourists should Co-operate the organizers in the timings allotted for all sightseeing places, which in delay will end in the forthcoming place which was planned to visit.",
	"The Internal/External belongings of the Tourists should be taken care by themselves whereas the Organizers or the Management or the Chauffer is not responsible for the same.",
	"The Prices given above has a validity of 48 hours from the date of quote provided. Please contact the undersigned before making payment without fail.",
	"The payments made without intimation will be on hold.",
	"Account Details will be sent as per Request.",
	"Changes in tour must be before 30 days of the tour.",
	"If so 5% of the package cost will be deducted.",
}, "\n\n")

var DefaultCancellationPolicy = strings.Join([]string{
	"45 days prior to Tour: 10% of the Tour package.",
	"15 days prior to Tour: 25% of the Tour Package.",
	"07 days prior to Tour: 50% of the Tour Package.",
	"72 hours prior to Tour OR No Show: No Refund.",
}, "\n\n")

// NewDraft returns the blank itinerary a new editing session starts from.
// ID, code and timestamps are left for the caller.
func NewDraft(now time.Time) Itinerary {
	return Itinerary{
		ConsultantNumber:   DefaultConsultantNumber,
		QuotationDate:      now.Format("2006-01-02"),
		GroupSize:          1,
		CustomHeadings:     []CustomHeading{},
		PricingSlots:       []PricingSlot{},
		DayPlans:           []DayPlan{},
		Inclusions:         []string{},
		Exclusions:         []string{},
		TermsConditions:    DefaultTermsConditions,
		CancellationPolicy: DefaultCancellationPolicy,
		BankDetails:        DefaultBankDetails,
	}
}
