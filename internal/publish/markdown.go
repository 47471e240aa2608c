package publish

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"itinerary-studio/internal/model"
)

const (
	coverLead   = "It is our heartfelt pleasure to present this quotation to"
	coverPledge = "We would be truly honoured to craft a journey filled with comfort, care, and unforgettable moments, tailored especially for you."
	aboutUs     = "Adventure Holidays is your trusted travel partner, dedicated to creating unforgettable journeys across India and beyond. " +
		"With years of experience and thousands of happy travelers, we specialize in crafting personalized itineraries that match your travel dreams."
)

type overviewRow struct {
	Label string
	Value string
}

// overview lists the journey facts shown on every document. Optional fields
// are left out when empty.
func overview(it model.Itinerary) []overviewRow {
	rows := []overviewRow{
		{"Quotation Date", FormatDate(it.QuotationDate)},
		{"Itinerary Code", it.ItineraryCode},
	}
	if strings.TrimSpace(it.SourceOfLead) != "" {
		rows = append(rows, overviewRow{"Source of Lead", it.SourceOfLead})
	}
	rows = append(rows,
		overviewRow{"Destination", it.Destination},
		overviewRow{"Travel Date", FormatDate(it.TravelDate)},
		overviewRow{"Duration", it.Duration},
		overviewRow{"Group Size", strconv.Itoa(it.GroupSize) + " Pax"},
		overviewRow{"Transport", it.TransportDetails},
	)
	if strings.TrimSpace(it.Purpose) != "" {
		rows = append(rows, overviewRow{"Purpose", it.Purpose})
	}
	return rows
}

func enabledHeadings(it model.Itinerary) []model.CustomHeading {
	out := []model.CustomHeading{}
	for _, h := range it.CustomHeadings {
		if h.Enabled {
			out = append(out, h)
		}
	}
	return out
}

// RenderMarkdown renders the customer-facing document for it.
func RenderMarkdown(it model.Itinerary, c model.CompanyInfo) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# Greetings from " + c.Name)
	writeLn("")
	writeLn(coverLead)
	writeLn("")
	writeLn("**" + strings.ToUpper(strings.TrimSpace(it.ClientName)) + "**")
	writeLn("")
	writeLn(coverPledge)
	writeLn("")

	writeLn("## Journey Overview")
	writeLn("")
	for _, r := range overview(it) {
		writeLn(fmt.Sprintf("- **%s:** %s", r.Label, r.Value))
	}
	writeLn("")
	for _, h := range enabledHeadings(it) {
		writeLn("### " + h.Title)
		writeLn("")
		writeLn(h.Content)
		writeLn("")
	}

	if len(it.PricingSlots) > 0 {
		writeLn("## Pricing")
		writeLn("")
		for _, p := range it.PricingSlots {
			writeLn(fmt.Sprintf("- **%s:** %s %s", p.Label, FormatINR(p.Price), p.Unit))
		}
		writeLn("")
	}

	if len(it.DayPlans) > 0 {
		writeLn("## The Experience")
		writeLn("")
		for _, d := range it.DayPlans {
			title := "Day " + DayLabel(d.DayNumber)
			if t := strings.TrimSpace(d.Title); t != "" {
				title += ": " + strings.ToUpper(t)
			}
			writeLn("### " + title)
			writeLn("")
			if date := FormatDate(d.Date); date != "" {
				writeLn("_" + date + "_")
				writeLn("")
			}
			for _, a := range d.Activities {
				writeLn("- " + a)
			}
			if len(d.Activities) > 0 {
				writeLn("")
			}
		}
	}

	writeList := func(title string, xs []string) {
		if len(xs) == 0 {
			return
		}
		writeLn("## " + title)
		writeLn("")
		for _, x := range xs {
			writeLn("- " + x)
		}
		writeLn("")
	}
	writeList("Inclusions", it.Inclusions)
	writeList("Exclusions", it.Exclusions)

	writeLn("## Your Travel Consultant")
	writeLn("")
	writeLn(fmt.Sprintf("**%s - %s** is here to fulfill your wishes.", strings.ToUpper(strings.TrimSpace(it.ConsultantName)), strings.TrimSpace(it.ConsultantNumber)))
	writeLn("")

	writeParas := func(title, text string) {
		ps := paragraphs(text)
		if len(ps) == 0 {
			return
		}
		writeLn("## " + title)
		writeLn("")
		for _, p := range ps {
			writeLn(p)
			writeLn("")
		}
	}
	writeParas("Terms & Conditions", it.TermsConditions)
	writeParas("Cancellation Policy", it.CancellationPolicy)

	if it.BankDetails != (model.BankDetails{}) {
		writeLn("## Bank Details")
		writeLn("")
		writeLn("- **Bank:** " + it.BankDetails.Bank)
		writeLn("- **Account Name:** " + it.BankDetails.AccountName)
		writeLn("- **Account Number:** " + it.BankDetails.AccountNumber)
		writeLn("- **IFSC Code:** " + it.BankDetails.IFSCCode)
		writeLn("")
	}

	writeLn("## Why Travel With Us")
	writeLn("")
	writeLn(fmt.Sprintf("- %s ★ Google Rating", strconv.FormatFloat(c.GoogleRating, 'f', -1, 64)))
	writeLn("- " + c.HappyTravelers + " Happy Travelers")
	writeLn("- " + c.Destinations + " Curated Destinations")
	writeLn("")
	writeLn("## About Us")
	writeLn("")
	writeLn(aboutUs)
	writeLn("")

	writeLn("---")
	writeLn("")
	writeLn("Need a **personalised** tour package? We are here to hear your vibe.")
	writeLn("")
	writeLn(fmt.Sprintf("%s | %s | %s", c.Phone, c.Email, c.Website))
	writeLn("")
	writeLn(c.Address)

	return buf.String()
}
