package publish

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"itinerary-studio/internal/model"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

var (
	navy   = [3]int{0, 4, 53}
	yellow = [3]int{254, 204, 0}
	grey   = [3]int{90, 90, 90}
)

const (
	pageMargin = 15.0
	lineH      = 6.0
	qrSize     = 30.0
)

// pdfDoc wraps gofpdf with the few layout helpers the itinerary needs. The
// core fonts are cp1252, so every string goes through tr.
type pdfDoc struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (d *pdfDoc) color(c [3]int) { d.pdf.SetTextColor(c[0], c[1], c[2]) }

func (d *pdfDoc) heading(title string) {
	d.pdf.Ln(4)
	d.pdf.SetFont("Helvetica", "B", 14)
	d.color(navy)
	d.pdf.CellFormat(0, 8, d.tr(strings.ToUpper(title)), "B", 1, "L", false, 0, "")
	d.pdf.Ln(2)
}

func (d *pdfDoc) text(s string) {
	d.pdf.SetFont("Helvetica", "", 10)
	d.color(grey)
	d.pdf.MultiCell(0, 5, d.tr(s), "", "L", false)
}

func (d *pdfDoc) keyValue(label, value string) {
	d.pdf.SetFont("Helvetica", "B", 10)
	d.color(navy)
	d.pdf.CellFormat(45, lineH, d.tr(label), "", 0, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 10)
	d.color(grey)
	d.pdf.MultiCell(0, lineH, d.tr(value), "", "L", false)
}

func (d *pdfDoc) bullet(s string) {
	d.pdf.SetFont("Helvetica", "", 10)
	d.color(grey)
	d.pdf.CellFormat(6, lineH, d.tr("•"), "", 0, "L", false, 0, "")
	d.pdf.MultiCell(0, lineH, d.tr(s), "", "L", false)
}

// websiteURL turns the company website into something a phone camera opens.
func websiteURL(site string) string {
	site = strings.TrimSpace(site)
	if site == "" || strings.Contains(site, "://") {
		return site
	}
	return "https://" + site
}

// WritePDF renders the fixed-layout A4 document for it to w.
func WritePDF(w io.Writer, it model.Itinerary, c model.CompanyInfo) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(it.ItineraryCode+" "+it.ClientName, true)
	pdf.SetAuthor(c.Name, true)
	pdf.AliasNbPages("")
	d := &pdfDoc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		d.color(grey)
		footer := fmt.Sprintf("%s | %s | %s    Page %d/{nb}", c.Phone, c.Email, c.Website, pdf.PageNo())
		pdf.CellFormat(0, 5, d.tr(footer), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Cover band.
	pdf.SetFillColor(navy[0], navy[1], navy[2])
	pdf.Rect(0, 0, 210, 70, "F")
	pdf.SetY(18)
	pdf.SetFont("Helvetica", "B", 20)
	d.color(yellow)
	pdf.CellFormat(0, 10, d.tr("Greetings from "+c.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(0, 7, d.tr(coverLead), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, d.tr(strings.ToUpper(strings.TrimSpace(it.ClientName))), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, d.tr(coverPledge), "", "C", false)

	if site := websiteURL(c.Website); site != "" {
		png, err := qrcode.Encode(site, qrcode.Medium, 256)
		if err != nil {
			return fmt.Errorf("encode website qr: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("website-qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("website-qr", 210-pageMargin-qrSize, 75, qrSize, qrSize, false, opts, 0, "")
	}
	pdf.SetY(75)

	d.heading("Journey Overview")
	for _, r := range overview(it) {
		d.keyValue(r.Label, r.Value)
	}
	for _, h := range enabledHeadings(it) {
		d.keyValue(h.Title, h.Content)
	}

	if len(it.PricingSlots) > 0 {
		d.heading("Pricing")
		for _, p := range it.PricingSlots {
			// The rupee sign is not in cp1252.
			d.keyValue(p.Label, "Rs. "+FormatIndianNumber(p.Price)+" "+string(p.Unit))
		}
	}

	if len(it.DayPlans) > 0 {
		d.heading("The Experience")
		for _, day := range it.DayPlans {
			title := "Day " + DayLabel(day.DayNumber)
			if t := strings.TrimSpace(day.Title); t != "" {
				title += ": " + strings.ToUpper(t)
			}
			pdf.SetFont("Helvetica", "B", 11)
			d.color(navy)
			pdf.CellFormat(0, 7, d.tr(title), "", 1, "L", false, 0, "")
			if date := FormatDate(day.Date); date != "" {
				pdf.SetFont("Helvetica", "I", 9)
				d.color(grey)
				pdf.CellFormat(0, 5, d.tr(date), "", 1, "L", false, 0, "")
			}
			for _, a := range day.Activities {
				d.bullet(a)
			}
			pdf.Ln(2)
		}
	}

	for _, sec := range []struct {
		title string
		items []string
	}{{"Inclusions", it.Inclusions}, {"Exclusions", it.Exclusions}} {
		if len(sec.items) == 0 {
			continue
		}
		d.heading(sec.title)
		for _, x := range sec.items {
			d.bullet(x)
		}
	}

	d.heading("Your Travel Consultant")
	d.text(strings.ToUpper(strings.TrimSpace(it.ConsultantName)) + " - " + strings.TrimSpace(it.ConsultantNumber) + " is here to fulfill your wishes.")

	for _, sec := range []struct{ title, body string }{
		{"Terms & Conditions", it.TermsConditions},
		{"Cancellation Policy", it.CancellationPolicy},
	} {
		ps := paragraphs(sec.body)
		if len(ps) == 0 {
			continue
		}
		d.heading(sec.title)
		for _, p := range ps {
			d.text(p)
			pdf.Ln(1)
		}
	}

	if it.BankDetails != (model.BankDetails{}) {
		d.heading("Bank Details")
		d.keyValue("Bank", it.BankDetails.Bank)
		d.keyValue("Account Name", it.BankDetails.AccountName)
		d.keyValue("Account Number", it.BankDetails.AccountNumber)
		d.keyValue("IFSC Code", it.BankDetails.IFSCCode)
	}

	d.heading("Why Travel With Us")
	d.keyValue("Google Rating", strconv.FormatFloat(c.GoogleRating, 'f', -1, 64))
	d.keyValue("Happy Travelers", c.HappyTravelers)
	d.keyValue("Destinations", c.Destinations)
	d.heading("About Us")
	d.text(aboutUs)
	pdf.Ln(4)
	d.text(c.Address)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}
