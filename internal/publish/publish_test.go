package publish

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"itinerary-studio/internal/model"
)

func sample() model.Itinerary {
	it := model.Itinerary{
		ID:               "it-1",
		ItineraryCode:    "AH24-DOM-FIT-003",
		ConsultantName:   "Karthik",
		ConsultantNumber: "+91 98765 43210",
		QuotationDate:    "2024-06-01",
		Destination:      "Ooty Kodai",
		Duration:         "3N/4D",
		TravelDate:       "2024-07-15",
		TransportDetails: "Innova Crysta",
		ClientName:       "Priya  Raman",
		GroupSize:        4,
		CustomHeadings: []model.CustomHeading{
			{ID: "h1", Title: "Hotel", Content: "Sterling Ooty", Enabled: true},
			{ID: "h2", Title: "Secret Note", Content: "internal only", Enabled: false},
		},
		PricingSlots: []model.PricingSlot{{ID: "p1", Label: "Deluxe", Price: 125000, Unit: model.PricingUnitPerPax}},
		DayPlans: []model.DayPlan{
			{ID: "d0", DayNumber: 0, Title: "Arrival & Check-in", Activities: []string{}},
			{ID: "d1", DayNumber: 1, Title: "Ooty local", Date: "2024-07-16", Activities: []string{"Visit Garden", "Boating at Ooty Lake"}},
		},
		Inclusions:         []string{"Breakfast"},
		Exclusions:         []string{"Flights"},
		TermsConditions:    "First term.\n\nSecond term.",
		CancellationPolicy: model.DefaultCancellationPolicy,
		BankDetails:        model.DefaultBankDetails,
	}
	return it
}

func TestFileName(t *testing.T) {
	got := FileName(sample(), "pdf")
	want := "AH24-DOM-FIT-003-PriyaRaman-OotyKodai-3N4D-4.pdf"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	it := sample()
	it.Duration = "1/2/3"
	if got := FileName(it, "md"); !strings.Contains(got, "-123-") {
		t.Fatalf("expected every slash removed, got %q", got)
	}
}

func TestFileName_StripsPathParts(t *testing.T) {
	it := sample()
	it.ItineraryCode = "AH24-DOM-FIT-001"
	it.ClientName = "../../escape"
	it.Destination = `Ooty/Kodai\Munnar`
	it.Duration = "3N/4D"
	it.GroupSize = 2

	got := FileName(it, "md")
	want := "AH24-DOM-FIT-001-escape-OotyKodaiMunnar-3N4D-2.md"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	// ".../" reduces to "." after repeated stripping.
	it.ClientName = ".../"
	if got := FileName(it, "md"); strings.Contains(got, "..") || strings.ContainsAny(got, `/\`) {
		t.Fatalf("path parts left in %q", got)
	}
}

func TestExport_SlashesStayInDir(t *testing.T) {
	dir := t.TempDir()
	it := sample()
	it.ClientName = "../../escape"
	it.Destination = "Ooty/Kodai"

	res, err := Export(it, model.Company, dir, ExportOptions{Format: FormatMarkdown})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Dir(res.Path) != filepath.Clean(dir) {
		t.Fatalf("expected file directly in %s, got %s", dir, res.Path)
	}
	if _, err := os.Stat(res.Path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestRenderMarkdown_Sections(t *testing.T) {
	md := RenderMarkdown(sample(), model.Company)

	for _, want := range []string{
		"# Greetings from Adventure Holidays",
		"**PRIYA  RAMAN**",
		"- **Quotation Date:** 01 Jun 2024",
		"- **Itinerary Code:** AH24-DOM-FIT-003",
		"- **Group Size:** 4 Pax",
		"### Hotel",
		"- **Deluxe:** ₹1,25,000 Per Pax",
		"### Day 00: ARRIVAL & CHECK-IN",
		"### Day 01: OOTY LOCAL",
		"_16 Jul 2024_",
		"- Boating at Ooty Lake",
		"## Inclusions",
		"**KARTHIK - +91 98765 43210**",
		"Second term.",
		"- **IFSC Code:** YESB0001352",
		"4.8 ★ Google Rating",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected markdown to contain %q\n%s", want, md)
		}
	}
	if strings.Contains(md, "Secret Note") {
		t.Fatalf("disabled heading rendered")
	}
	if strings.Contains(md, "Source of Lead") || strings.Contains(md, "Purpose") {
		t.Fatalf("empty optional overview fields rendered")
	}
}

func TestFormatIndianNumber(t *testing.T) {
	for in, want := range map[float64]string{
		0:         "0",
		999:       "999",
		1000:      "1,000",
		125000:    "1,25,000",
		1234567:   "12,34,567",
		99999.5:   "99,999.5",
		-12500:    "-12,500",
		100000000: "10,00,00,000",
	} {
		if got := FormatIndianNumber(in); got != want {
			t.Fatalf("FormatIndianNumber(%v)=%q, want %q", in, got, want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-03-05"); got != "05 Mar 2024" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatDate(""); got != "" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatDate("soon"); got != "soon" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sample(), model.Company); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected a PDF header, got %q", buf.Bytes()[:8])
	}
}

func TestExport_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	res, err := Export(sample(), model.Company, dir, ExportOptions{Format: FormatMarkdown})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if res.Path != filepath.Join(dir, "AH24-DOM-FIT-003-PriyaRaman-OotyKodai-3N4D-4.md") {
		t.Fatalf("unexpected path %q", res.Path)
	}
	if _, err := os.Stat(res.Path); err != nil {
		t.Fatalf("expected file: %v", err)
	}

	if _, err := Export(sample(), model.Company, dir, ExportOptions{Format: FormatMarkdown}); err == nil {
		t.Fatalf("expected overwrite refusal")
	}
	if _, err := Export(sample(), model.Company, dir, ExportOptions{Format: FormatMarkdown, Overwrite: true}); err != nil {
		t.Fatalf("overwrite export: %v", err)
	}

	pdfRes, err := Export(sample(), model.Company, dir, ExportOptions{Format: FormatPDF})
	if err != nil {
		t.Fatalf("pdf export: %v", err)
	}
	if filepath.Ext(pdfRes.Path) != ".pdf" || pdfRes.Bytes == 0 {
		t.Fatalf("unexpected pdf result %+v", pdfRes)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("Markdown"); err != nil || f != FormatMarkdown {
		t.Fatalf("unexpected %q %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatPDF {
		t.Fatalf("unexpected %q %v", f, err)
	}
	if _, err := ParseFormat("docx"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestPreviewStyle(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if got := PreviewStyle("LIGHT"); got != "light" {
		t.Fatalf("light: got %q", got)
	}
	if got := PreviewStyle("plain"); got != "notty" {
		t.Fatalf("plain: got %q", got)
	}
	if got := PreviewStyle("auto"); got != "dark" {
		t.Fatalf("auto: got %q", got)
	}
	t.Setenv("NO_COLOR", "1")
	if got := PreviewStyle(""); got != "notty" {
		t.Fatalf("auto with NO_COLOR: got %q", got)
	}
}

func TestRenderTerminal_NoTTY(t *testing.T) {
	out := RenderTerminal(sample(), model.Company, 80, PreviewStyle("notty"))
	if !strings.Contains(out, "Greetings from") {
		t.Fatalf("missing greeting:\n%s", out)
	}
	if strings.Contains(out, "Secret Note") {
		t.Fatalf("disabled heading rendered:\n%s", out)
	}
}
