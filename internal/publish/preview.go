package publish

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"itinerary-studio/internal/model"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

var (
	rendererMu sync.Mutex
	// Keyed by style + wrap width. WithAutoStyle queries the terminal and can
	// block, so callers always name a style.
	renderers = map[string]*glamour.TermRenderer{}
)

// PreviewStyle picks the glamour style for terminal previews. name may be
// "auto", "dark", "light" or "notty"; auto honors NO_COLOR.
func PreviewStyle(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark":
		return styles.DarkStyle
	case "light":
		return styles.LightStyle
	case "notty", "plain":
		return styles.NoTTYStyle
	}
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return styles.NoTTYStyle
	}
	return styles.DarkStyle
}

// RenderTerminal renders the itinerary document for a terminal width columns
// wide. Rendering errors fall back to the raw markdown.
func RenderTerminal(it model.Itinerary, c model.CompanyInfo, width int, style string) string {
	return renderMarkdown(RenderMarkdown(it, c), width, style)
}

func renderMarkdown(md string, width int, style string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	key := style + ":" + strconv.Itoa(width)

	rendererMu.Lock()
	r := renderers[key]
	rendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		rendererMu.Lock()
		if existing := renderers[key]; existing != nil {
			r = existing
		} else {
			renderers[key] = rr
			r = rr
		}
		rendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
