package publish

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"itinerary-studio/internal/model"
)

type Format string

const (
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "md"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pdf":
		return FormatPDF, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown export format %q (expected pdf|md)", s)
	}
}

type ExportOptions struct {
	Format    Format
	Overwrite bool
}

type ExportResult struct {
	Path   string `json:"path"`
	Format Format `json:"format"`
	Bytes  int    `json:"bytes"`
}

var (
	whitespace = regexp.MustCompile(`\s+`)
	pathChars  = strings.NewReplacer("/", "", `\`, "", "..", "")
)

// FileName builds <code>-<client>-<destination>-<duration>-<groupSize>.<ext>.
// Whitespace is dropped from client and destination and the first "/" is
// dropped from the duration, so "3N/4D" becomes "3N4D". Path separators and
// ".." are then stripped from every part so the name stays inside its
// directory.
func FileName(it model.Itinerary, ext string) string {
	return fmt.Sprintf("%s-%s-%s-%s-%s.%s",
		filePart(it.ItineraryCode),
		filePart(whitespace.ReplaceAllString(it.ClientName, "")),
		filePart(whitespace.ReplaceAllString(it.Destination, "")),
		filePart(strings.Replace(it.Duration, "/", "", 1)),
		strconv.Itoa(it.GroupSize),
		ext,
	)
}

func filePart(s string) string {
	for {
		next := pathChars.Replace(s)
		if next == s {
			return s
		}
		s = next
	}
}

// Export renders it into dir and returns the written path.
func Export(it model.Itinerary, c model.CompanyInfo, dir string, opt ExportOptions) (ExportResult, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ExportResult{}, errors.New("missing --to")
	}
	if opt.Format == "" {
		opt.Format = FormatPDF
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ExportResult{}, err
	}

	var buf bytes.Buffer
	switch opt.Format {
	case FormatPDF:
		if err := WritePDF(&buf, it, c); err != nil {
			return ExportResult{}, err
		}
	case FormatMarkdown:
		buf.WriteString(RenderMarkdown(it, c))
	default:
		return ExportResult{}, fmt.Errorf("unknown export format %q", opt.Format)
	}

	path := filepath.Join(filepath.Clean(dir), FileName(it, string(opt.Format)))
	if err := writeFile(path, buf.Bytes(), opt.Overwrite); err != nil {
		return ExportResult{}, err
	}
	return ExportResult{Path: path, Format: opt.Format, Bytes: buf.Len()}, nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
