package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateItineraryCode(t *testing.T) {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{name: "empty", want: "AH24-DOM-FIT-001"},
		{name: "next after two", existing: []string{"AH24-DOM-FIT-001", "AH24-DOM-FIT-002"}, want: "AH24-DOM-FIT-003"},
		{name: "fills gap", existing: []string{"AH24-DOM-FIT-001", "AH24-DOM-FIT-003"}, want: "AH24-DOM-FIT-002"},
		{name: "other year ignored", existing: []string{"AH23-DOM-FIT-001"}, want: "AH24-DOM-FIT-001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := map[string]bool{}
			for _, c := range tt.existing {
				set[c] = true
			}
			if got := GenerateItineraryCode(set, now); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGenerateItineraryCode_NeverReturnsExisting(t *testing.T) {
	now := time.Date(2031, 1, 2, 0, 0, 0, 0, time.UTC)
	set := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := GenerateItineraryCode(set, now)
		if set[code] {
			t.Fatalf("generated existing code %q", code)
		}
		if !ValidItineraryCode(code) {
			t.Fatalf("generated malformed code %q", code)
		}
		set[code] = true
	}
}

func TestGenerateItineraryCode_WidensPast999(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	set := map[string]bool{}
	for i := 1; i <= 999; i++ {
		set[GenerateItineraryCode(set, now)] = true
	}
	got := GenerateItineraryCode(set, now)
	if got != "AH24-DOM-FIT-1000" {
		t.Fatalf("expected AH24-DOM-FIT-1000, got %q", got)
	}
	if !ValidItineraryCode(got) {
		t.Fatalf("expected widened code to stay valid")
	}
}

func TestValidItineraryCode(t *testing.T) {
	for code, want := range map[string]bool{
		"AH24-DOM-FIT-001":  true,
		"AH99-DOM-FIT-1234": true,
		"ah24-dom-fit-001":  false,
		"AH24-INT-FIT-001":  false,
		"AH24-DOM-FIT-":     false,
		"AH2X-DOM-FIT-001":  false,
		"":                  false,
	} {
		if got := ValidItineraryCode(code); got != want {
			t.Fatalf("ValidItineraryCode(%q)=%v, want %v", code, got, want)
		}
	}
}

func TestNewID_IsUUID(t *testing.T) {
	a, b := NewID(), NewID()
	if a == b {
		t.Fatalf("expected distinct ids")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("expected uuid, got %q: %v", a, err)
	}
}
