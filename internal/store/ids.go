package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns a random opaque record identifier (UUID v4).
func NewID() string {
	return uuid.NewString()
}

// ItineraryCodePrefix returns "AH<YY>-DOM-FIT-" for the year of now.
func ItineraryCodePrefix(now time.Time) string {
	return fmt.Sprintf("AH%02d-DOM-FIT-", now.Year()%100)
}

// GenerateItineraryCode returns the first AH<YY>-DOM-FIT-<NNN> code, counting
// from 1, that is not in existing. The counter is zero-padded to three digits
// and simply widens past 999. Nothing is reserved: the caller inserts the
// record before generating again.
func GenerateItineraryCode(existing map[string]bool, now time.Time) string {
	prefix := ItineraryCodePrefix(now)
	for counter := 1; ; counter++ {
		code := fmt.Sprintf("%s%03d", prefix, counter)
		if !existing[code] {
			return code
		}
	}
}

// ValidItineraryCode reports whether code has the AH<YY>-DOM-FIT-<NNN> shape.
func ValidItineraryCode(code string) bool {
	if len(code) < len("AH00-DOM-FIT-000") || !strings.HasPrefix(code, "AH") {
		return false
	}
	if !isDigits(code[2:4]) || code[4:13] != "-DOM-FIT-" {
		return false
	}
	return isDigits(code[13:])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
