package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ImportSnapshot decodes a state snapshot. It accepts a bare State document
// as well as the persisted browser blob, which wraps the collections as
// {"state": {...}, "version": N} next to keys the store does not keep.
func ImportSnapshot(b []byte) (State, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return State{}, fmt.Errorf("parse snapshot: %w", err)
	}
	body := b
	if inner, ok := raw["state"]; ok && !isNullOrEmpty(inner) {
		body = inner
	} else if _, hasIt := raw["itineraries"]; !hasIt {
		if _, hasKw := raw["keywords"]; !hasKw {
			return State{}, errors.New("parse snapshot: no itineraries or keywords found")
		}
	}

	var st State
	if err := json.Unmarshal(body, &st); err != nil {
		return State{}, fmt.Errorf("parse snapshot: %w", err)
	}
	normalizeState(&st)
	return st, nil
}

// Recode records an incoming itinerary whose code was already taken.
type Recode struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

type MergeReport struct {
	Recoded         []Recode `json:"recoded"`
	SkippedKeywords []string `json:"skippedKeywords"`
}

// MergeStates returns base plus every record of incoming whose id base does
// not already hold. Incoming records go after the existing ones, keeping their
// relative order. An incoming itinerary whose code is taken gets a fresh code
// for now; an incoming keyword that matches a held one ignoring case is
// skipped.
func MergeStates(base, incoming State, now time.Time) (State, MergeReport) {
	out := base.Clone()
	rep := MergeReport{Recoded: []Recode{}, SkippedKeywords: []string{}}

	seenIt := map[string]bool{}
	codes := map[string]bool{}
	for _, it := range out.Itineraries {
		seenIt[it.ID] = true
		codes[it.ItineraryCode] = true
	}
	for _, it := range incoming.Itineraries {
		if seenIt[it.ID] {
			continue
		}
		seenIt[it.ID] = true
		cp := it.Clone()
		if cp.ItineraryCode == "" || codes[cp.ItineraryCode] {
			code := GenerateItineraryCode(codes, now)
			rep.Recoded = append(rep.Recoded, Recode{ID: cp.ID, From: cp.ItineraryCode, To: code})
			cp.ItineraryCode = code
		}
		codes[cp.ItineraryCode] = true
		out.Itineraries = append(out.Itineraries, cp)
	}

	seenKw := map[string]bool{}
	words := map[string]bool{}
	for _, k := range out.Keywords {
		seenKw[k.ID] = true
		words[strings.ToLower(strings.TrimSpace(k.Keyword))] = true
	}
	for _, k := range incoming.Keywords {
		if seenKw[k.ID] {
			continue
		}
		seenKw[k.ID] = true
		w := strings.ToLower(strings.TrimSpace(k.Keyword))
		if words[w] {
			rep.SkippedKeywords = append(rep.SkippedKeywords, k.Keyword)
			continue
		}
		words[w] = true
		out.Keywords = append(out.Keywords, k.Clone())
	}
	return out, rep
}

func isNullOrEmpty(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	s := strings.TrimSpace(string(b))
	return s == "" || s == "null"
}
