package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"itinerary-studio/internal/model"

	"github.com/google/go-cmp/cmp"
)

func TestSQLiteStore_SaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	a := sampleItinerary("a", "AH24-DOM-FIT-001")
	b := sampleItinerary("b", "AH24-DOM-FIT-002")
	b.SourceOfLead = "Instagram"
	b.DayPlans = []model.DayPlan{
		{ID: "d0", DayNumber: 0, Title: model.DefaultDay0Title, Activities: []string{}},
		{ID: "d1", DayNumber: 1, Title: "Toy train", Date: "2024-06-02", Activities: []string{"Nilgiri railway"}},
	}
	st := &State{
		Itineraries: []model.Itinerary{b, a},
		Keywords: []model.Keyword{
			{ID: "k2", Keyword: "Kodai", Activities: []string{"Pillar Rocks"}, CreatedAt: testNow, UpdatedAt: testNow},
			{ID: "k1", Keyword: "Ooty1day", Activities: []string{"Visit Garden", "Boating at Ooty Lake"}, CreatedAt: testNow, UpdatedAt: testNow},
		},
	}

	if err := s.Save(ctx, st); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(st, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(filepath.Join(s.Dir, "studio.sqlite")); err != nil {
		t.Fatalf("expected sqlite file: %v", err)
	}
}

func TestSQLiteStore_SaveReplacesPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	first := &State{Itineraries: []model.Itinerary{sampleItinerary("a", "AH24-DOM-FIT-001")}, Keywords: []model.Keyword{}}
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	second := &State{Itineraries: []model.Itinerary{}, Keywords: []model.Keyword{{ID: "k", Keyword: "Ooty", Activities: []string{}}}}
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Itineraries) != 0 || len(got.Keywords) != 1 {
		t.Fatalf("expected only second snapshot, got %d itineraries %d keywords", len(got.Itineraries), len(got.Keywords))
	}
}

func TestSQLiteStore_EmptyLoadsEmptyState(t *testing.T) {
	got, err := Store{Dir: t.TempDir()}.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Itineraries == nil || got.Keywords == nil {
		t.Fatalf("expected non-nil empty collections, got %+v", got)
	}
	if len(got.Itineraries) != 0 || len(got.Keywords) != 0 {
		t.Fatalf("expected empty state, got %+v", got)
	}
}

func TestOpen_PersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	r, err := Open(ctx, s, WithClock(func() time.Time { return testNow }))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := r.AddKeyword("Ooty1day", []string{"Visit Garden"}); err != nil {
		t.Fatalf("add keyword: %v", err)
	}
	if err := r.AddItinerary(sampleItinerary("a", r.NextItineraryCode())); err != nil {
		t.Fatalf("add itinerary: %v", err)
	}

	r2, err := Open(ctx, s)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if diff := cmp.Diff(r.Snapshot(), r2.Snapshot()); diff != "" {
		t.Fatalf("reopened state differs (-want +got):\n%s", diff)
	}
}

func TestEventLog_AppendAndRead(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	r, err := Open(ctx, s, WithEvents(func(c Change) {
		if err := s.AppendEvent(ctx, c); err != nil {
			t.Errorf("append event: %v", err)
		}
	}))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	kw, err := r.AddKeyword("Ooty", nil)
	if err != nil {
		t.Fatalf("add keyword: %v", err)
	}
	if err := r.DeleteKeyword(kw.ID); err != nil {
		t.Fatalf("delete keyword: %v", err)
	}

	evs, err := s.ReadEvents(ctx, "", 0)
	if err != nil {
		t.Fatalf("read events: %v", err)
	}
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	if evs[0].Type != "keyword.delete" || evs[1].Type != "keyword.add" {
		t.Fatalf("expected newest first, got %s then %s", evs[0].Type, evs[1].Type)
	}

	only, err := s.ReadEvents(ctx, kw.ID, 1)
	if err != nil {
		t.Fatalf("read filtered events: %v", err)
	}
	if len(only) != 1 || only[0].EntityID != kw.ID {
		t.Fatalf("unexpected filtered events: %+v", only)
	}
}
