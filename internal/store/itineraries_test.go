package store

import (
	"errors"
	"testing"
	"time"

	"itinerary-studio/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItinerary(id, code string) model.Itinerary {
	it := model.NewDraft(testNow)
	it.ID = id
	it.ItineraryCode = code
	it.ClientName = "Priya Raman"
	it.Destination = "Ooty"
	it.Duration = "3N/4D"
	it.GroupSize = 4
	it.CustomHeadings = []model.CustomHeading{{ID: "h1", Title: "Visa", Content: "Not needed", Enabled: true}}
	it.PricingSlots = []model.PricingSlot{{ID: "p1", Label: "Deluxe", Price: 12500, Unit: model.PricingUnitPerPax}}
	it.DayPlans = []model.DayPlan{
		{ID: "d1", DayNumber: 1, Keyword: "Ooty1day", Title: "Arrival", Activities: []string{"Visit Garden"}},
		{ID: "d2", DayNumber: 2, Title: "Lake", Activities: []string{"Boating"}},
	}
	it.Inclusions = []string{"Breakfast"}
	it.Exclusions = []string{"Flights"}
	it.CreatedAt = testNow
	it.UpdatedAt = testNow
	return it
}

func TestAddItinerary_InsertsAtFront(t *testing.T) {
	r := newTestRepo(nil)
	require.NoError(t, r.AddItinerary(sampleItinerary("a", "AH24-DOM-FIT-001")))
	require.NoError(t, r.AddItinerary(sampleItinerary("b", "AH24-DOM-FIT-002")))

	all := r.Itineraries()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
}

func TestUpdateItinerary_TopLevelMerge(t *testing.T) {
	clock := testNow
	r := newTestRepo(nil, WithClock(func() time.Time { return clock }))
	require.NoError(t, r.AddItinerary(sampleItinerary("a", "AH24-DOM-FIT-001")))

	clock = testNow.Add(time.Hour)
	dest := "Kodaikanal"
	days := []model.DayPlan{{ID: "d9", DayNumber: 1, Title: "Only", Activities: []string{}}}
	got, err := r.UpdateItinerary("a", ItineraryPatch{Destination: &dest, DayPlans: &days})
	require.NoError(t, err)

	assert.Equal(t, "Kodaikanal", got.Destination)
	assert.Equal(t, "Priya Raman", got.ClientName)
	assert.Equal(t, days, got.DayPlans)
	assert.Equal(t, "AH24-DOM-FIT-001", got.ItineraryCode)
	assert.Equal(t, testNow, got.CreatedAt)
	assert.Equal(t, clock, got.UpdatedAt)

	days[0].Title = "mutated"
	stored, _ := r.GetItinerary("a")
	assert.Equal(t, "Only", stored.DayPlans[0].Title)
}

func TestUpdateItinerary_NotFound(t *testing.T) {
	r := newTestRepo(nil)
	_, err := r.UpdateItinerary("missing", ItineraryPatch{})
	require.Error(t, err)
	var nf NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "itinerary", nf.Kind)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFullPatch_RoundTripsEveryPatchableField(t *testing.T) {
	r := newTestRepo(nil)
	require.NoError(t, r.AddItinerary(sampleItinerary("a", "AH24-DOM-FIT-001")))

	edited := sampleItinerary("ignored", "ignored")
	edited.ClientName = "Arjun"
	edited.Purpose = "Honeymoon"
	edited.BankDetails.Bank = "Other Bank"
	edited.Inclusions = []string{"Dinner", "Sightseeing"}

	got, err := r.UpdateItinerary("a", FullPatch(edited))
	require.NoError(t, err)

	want := edited.Clone()
	want.ID = "a"
	want.ItineraryCode = "AH24-DOM-FIT-001"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected itinerary (-want +got):\n%s", diff)
	}
}

func TestDeleteItinerary_Lenient(t *testing.T) {
	calls := 0
	r := newTestRepo(nil, WithPersist(func(State) error { calls++; return nil }))
	require.NoError(t, r.AddItinerary(sampleItinerary("a", "AH24-DOM-FIT-001")))

	require.NoError(t, r.DeleteItinerary("missing"))
	assert.Equal(t, 1, calls)
	require.NoError(t, r.DeleteItinerary("a"))
	assert.Equal(t, 2, calls)
	assert.Empty(t, r.Itineraries())
}

func TestDuplicateItinerary(t *testing.T) {
	clock := testNow
	r := newTestRepo(nil, WithClock(func() time.Time { return clock }))
	orig := sampleItinerary("a", "AH24-DOM-FIT-001")
	require.NoError(t, r.AddItinerary(orig))

	clock = testNow.Add(48 * time.Hour)
	cp, err := r.DuplicateItinerary("a")
	require.NoError(t, err)

	assert.NotEqual(t, "a", cp.ID)
	assert.Equal(t, "AH24-DOM-FIT-002", cp.ItineraryCode)
	assert.Equal(t, "Priya Raman (Copy)", cp.ClientName)
	assert.Equal(t, clock, cp.CreatedAt)
	assert.Equal(t, clock, cp.UpdatedAt)

	all := r.Itineraries()
	require.Len(t, all, 2)
	assert.Equal(t, cp.ID, all[0].ID)

	// Collections are deep copies: editing the copy leaves the original alone.
	acts := []string{"changed"}
	days := cp.DayPlans
	days[0].Activities = acts
	_, err = r.UpdateItinerary(cp.ID, ItineraryPatch{DayPlans: &days})
	require.NoError(t, err)
	stored, _ := r.GetItinerary("a")
	assert.Equal(t, []string{"Visit Garden"}, stored.DayPlans[0].Activities)

	if diff := cmp.Diff(orig.PricingSlots, cp.PricingSlots); diff != "" {
		t.Fatalf("pricing slots differ (-orig +copy):\n%s", diff)
	}
}

func TestDuplicateItinerary_NotFound(t *testing.T) {
	r := newTestRepo(nil)
	_, err := r.DuplicateItinerary("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListItineraries_Filter(t *testing.T) {
	r := newTestRepo(nil)
	a := sampleItinerary("a", "AH24-DOM-FIT-001")
	b := sampleItinerary("b", "AH24-DOM-FIT-002")
	b.ClientName = "Meera"
	b.Destination = "Munnar"
	b.Duration = "2N/3D"
	require.NoError(t, r.AddItinerary(a))
	require.NoError(t, r.AddItinerary(b))

	ids := func(its []model.Itinerary) []string {
		out := []string{}
		for _, it := range its {
			out = append(out, it.ID)
		}
		return out
	}
	assert.Equal(t, []string{"b", "a"}, ids(r.ListItineraries("")))
	assert.Equal(t, []string{"a"}, ids(r.ListItineraries("ooty")))
	assert.Equal(t, []string{"b"}, ids(r.ListItineraries("meera")))
	assert.Equal(t, []string{"b"}, ids(r.ListItineraries("2n/")))
	assert.Equal(t, []string{"a"}, ids(r.ListItineraries("fit-001")))
	assert.Equal(t, []string{}, ids(r.ListItineraries("goa")))
}

func TestFindItineraryByRef(t *testing.T) {
	r := newTestRepo(nil)
	require.NoError(t, r.AddItinerary(sampleItinerary("a", "AH24-DOM-FIT-001")))

	it, ok := r.FindItineraryByRef("a")
	require.True(t, ok)
	assert.Equal(t, "a", it.ID)

	it, ok = r.FindItineraryByRef("ah24-dom-fit-001")
	require.True(t, ok)
	assert.Equal(t, "a", it.ID)

	_, ok = r.FindItineraryByRef("")
	assert.False(t, ok)
}

func TestNextItineraryCode(t *testing.T) {
	r := newTestRepo(nil)
	assert.Equal(t, "AH24-DOM-FIT-001", r.NextItineraryCode())
	require.NoError(t, r.AddItinerary(sampleItinerary("a", "AH24-DOM-FIT-001")))
	require.NoError(t, r.AddItinerary(sampleItinerary("b", "AH24-DOM-FIT-002")))
	assert.Equal(t, "AH24-DOM-FIT-003", r.NextItineraryCode())
	assert.True(t, r.CodeTaken("AH24-DOM-FIT-002"))
}

func TestPersistFailure_KeepsInMemoryState(t *testing.T) {
	boom := errors.New("disk full")
	r := newTestRepo(nil, WithPersist(func(State) error { return boom }))

	err := r.AddItinerary(sampleItinerary("a", "AH24-DOM-FIT-001"))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	_, ok := r.GetItinerary("a")
	assert.True(t, ok)
}

func TestChangeHook_ReceivesMutations(t *testing.T) {
	var got []string
	r := newTestRepo(nil, WithEvents(func(c Change) { got = append(got, c.Type+":"+c.EntityID) }))

	require.NoError(t, r.AddItinerary(sampleItinerary("a", "AH24-DOM-FIT-001")))
	cp, err := r.DuplicateItinerary("a")
	require.NoError(t, err)
	kw, err := r.AddKeyword("Ooty", nil)
	require.NoError(t, err)
	require.NoError(t, r.DeleteItinerary("a"))

	assert.Equal(t, []string{
		"itinerary.add:a",
		"itinerary.duplicate:" + cp.ID,
		"keyword.add:" + kw.ID,
		"itinerary.delete:a",
	}, got)
}

func TestSnapshot_IsIndependent(t *testing.T) {
	r := newTestRepo(nil)
	require.NoError(t, r.AddItinerary(sampleItinerary("a", "AH24-DOM-FIT-001")))
	snap := r.Snapshot()
	snap.Itineraries[0].DayPlans[0].Title = "changed"

	stored, _ := r.GetItinerary("a")
	assert.Equal(t, "Arrival", stored.DayPlans[0].Title)
}
