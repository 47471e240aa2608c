package wizard

import (
	"fmt"
	"testing"
	"time"

	"itinerary-studio/internal/model"
	"itinerary-studio/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) *store.Repo {
	t.Helper()
	n := 0
	return store.NewRepo(nil,
		store.WithClock(func() time.Time { return testNow }),
		store.WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
}

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession(newRepo(t))
	d := s.Draft()
	assert.Equal(t, "AH24-DOM-FIT-001", d.ItineraryCode)
	assert.Equal(t, "2024-08-15", d.QuotationDate)
	assert.Equal(t, 1, d.GroupSize)
	assert.Equal(t, StepSummary, s.Step())
	assert.False(t, s.Editing())
	assert.False(t, s.Day0Enabled())
}

func TestNavigation_ClampsAndJumps(t *testing.T) {
	s := NewSession(newRepo(t))
	s.Previous()
	assert.Equal(t, StepSummary, s.Step())
	for i := 0; i < 10; i++ {
		s.Next()
	}
	assert.Equal(t, StepPolicies, s.Step())

	s.Jump(StepDays)
	assert.Equal(t, StepDays, s.Step())
	s.Jump(Step(42))
	assert.Equal(t, StepDays, s.Step())
	s.Jump(Step(-1))
	assert.Equal(t, StepDays, s.Step())
}

func TestSetField(t *testing.T) {
	s := NewSession(newRepo(t))
	require.NoError(t, s.SetField("clientName", "Priya"))
	require.NoError(t, s.SetField("bank.ifscCode", "HDFC0001"))
	require.NoError(t, s.SetField("inclusions", "Breakfast\n\nDinner\n"))

	err := s.SetField("groupSize", "many")
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.ErrorIs(t, s.SetField("nope", "x"), model.ErrValidation)

	d := s.Draft()
	assert.Equal(t, "Priya", d.ClientName)
	assert.Equal(t, "HDFC0001", d.BankDetails.IFSCCode)
	assert.Equal(t, []string{"Breakfast", "Dinner"}, d.Inclusions)
	assert.Equal(t, 1, d.GroupSize)

	v, ok := s.Field("inclusions")
	require.True(t, ok)
	assert.Equal(t, "Breakfast\nDinner", v)
}

func TestDays_ToggleOnlyOnChange(t *testing.T) {
	s := NewSession(newRepo(t))
	s.AddDay()
	s.AddDay()
	s.SetDay0(false)
	assert.Len(t, s.Draft().DayPlans, 2)

	s.SetDay0(true)
	s.SetDay0(true)
	days := s.Draft().DayPlans
	require.Len(t, days, 3)
	assert.Equal(t, 0, days[0].DayNumber)

	s.AddDay()
	assert.Equal(t, 3, s.Draft().DayPlans[3].DayNumber)

	s.SetDay0(false)
	got := []int{}
	for _, d := range s.Draft().DayPlans {
		got = append(got, d.DayNumber)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestApplyKeyword_UsesRepoTemplates(t *testing.T) {
	repo := newRepo(t)
	_, err := repo.AddKeyword("Ooty1day", []string{"Visit Garden", "Boating at Ooty Lake"})
	require.NoError(t, err)

	s := NewSession(repo)
	s.AddDay()
	id := s.Draft().DayPlans[0].ID
	for _, typed := range []string{"O", "Oo", "Ooty1", "Ooty1day"} {
		s.ApplyKeyword(id, typed)
	}
	d := s.Draft().DayPlans[0]
	assert.Equal(t, "Ooty1day", d.Keyword)
	assert.Equal(t, []string{"Visit Garden", "Boating at Ooty Lake"}, d.Activities)
}

func TestSetPrice_Coerces(t *testing.T) {
	s := NewSession(newRepo(t))
	s.AddPricingSlot("Deluxe")
	id := s.Draft().PricingSlots[0].ID

	require.NoError(t, s.SetPrice(id, "12,500"))
	assert.Equal(t, 12500.0, s.Draft().PricingSlots[0].Price)
	assert.Error(t, s.SetPrice(id, "abc"))
	assert.Equal(t, 0.0, s.Draft().PricingSlots[0].Price)
}

func TestSave_CreatesThenUpdates(t *testing.T) {
	repo := newRepo(t)
	s := NewSession(repo)
	require.NoError(t, s.SetField("clientName", "Priya"))

	created, err := s.Save()
	require.NoError(t, err)
	assert.True(t, s.Editing())
	assert.Equal(t, "AH24-DOM-FIT-001", created.ItineraryCode)
	assert.Equal(t, testNow, created.CreatedAt)
	require.Len(t, repo.Itineraries(), 1)

	require.NoError(t, s.SetField("destination", "Ooty"))
	updated, err := s.Save()
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ooty", updated.Destination)
	assert.Len(t, repo.Itineraries(), 1)
}

func TestSave_RegeneratesTakenCode(t *testing.T) {
	repo := newRepo(t)
	a := NewSession(repo)
	b := NewSession(repo)
	require.Equal(t, a.Draft().ItineraryCode, b.Draft().ItineraryCode)

	_, err := a.Save()
	require.NoError(t, err)
	got, err := b.Save()
	require.NoError(t, err)
	assert.Equal(t, "AH24-DOM-FIT-002", got.ItineraryCode)
}

func TestOpenSession(t *testing.T) {
	repo := newRepo(t)
	it := model.NewDraft(testNow)
	it.ID = "trip"
	it.ItineraryCode = "AH24-DOM-FIT-007"
	it.DayPlans = []model.DayPlan{{ID: "d0", DayNumber: 0, Activities: []string{}}, {ID: "d1", DayNumber: 1, Activities: []string{}}}
	require.NoError(t, repo.AddItinerary(it))

	s, err := OpenSession(repo, "ah24-dom-fit-007")
	require.NoError(t, err)
	assert.True(t, s.Editing())
	assert.True(t, s.Day0Enabled())

	s.AddDay()
	stored, _ := repo.GetItinerary("trip")
	assert.Len(t, stored.DayPlans, 2)

	_, err = OpenSession(repo, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
