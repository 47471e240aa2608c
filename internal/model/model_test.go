package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItineraryClone_DoesNotShareSlices(t *testing.T) {
	orig := Itinerary{
		ID:             "a",
		CustomHeadings: []CustomHeading{{ID: "h1", Title: "Visa"}},
		PricingSlots:   []PricingSlot{{ID: "p1", Price: 100, Unit: PricingUnitPerPax}},
		DayPlans:       []DayPlan{{ID: "d1", DayNumber: 1, Activities: []string{"Lake"}}},
		Inclusions:     []string{"Breakfast"},
		Exclusions:     []string{"Flights"},
	}
	cp := orig.Clone()
	cp.CustomHeadings[0].Title = "changed"
	cp.PricingSlots[0].Price = 1
	cp.DayPlans[0].Activities[0] = "changed"
	cp.Inclusions[0] = "changed"
	cp.Exclusions = append(cp.Exclusions, "x")

	assert.Equal(t, "Visa", orig.CustomHeadings[0].Title)
	assert.Equal(t, float64(100), orig.PricingSlots[0].Price)
	assert.Equal(t, "Lake", orig.DayPlans[0].Activities[0])
	assert.Equal(t, "Breakfast", orig.Inclusions[0])
	assert.Len(t, orig.Exclusions, 1)
}

func TestCoercePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "12500", want: 12500},
		{in: " 1,25,000 ", want: 125000},
		{in: "₹999.50", want: 999.5},
		{in: "", want: 0},
		{in: "abc", want: 0, wantErr: true},
		{in: "-5", want: 0, wantErr: true},
		{in: "NaN", want: 0, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CoercePrice(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCoerceGroupSize(t *testing.T) {
	n, err := CoerceGroupSize("4")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = CoerceGroupSize("zero")
	assert.Error(t, err)
	assert.Equal(t, 1, n)

	n, err = CoerceGroupSize("0")
	assert.Error(t, err)
	assert.Equal(t, 1, n)
}

func TestParsePricingUnit(t *testing.T) {
	u, err := ParsePricingUnit("per-room")
	require.NoError(t, err)
	assert.Equal(t, PricingUnitPerRoom, u)

	u, err = ParsePricingUnit("  Total   package ")
	require.NoError(t, err)
	assert.Equal(t, PricingUnitTotalPackage, u)

	_, err = ParsePricingUnit("per night")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("Visit Garden\n\n  \r\nBoating at Ooty Lake\n")
	assert.Equal(t, []string{"Visit Garden", "Boating at Ooty Lake"}, got)
	assert.Equal(t, []string{}, SplitLines(""))
}

func TestNewDraft_Defaults(t *testing.T) {
	now := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	d := NewDraft(now)
	assert.Equal(t, "2024-03-09", d.QuotationDate)
	assert.Equal(t, "+91 ", d.ConsultantNumber)
	assert.Equal(t, 1, d.GroupSize)
	assert.Equal(t, DefaultBankDetails, d.BankDetails)
	assert.NotEmpty(t, d.TermsConditions)
	assert.NotNil(t, d.DayPlans)
}
