package mutate

import "itinerary-studio/internal/model"

type PricingPatch struct {
	Label *string
	Price *float64
	Unit  *model.PricingUnit
}

// AddPricingSlot appends a slot priced 0 per pax.
func AddPricingSlot(ps []model.PricingSlot, label string) []model.PricingSlot {
	out := make([]model.PricingSlot, 0, len(ps)+1)
	out = append(out, ps...)
	return append(out, model.PricingSlot{ID: NewID(), Label: label, Price: 0, Unit: model.PricingUnitPerPax})
}

// UpdatePricingSlot merges p into the slot with id. A negative price is
// stored as 0 and an unknown unit keeps the previous one.
func UpdatePricingSlot(ps []model.PricingSlot, id string, p PricingPatch) []model.PricingSlot {
	out := make([]model.PricingSlot, len(ps))
	copy(out, ps)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if p.Label != nil {
			out[i].Label = *p.Label
		}
		if p.Price != nil {
			out[i].Price = *p.Price
			if out[i].Price < 0 {
				out[i].Price = 0
			}
		}
		if p.Unit != nil && p.Unit.Valid() {
			out[i].Unit = *p.Unit
		}
	}
	return out
}

func RemovePricingSlot(ps []model.PricingSlot, id string) []model.PricingSlot {
	out := make([]model.PricingSlot, 0, len(ps))
	for _, p := range ps {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
