package cli

import (
	"errors"

	"itinerary-studio/internal/model"
	"itinerary-studio/internal/mutate"
	"itinerary-studio/internal/wizard"

	"github.com/spf13/cobra"
)

func slotIDs(sess *wizard.Session) []string {
	ps := sess.Draft().PricingSlots
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

// applySlotFlags sets price and unit on the slot with id. A price that does
// not parse is stored as 0 and reported as a warning; an unknown unit is an
// error.
func applySlotFlags(cmd *cobra.Command, sess *wizard.Session, id, label, price, unit string) ([]string, error) {
	var warnings []string
	var p mutate.PricingPatch
	if cmd.Flags().Changed("unit") {
		u, err := model.ParsePricingUnit(unit)
		if err != nil {
			return nil, err
		}
		p.Unit = &u
	}
	if cmd.Flags().Changed("label") {
		p.Label = &label
	}
	sess.UpdatePricingSlot(id, p)
	if cmd.Flags().Changed("price") {
		if err := sess.SetPrice(id, price); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	return warnings, nil
}

func newPricingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Edit the pricing slots of an itinerary",
	}
	cmd.AddCommand(newPricingAddCmd(app))
	cmd.AddCommand(newPricingSetCmd(app))
	cmd.AddCommand(newPricingRemoveCmd(app))
	return cmd
}

func newPricingAddCmd(app *App) *cobra.Command {
	var label, price, unit string

	cmd := &cobra.Command{
		Use:   "add <itinerary>",
		Short: "Append a pricing slot (defaults: price 0, Per Pax)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editItinerary(cmd, app, args[0], func(sess *wizard.Session) ([]string, error) {
				sess.AddPricingSlot(label)
				ids := slotIDs(sess)
				return applySlotFlags(cmd, sess, ids[len(ids)-1], label, price, unit)
			})
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "Slot label (e.g. \"3 Star Hotel\")")
	cmd.Flags().StringVar(&price, "price", "", "Price in INR")
	cmd.Flags().StringVar(&unit, "unit", "", "Per Pax|Per Room|Per Person|Total Package")
	return cmd
}

func newPricingSetCmd(app *App) *cobra.Command {
	var label, price, unit string

	cmd := &cobra.Command{
		Use:   "set <itinerary> <slot-id|position>",
		Short: "Change a pricing slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("label") && !cmd.Flags().Changed("price") && !cmd.Flags().Changed("unit") {
				return writeErr(cmd, errors.New("nothing to update (pass --label, --price or --unit)"))
			}
			return editItinerary(cmd, app, args[0], func(sess *wizard.Session) ([]string, error) {
				id, err := resolvePosition("pricing slot", slotIDs(sess), args[1])
				if err != nil {
					return nil, err
				}
				return applySlotFlags(cmd, sess, id, label, price, unit)
			})
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "Slot label")
	cmd.Flags().StringVar(&price, "price", "", "Price in INR")
	cmd.Flags().StringVar(&unit, "unit", "", "Per Pax|Per Room|Per Person|Total Package")
	return cmd
}

func newPricingRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <itinerary> <slot-id|position>",
		Short: "Remove a pricing slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editItinerary(cmd, app, args[0], func(sess *wizard.Session) ([]string, error) {
				id, err := resolvePosition("pricing slot", slotIDs(sess), args[1])
				if err != nil {
					return nil, err
				}
				sess.RemovePricingSlot(id)
				return nil, nil
			})
		},
	}
}
