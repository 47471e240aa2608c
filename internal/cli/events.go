package cli

import (
	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	var limit int
	var entity string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the local mutation log (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ref := entity
			if ref != "" {
				// Accept an itinerary code as well as a raw id.
				repo, _, err := openRepo(cmd, app)
				if err != nil {
					return writeErr(cmd, err)
				}
				if it, ok := repo.FindItineraryByRef(ref); ok {
					ref = it.ID
				}
			}
			evs, err := s.ReadEvents(cmdContext(cmd), ref, limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": evs})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 200, "Max events to return (0 = all)")
	cmd.Flags().StringVar(&entity, "entity", "", "Only events for this id or itinerary code")
	return cmd
}
