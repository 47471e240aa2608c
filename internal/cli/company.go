package cli

import (
	"itinerary-studio/internal/model"

	"github.com/spf13/cobra"
)

func newCompanyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "company",
		Short: "Show the letterhead and default policies used in documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"company":            model.Company,
				"bankDetails":        model.DefaultBankDetails,
				"termsConditions":    model.DefaultTermsConditions,
				"cancellationPolicy": model.DefaultCancellationPolicy,
			}})
		},
	}
}
