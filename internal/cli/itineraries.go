package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"itinerary-studio/internal/model"
	"itinerary-studio/internal/publish"
	"itinerary-studio/internal/store"
	"itinerary-studio/internal/wizard"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type itinerarySummary struct {
	ID            string    `json:"id"`
	ItineraryCode string    `json:"itineraryCode"`
	ClientName    string    `json:"clientName"`
	Destination   string    `json:"destination"`
	Duration      string    `json:"duration"`
	TravelDate    string    `json:"travelDate"`
	GroupSize     int       `json:"groupSize"`
	Days          int       `json:"days"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func summarize(it model.Itinerary) itinerarySummary {
	return itinerarySummary{
		ID:            it.ID,
		ItineraryCode: it.ItineraryCode,
		ClientName:    it.ClientName,
		Destination:   it.Destination,
		Duration:      it.Duration,
		TravelDate:    it.TravelDate,
		GroupSize:     it.GroupSize,
		Days:          len(it.DayPlans),
		UpdatedAt:     it.UpdatedAt,
	}
}

type fieldFlag struct {
	flag string
	key  string
}

var itineraryFieldFlags = []fieldFlag{
	{flag: "client", key: "clientName"},
	{flag: "destination", key: "destination"},
	{flag: "duration", key: "duration"},
	{flag: "travel-date", key: "travelDate"},
	{flag: "group-size", key: "groupSize"},
	{flag: "consultant", key: "consultantName"},
	{flag: "consultant-number", key: "consultantNumber"},
	{flag: "quotation-date", key: "quotationDate"},
	{flag: "transport", key: "transportDetails"},
	{flag: "source", key: "sourceOfLead"},
	{flag: "purpose", key: "purpose"},
	{flag: "inclusions", key: "inclusions"},
	{flag: "exclusions", key: "exclusions"},
	{flag: "terms", key: "termsConditions"},
	{flag: "cancellation", key: "cancellationPolicy"},
	{flag: "bank", key: "bank.bank"},
	{flag: "account-name", key: "bank.accountName"},
	{flag: "account-number", key: "bank.accountNumber"},
	{flag: "ifsc", key: "bank.ifscCode"},
}

func fieldUsage(key string) string {
	for _, step := range wizard.Steps {
		for _, f := range wizard.FieldsFor(step) {
			if f.Key != key {
				continue
			}
			if f.Multiline {
				return f.Label + " (one entry per line)"
			}
			return f.Label
		}
	}
	return key
}

func addFieldFlags(cmd *cobra.Command) map[string]*string {
	vals := map[string]*string{}
	for _, ff := range itineraryFieldFlags {
		vals[ff.flag] = cmd.Flags().String(ff.flag, "", fieldUsage(ff.key))
	}
	return vals
}

// applyFieldFlags sets every field whose flag was given. Coerced values are
// reported as warnings; they never abort the command.
func applyFieldFlags(cmd *cobra.Command, sess *wizard.Session, vals map[string]*string) (changed int, warnings []string) {
	for _, ff := range itineraryFieldFlags {
		if !cmd.Flags().Changed(ff.flag) {
			continue
		}
		changed++
		if err := sess.SetField(ff.key, *vals[ff.flag]); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	return changed, warnings
}

func findItinerary(repo *store.Repo, ref string) (model.Itinerary, error) {
	it, ok := repo.FindItineraryByRef(ref)
	if !ok {
		return model.Itinerary{}, store.NotFoundError{Kind: "itinerary", ID: ref}
	}
	return it, nil
}

// editItinerary opens ref in a wizard session, runs edit and saves the draft.
func editItinerary(cmd *cobra.Command, app *App, ref string, edit func(*wizard.Session) ([]string, error)) error {
	repo, _, err := openRepo(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	sess, err := wizard.OpenSession(repo, ref, wizard.WithLogger(app.log))
	if err != nil {
		return writeErr(cmd, err)
	}
	warnings, err := edit(sess)
	if err != nil {
		return writeErr(cmd, err)
	}
	it, err := sess.Save()
	if err != nil {
		return writeErr(cmd, err)
	}
	return writeOut(cmd, app, withWarnings(map[string]any{"data": it}, warnings))
}

func withWarnings(env map[string]any, warnings []string) map[string]any {
	if len(warnings) > 0 {
		env["meta"] = map[string]any{"warnings": warnings}
	}
	return env
}

func newItinerariesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "itineraries",
		Aliases: []string{"itinerary", "it"},
		Short:   "Itinerary commands",
	}
	cmd.AddCommand(newItinerariesListCmd(app))
	cmd.AddCommand(newItinerariesShowCmd(app))
	cmd.AddCommand(newItinerariesCreateCmd(app))
	cmd.AddCommand(newItinerariesUpdateCmd(app))
	cmd.AddCommand(newItinerariesDeleteCmd(app))
	cmd.AddCommand(newItinerariesDuplicateCmd(app))
	cmd.AddCommand(newItinerariesNextCodeCmd(app))
	cmd.AddCommand(newItinerariesPreviewCmd(app))
	cmd.AddCommand(newItinerariesExportCmd(app))
	return cmd
}

func newItinerariesListCmd(app *App) *cobra.Command {
	var query string
	var full bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List itineraries (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := openRepo(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			its := repo.ListItineraries(query)
			meta := map[string]any{"count": len(its)}
			if full {
				return writeOut(cmd, app, map[string]any{"data": its, "meta": meta})
			}
			out := make([]itinerarySummary, 0, len(its))
			for _, it := range its {
				out = append(out, summarize(it))
			}
			return writeOut(cmd, app, map[string]any{
				"data":   out,
				"meta":   meta,
				"_hints": []string{"studio itineraries show <code>"},
			})
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by client, destination, duration or code (case-insensitive)")
	cmd.Flags().BoolVar(&full, "full", false, "Print full itineraries instead of summaries")
	return cmd
}

func newItinerariesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|code>",
		Short: "Show one itinerary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := openRepo(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			it, err := findItinerary(repo, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": it})
		},
	}
}

func newItinerariesCreateCmd(app *App) *cobra.Command {
	var days int
	var day0 bool
	var fields map[string]*string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an itinerary",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := openRepo(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if days < 0 {
				return writeErr(cmd, errors.New("--days must be >= 0"))
			}
			sess := wizard.NewSession(repo, wizard.WithLogger(app.log))
			_, warnings := applyFieldFlags(cmd, sess, fields)
			if day0 {
				sess.SetDay0(true)
			}
			for i := 0; i < days; i++ {
				sess.AddDay()
			}
			it, err := sess.Save()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, withWarnings(map[string]any{
				"data": it,
				"_hints": []string{
					"studio itineraries show " + it.ItineraryCode,
					"studio days add " + it.ItineraryCode,
					"studio itineraries export " + it.ItineraryCode,
				},
			}, warnings))
		},
	}
	fields = addFieldFlags(cmd)
	cmd.Flags().IntVar(&days, "days", 0, "Number of empty days to add")
	cmd.Flags().BoolVar(&day0, "day0", false, "Start with a day 0 (arrival)")
	return cmd
}

func newItinerariesUpdateCmd(app *App) *cobra.Command {
	var fields map[string]*string

	cmd := &cobra.Command{
		Use:   "update <id|code>",
		Short: "Update itinerary fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editItinerary(cmd, app, args[0], func(sess *wizard.Session) ([]string, error) {
				changed, warnings := applyFieldFlags(cmd, sess, fields)
				if changed == 0 {
					return nil, errors.New("nothing to update (pass at least one field flag)")
				}
				return warnings, nil
			})
		},
	}
	fields = addFieldFlags(cmd)
	return cmd
}

func newItinerariesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id|code>",
		Short: "Delete an itinerary (no-op if it does not exist)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := openRepo(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			it, ok := repo.FindItineraryByRef(args[0])
			if !ok {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"ref": args[0], "deleted": false}})
			}
			if err := repo.DeleteItinerary(it.ID); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"ref":           args[0],
				"id":            it.ID,
				"itineraryCode": it.ItineraryCode,
				"deleted":       true,
			}})
		},
	}
}

func newItinerariesDuplicateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <id|code>",
		Short: "Copy an itinerary under a new id and code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := openRepo(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			src, err := findItinerary(repo, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			it, err := repo.DuplicateItinerary(src.ID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data":   it,
				"_hints": []string{"studio itineraries update " + it.ItineraryCode + " --client <name>"},
			})
		},
	}
}

func newItinerariesNextCodeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "next-code",
		Short: "Print the code the next new itinerary would get",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := openRepo(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"itineraryCode": repo.NextItineraryCode(),
				"prefix":        store.ItineraryCodePrefix(repo.Now()),
			}})
		},
	}
}

func newItinerariesPreviewCmd(app *App) *cobra.Command {
	var raw bool
	var width int
	var style string

	cmd := &cobra.Command{
		Use:   "preview <id|code>",
		Short: "Render the itinerary document in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := openRepo(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			it, err := findItinerary(repo, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if raw {
				_, err = fmt.Fprint(cmd.OutOrStdout(), publish.RenderMarkdown(it, model.Company))
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), publish.RenderTerminal(it, model.Company, width, publish.PreviewStyle(style)))
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source instead of rendering it")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width")
	cmd.Flags().StringVar(&style, "style", "auto", "Render style (auto|dark|light|notty)")
	return cmd
}

func newItinerariesExportCmd(app *App) *cobra.Command {
	var toDir string
	var as string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "export <id|code>",
		Short: "Export the itinerary document (pdf|md)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := publish.ParseFormat(as)
			if err != nil {
				return writeErr(cmd, err)
			}
			repo, _, err := openRepo(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			it, err := findItinerary(repo, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			dir := strings.TrimSpace(toDir)
			if dir == "" {
				dir = app.ExportDir
			}
			res, err := publish.Export(it, model.Company, dir, publish.ExportOptions{Format: f, Overwrite: overwrite})
			if err != nil {
				return writeErr(cmd, err)
			}
			app.log.Info("itinerary exported", zap.String("code", it.ItineraryCode), zap.String("path", res.Path))
			return writeOut(cmd, app, map[string]any{"data": res})
		},
	}
	cmd.Flags().StringVar(&toDir, "to", "", "Output directory (default: --export-dir)")
	cmd.Flags().StringVar(&as, "as", "pdf", "Document format (pdf|md)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing file")
	return cmd
}
