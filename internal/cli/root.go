package cli

import (
	"context"
	"fmt"
	"strings"

	"itinerary-studio/internal/config"
	"itinerary-studio/internal/format"
	"itinerary-studio/internal/logging"
	"itinerary-studio/internal/store"
	"itinerary-studio/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	Dir        string
	Format     string
	PrettyJSON bool
	LogLevel   string
	LogFormat  string
	ExportDir  string

	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	cfg, cfgErr := config.Load()
	app := &App{log: logging.Nop()}

	cmd := &cobra.Command{
		Use:          "studio",
		Short:        "Itinerary Studio (local-first) CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  studio

  # Scriptable commands
  studio itineraries list
  studio keywords add "Ooty Local" --activity "Botanical Garden" --activity "Boat House"

  # Direct itinerary lookup (shortcut for: studio itineraries show <code>)
  studio AH24-DOM-FIT-001
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return writeErr(cmd, cfgErr)
		}
		app.Format = strings.ToLower(strings.TrimSpace(app.Format))
		if !format.Valid(app.Format) {
			return writeErr(cmd, fmt.Errorf("unknown --format %q (expected json|yaml)", app.Format))
		}
		app.log = logging.New(logging.Options{
			Level:  app.LogLevel,
			Format: app.LogFormat,
			Output: cmd.ErrOrStderr(),
		})
		return nil
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = app.log.Sync()
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", cfg.Dir, "Path to store dir (default: nearest .studio/ walking up from the cwd)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", orDefault(cfg.Format, "json"), "Output format (json|yaml)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", orDefault(cfg.LogLevel, "warn"), "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFormat, "log-format", orDefault(cfg.LogFormat, "text"), "Log format (text|json)")
	cmd.PersistentFlags().StringVar(&app.ExportDir, "export-dir", orDefault(cfg.ExportDir, "."), "Default directory for exported documents")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newItinerariesCmd(app))
	cmd.AddCommand(newKeywordsCmd(app))
	cmd.AddCommand(newDaysCmd(app))
	cmd.AddCommand(newHeadingsCmd(app))
	cmd.AddCommand(newPricingCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newBackupCmd(app))
	cmd.AddCommand(newDoctorCmd(app))
	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newCompanyCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	repo, _, err := openRepo(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	return tui.Run(repo, tui.Options{ExportDir: app.ExportDir, Logger: app.log})
}

func resolveStore(app *App) (store.Store, error) {
	if app.Dir != "" {
		return store.Store{Dir: app.Dir}, nil
	}
	dir, err := store.DefaultDir()
	if err != nil {
		return store.Store{}, err
	}
	app.Dir = dir
	return store.Store{Dir: dir}, nil
}

// openRepo loads the store into a Repo that persists every mutation and
// records it in the event log.
func openRepo(cmd *cobra.Command, app *App) (*store.Repo, store.Store, error) {
	s, err := resolveStore(app)
	if err != nil {
		return nil, store.Store{}, err
	}
	ctx := cmdContext(cmd)
	repo, err := store.Open(ctx, s,
		store.WithLogger(app.log),
		store.WithEvents(func(c store.Change) {
			if err := s.AppendEvent(ctx, c); err != nil {
				app.log.Warn("append event failed", zap.String("type", c.Type), zap.Error(err))
			}
		}),
	)
	if err != nil {
		return nil, s, err
	}
	return repo, s, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func orDefault(v, d string) string {
	if strings.TrimSpace(v) == "" {
		return d
	}
	return v
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
