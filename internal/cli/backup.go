package cli

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"itinerary-studio/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBackupCmd(app *App) *cobra.Command {
	var toDir string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a JSON snapshot and a copy of the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			dir := strings.TrimSpace(toDir)
			if dir == "" {
				dir = filepath.Join(s.Dir, "backups")
			}
			res, err := s.Backup(cmdContext(cmd), dir, time.Now())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data":   res,
				"_hints": []string{"studio import " + res.SnapshotPath},
			})
		},
	}
	cmd.Flags().StringVar(&toDir, "to", "", "Target directory (default: <store dir>/backups)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var merge bool

	cmd := &cobra.Command{
		Use:   "import <snapshot.json|->",
		Short: "Load a snapshot (backup file or browser export), replacing the store",
		Long: strings.TrimSpace(`
Load a snapshot into the store. The file may be a snapshot written by
"studio backup" or a browser export of the form {"state": {...}, "version": N}.

By default the snapshot replaces everything. With --merge, only itineraries
and keywords whose ids are not already stored are added.`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			incoming, err := readSnapshotArg(cmd, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			s, err := resolveStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctx := cmdContext(cmd)
			base, err := s.Load(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}

			next := incoming
			var report *store.MergeReport
			if merge {
				var rep store.MergeReport
				next, rep = store.MergeStates(*base, incoming, time.Now())
				report = &rep
			}
			if err := s.Save(ctx, &next); err != nil {
				return writeErr(cmd, err)
			}

			summary := map[string]any{
				"source":      args[0],
				"merge":       merge,
				"itineraries": len(next.Itineraries),
				"keywords":    len(next.Keywords),
				"replaced":    !merge,
			}
			if report != nil {
				summary["recoded"] = report.Recoded
				summary["skippedKeywords"] = report.SkippedKeywords
			}
			ev := store.Change{Type: "state.import", TS: time.Now().UTC(), Payload: summary}
			if err := s.AppendEvent(ctx, ev); err != nil {
				app.log.Warn("append event failed", zap.String("type", ev.Type), zap.Error(err))
			}
			return writeOut(cmd, app, map[string]any{
				"data":   summary,
				"_hints": []string{"studio doctor"},
			})
		},
	}
	cmd.Flags().BoolVar(&merge, "merge", false, "Add unknown records instead of replacing the store")
	return cmd
}

func readSnapshotArg(cmd *cobra.Command, path string) (store.State, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return store.State{}, err
		}
		return store.ImportSnapshot(b)
	}
	return store.ReadSnapshotFile(path)
}
