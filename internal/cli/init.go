package cli

import (
	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize local storage (.studio/ in the cwd unless --dir is set)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctx := cmdContext(cmd)
			st, err := s.Load(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Save(ctx, st); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"dir":         s.Dir,
					"sqlitePath":  s.SQLitePath(),
					"itineraries": len(st.Itineraries),
					"keywords":    len(st.Keywords),
				},
				"_hints": []string{
					"studio itineraries create --client <name> --destination <place>",
					"studio keywords add <keyword> --activity <line>",
				},
			})
		},
	}
}
