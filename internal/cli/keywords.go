package cli

import (
	"errors"
	"strings"

	"itinerary-studio/internal/model"
	"itinerary-studio/internal/store"

	"github.com/spf13/cobra"
)

// findKeyword resolves ref as a template id, then as a keyword
// (case-insensitive).
func findKeyword(repo *store.Repo, ref string) (model.Keyword, bool) {
	ref = strings.TrimSpace(ref)
	if k, ok := repo.FindKeyword(ref); ok {
		return k, true
	}
	for _, k := range repo.Keywords() {
		if strings.EqualFold(k.Keyword, ref) {
			return k, true
		}
	}
	return model.Keyword{}, false
}

func activitiesFrom(repeated []string) []string {
	return model.SplitLines(strings.Join(repeated, "\n"))
}

func newKeywordsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keywords",
		Aliases: []string{"keyword", "kw"},
		Short:   "Keyword template commands",
	}
	cmd.AddCommand(newKeywordsListCmd(app))
	cmd.AddCommand(newKeywordsAddCmd(app))
	cmd.AddCommand(newKeywordsUpdateCmd(app))
	cmd.AddCommand(newKeywordsDeleteCmd(app))
	return cmd
}

func newKeywordsListCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List keyword templates (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := openRepo(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			kws := repo.SearchKeywords(query)
			return writeOut(cmd, app, map[string]any{
				"data": kws,
				"meta": map[string]any{"count": len(kws)},
			})
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by keyword substring (case-insensitive)")
	return cmd
}

func newKeywordsAddCmd(app *App) *cobra.Command {
	var activities []string

	cmd := &cobra.Command{
		Use:   "add <keyword>",
		Short: "Add a keyword template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := openRepo(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			k, err := repo.AddKeyword(args[0], activitiesFrom(activities))
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data":   k,
				"_hints": []string{"studio days keyword <itinerary> <day> " + k.Keyword},
			})
		},
	}
	cmd.Flags().StringArrayVar(&activities, "activity", nil, "Activity line (repeatable)")
	return cmd
}

func newKeywordsUpdateCmd(app *App) *cobra.Command {
	var keyword string
	var activities []string

	cmd := &cobra.Command{
		Use:   "update <id|keyword>",
		Short: "Rename a template or replace its activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p store.KeywordPatch
			if cmd.Flags().Changed("keyword") {
				if strings.TrimSpace(keyword) == "" {
					return writeErr(cmd, &model.ValidationError{Field: "keyword", Value: keyword, Reason: "must not be empty"})
				}
				p.Keyword = &keyword
			}
			if cmd.Flags().Changed("activity") {
				acts := activitiesFrom(activities)
				p.Activities = &acts
			}
			if p.Keyword == nil && p.Activities == nil {
				return writeErr(cmd, errors.New("nothing to update (pass --keyword or --activity)"))
			}
			repo, _, err := openRepo(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cur, ok := findKeyword(repo, args[0])
			if !ok {
				return writeErr(cmd, store.NotFoundError{Kind: "keyword", ID: args[0]})
			}
			k, err := repo.UpdateKeyword(cur.ID, p)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": k})
		},
	}
	cmd.Flags().StringVar(&keyword, "keyword", "", "New keyword")
	cmd.Flags().StringArrayVar(&activities, "activity", nil, "Activity line (repeatable; replaces all activities)")
	return cmd
}

func newKeywordsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id|keyword>",
		Short: "Delete a keyword template (no-op if it does not exist)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := openRepo(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			k, ok := findKeyword(repo, args[0])
			if !ok {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"ref": args[0], "deleted": false}})
			}
			if err := repo.DeleteKeyword(k.ID); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"ref":     args[0],
				"id":      k.ID,
				"keyword": k.Keyword,
				"deleted": true,
			}})
		},
	}
}
