package cli

import (
	"errors"
	"strconv"
	"strings"

	"itinerary-studio/internal/mutate"
	"itinerary-studio/internal/store"
	"itinerary-studio/internal/wizard"

	"github.com/spf13/cobra"
)

// resolvePosition accepts an id from ids or a 1-based position.
func resolvePosition(kind string, ids []string, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(ids) {
		return ids[n-1], nil
	}
	return "", store.NotFoundError{Kind: kind, ID: ref}
}

func headingIDs(sess *wizard.Session) []string {
	hs := sess.Draft().CustomHeadings
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.ID
	}
	return out
}

func newHeadingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headings",
		Short: "Edit the custom headings of an itinerary",
	}
	cmd.AddCommand(newHeadingsAddCmd(app))
	cmd.AddCommand(newHeadingsSetCmd(app))
	cmd.AddCommand(newHeadingsRemoveCmd(app))
	return cmd
}

func newHeadingsAddCmd(app *App) *cobra.Command {
	var title string
	var content string

	cmd := &cobra.Command{
		Use:   "add <itinerary>",
		Short: "Append an enabled heading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(title) == "" {
				return writeErr(cmd, errors.New("missing --title"))
			}
			return editItinerary(cmd, app, args[0], func(sess *wizard.Session) ([]string, error) {
				sess.AddHeading(title, content)
				return nil, nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Heading title")
	cmd.Flags().StringVar(&content, "content", "", "Heading content")
	return cmd
}

func newHeadingsSetCmd(app *App) *cobra.Command {
	var title string
	var content string
	var enabled bool

	cmd := &cobra.Command{
		Use:   "set <itinerary> <heading-id|position>",
		Short: "Change a heading's title, content or visibility",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p mutate.HeadingPatch
			if cmd.Flags().Changed("title") {
				p.Title = &title
			}
			if cmd.Flags().Changed("content") {
				p.Content = &content
			}
			if cmd.Flags().Changed("enabled") {
				p.Enabled = &enabled
			}
			if p.Title == nil && p.Content == nil && p.Enabled == nil {
				return writeErr(cmd, errors.New("nothing to update (pass --title, --content or --enabled)"))
			}
			return editItinerary(cmd, app, args[0], func(sess *wizard.Session) ([]string, error) {
				id, err := resolvePosition("heading", headingIDs(sess), args[1])
				if err != nil {
					return nil, err
				}
				sess.UpdateHeading(id, p)
				return nil, nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Heading title")
	cmd.Flags().StringVar(&content, "content", "", "Heading content")
	cmd.Flags().BoolVar(&enabled, "enabled", true, "Include the heading in exported documents")
	return cmd
}

func newHeadingsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <itinerary> <heading-id|position>",
		Short: "Remove a heading",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editItinerary(cmd, app, args[0], func(sess *wizard.Session) ([]string, error) {
				id, err := resolvePosition("heading", headingIDs(sess), args[1])
				if err != nil {
					return nil, err
				}
				sess.RemoveHeading(id)
				return nil, nil
			})
		},
	}
}
