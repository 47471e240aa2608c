package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"itinerary-studio/internal/model"
	"itinerary-studio/internal/mutate"
	"itinerary-studio/internal/store"
	"itinerary-studio/internal/wizard"

	"github.com/spf13/cobra"
)

// resolveDay accepts a day id or a day number.
func resolveDay(sess *wizard.Session, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	days := sess.Draft().DayPlans
	for _, d := range days {
		if d.ID == ref {
			return d.ID, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil {
		for _, d := range days {
			if d.DayNumber == n {
				return d.ID, nil
			}
		}
	}
	return "", store.NotFoundError{Kind: "day", ID: ref}
}

func newDaysCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "days",
		Short: "Edit the day-by-day plan of an itinerary",
	}
	cmd.AddCommand(newDaysAddCmd(app))
	cmd.AddCommand(newDaysRemoveCmd(app))
	cmd.AddCommand(newDaysDay0Cmd(app))
	cmd.AddCommand(newDaysKeywordCmd(app))
	cmd.AddCommand(newDaysSetCmd(app))
	return cmd
}

func newDaysAddCmd(app *App) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "add <itinerary>",
		Short: "Append empty days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return writeErr(cmd, errors.New("--count must be >= 1"))
			}
			return editItinerary(cmd, app, args[0], func(sess *wizard.Session) ([]string, error) {
				for i := 0; i < count; i++ {
					sess.AddDay()
				}
				return nil, nil
			})
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "Number of days to add")
	return cmd
}

func newDaysRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <itinerary> <day-id|day-number>",
		Short: "Remove a day and renumber the rest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editItinerary(cmd, app, args[0], func(sess *wizard.Session) ([]string, error) {
				id, err := resolveDay(sess, args[1])
				if err != nil {
					return nil, err
				}
				sess.RemoveDay(id)
				return nil, nil
			})
		},
	}
}

func newDaysDay0Cmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "day0 <itinerary> on|off",
		Short:     "Turn the day-0 arrival day on or off",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch strings.ToLower(strings.TrimSpace(args[1])) {
			case "on", "true", "yes":
				enabled = true
			case "off", "false", "no":
				enabled = false
			default:
				return writeErr(cmd, fmt.Errorf("invalid day0 value %q (expected on|off)", args[1]))
			}
			return editItinerary(cmd, app, args[0], func(sess *wizard.Session) ([]string, error) {
				sess.SetDay0(enabled)
				return nil, nil
			})
		},
	}
}

func newDaysKeywordCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keyword <itinerary> <day-id|day-number> <keyword>",
		Short: "Set a day's keyword; a matching template fills its activities",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editItinerary(cmd, app, args[0], func(sess *wizard.Session) ([]string, error) {
				id, err := resolveDay(sess, args[1])
				if err != nil {
					return nil, err
				}
				sess.ApplyKeyword(id, args[2])
				return nil, nil
			})
		},
	}
}

func newDaysSetCmd(app *App) *cobra.Command {
	var title string
	var date string
	var activities []string

	cmd := &cobra.Command{
		Use:   "set <itinerary> <day-id|day-number>",
		Short: "Set a day's title, date or activities",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p mutate.DayPatch
			if cmd.Flags().Changed("title") {
				p.Title = &title
			}
			if cmd.Flags().Changed("date") {
				date = strings.TrimSpace(date)
				p.Date = &date
			}
			if cmd.Flags().Changed("activity") {
				acts := model.SplitLines(strings.Join(activities, "\n"))
				p.Activities = &acts
			}
			if p.Title == nil && p.Date == nil && p.Activities == nil {
				return writeErr(cmd, errors.New("nothing to update (pass --title, --date or --activity)"))
			}
			return editItinerary(cmd, app, args[0], func(sess *wizard.Session) ([]string, error) {
				id, err := resolveDay(sess, args[1])
				if err != nil {
					return nil, err
				}
				sess.UpdateDay(id, p)
				return nil, nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Day title")
	cmd.Flags().StringVar(&date, "date", "", "Day date (YYYY-MM-DD, empty to clear)")
	cmd.Flags().StringArrayVar(&activities, "activity", nil, "Activity (repeatable; replaces all activities)")
	return cmd
}
