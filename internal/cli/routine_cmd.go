package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/solace/internal/cli/formatter"
)

func newRoutineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Manage your daily routine checklist",
	}

	cmd.AddCommand(
		newRoutineAddCmd(app),
		newRoutineListCmd(app),
		newRoutineToggleCmd(app),
		newRoutineRemoveCmd(app),
	)

	return cmd
}

func newRoutineAddCmd(app *App) *cobra.Command {
	var notes, date string

	cmd := &cobra.Command{
		Use:   "add <activity>",
		Short: "Add an activity to the routine",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Routine.Add(context.Background(), app.UserID, strings.Join(args, " "), date, notes)
			if err != nil {
				return err
			}
			cmd.Printf("Added %q for %s (%s)\n", entry.Activity, entry.EntryDate, entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")
	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD, default today)")

	return cmd
}

func newRoutineListCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the routine for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().UTC().Format("2006-01-02")
			}
			entries, err := app.Routine.ListForDate(context.Background(), app.UserID, date)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println(formatter.Dim("Nothing planned for " + date + "."))
				return nil
			}

			for _, e := range entries {
				check := "[ ]"
				if e.Completed {
					check = "[✓]"
				}
				line := check + " " + e.Activity + "  " + formatter.Dim(e.ID)
				if e.Notes != "" {
					line += "  " + formatter.Dim(e.Notes)
				}
				cmd.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD, default today)")

	return cmd
}

func newRoutineToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip an activity between done and not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Routine.Toggle(context.Background(), app.UserID, args[0])
			if err != nil {
				return err
			}
			if entry.Completed {
				cmd.Printf("Done: %s\n", entry.Activity)
			} else {
				cmd.Printf("Not done: %s\n", entry.Activity)
			}
			return nil
		},
	}
}

func newRoutineRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an activity from the routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Routine.Remove(context.Background(), app.UserID, args[0]); err != nil {
				return err
			}
			cmd.Println("Removed.")
			return nil
		},
	}
}
