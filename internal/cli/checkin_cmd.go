package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/mood"
)

func newCheckinCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Log and review mood check-ins",
	}

	cmd.AddCommand(
		newCheckinLogCmd(app),
		newCheckinListCmd(app),
		newCheckinStreakCmd(app),
	)

	return cmd
}

func newCheckinLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log <mood>",
		Short: "Log how you're feeling (very-sad, sad, neutral, happy, very-happy)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := domain.Mood(args[0])
			if !m.Valid() {
				return fmt.Errorf("unknown mood %q (expected one of: very-sad, sad, neutral, happy, very-happy)", args[0])
			}

			checkin, err := app.CheckIns.Log(context.Background(), app.UserID, m)
			if err != nil {
				return err
			}

			cmd.Printf("%s %s\n", mood.EmojiFor(checkin.Mood), mood.MessageFor(checkin.Mood))
			return nil
		},
	}
}

func newCheckinListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent check-ins",
		RunE: func(cmd *cobra.Command, args []string) error {
			checkins, err := app.CheckIns.ListRecent(context.Background(), app.UserID, limit)
			if err != nil {
				return err
			}
			if len(checkins) == 0 {
				cmd.Println(formatter.Dim("No check-ins yet."))
				return nil
			}

			rows := make([][]string, 0, len(checkins))
			for _, c := range checkins {
				rows = append(rows, []string{
					formatter.HumanTimestamp(c.CreatedAt),
					mood.EmojiFor(c.Mood) + " " + mood.LabelFor(c.Mood),
				})
			}
			cmd.Print(formatter.RenderTable([]string{"WHEN", "MOOD"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 14, "Maximum number of check-ins to show")

	return cmd
}

func newCheckinStreakCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the current check-in streak and badge",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, badge, err := app.CheckIns.Streak(context.Background(), app.UserID, time.Now())
			if err != nil {
				return err
			}
			cmd.Println(formatter.FormatStreakBadge(days, badge))
			return nil
		},
	}
}
