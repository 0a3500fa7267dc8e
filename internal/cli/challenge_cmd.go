package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/service"
)

func newChallengeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "See and complete the daily challenge",
	}

	cmd.AddCommand(
		newChallengeTodayCmd(app),
		newChallengeCompleteCmd(app),
		newChallengeHistoryCmd(app),
	)

	return cmd
}

func newChallengeTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			c := app.Challenges.Today(now)

			done, err := app.Challenges.CompletedToday(context.Background(), app.UserID, now)
			if err != nil {
				return err
			}

			cmd.Println(formatter.Bold(c.Title))
			cmd.Println(c.Description)
			cmd.Println(formatter.Dim(c.Category + " · " + string(c.Difficulty)))
			if done {
				cmd.Println(formatter.StyleGreen.Render("✓ Completed today"))
			}
			return nil
		},
	}
}

func newChallengeCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Mark today's challenge as done",
		RunE: func(cmd *cobra.Command, args []string) error {
			completion, err := app.Challenges.Complete(context.Background(), app.UserID, time.Now())
			if errors.Is(err, service.ErrAlreadyCompleted) {
				cmd.Println(formatter.Dim("Already completed today. Come back tomorrow."))
				return nil
			}
			if err != nil {
				return err
			}
			cmd.Printf("%s %s\n", formatter.StyleGreen.Render("✓"), completion.Title)
			return nil
		},
	}
}

func newChallengeHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show completed challenges",
		RunE: func(cmd *cobra.Command, args []string) error {
			completions, err := app.Challenges.History(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			if len(completions) == 0 {
				cmd.Println(formatter.Dim("No challenges completed yet."))
				return nil
			}

			rows := make([][]string, 0, len(completions))
			for _, c := range completions {
				rows = append(rows, []string{c.CompletionDate, c.Title, c.Category})
			}
			cmd.Print(formatter.RenderTable([]string{"DATE", "CHALLENGE", "CATEGORY"}, rows))
			return nil
		},
	}
}
