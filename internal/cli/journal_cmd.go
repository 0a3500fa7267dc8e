package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/mood"
)

func newJournalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Write and review journal entries",
	}

	cmd.AddCommand(
		newJournalWriteCmd(app),
		newJournalListCmd(app),
		newJournalPromptsCmd(app),
	)

	return cmd
}

func newJournalWriteCmd(app *App) *cobra.Command {
	var moodFlag string

	cmd := &cobra.Command{
		Use:   "write <content>",
		Short: "Save a journal entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := domain.Mood(moodFlag)
			if !m.Valid() {
				return fmt.Errorf("unknown mood %q", moodFlag)
			}

			entry, err := app.Journal.Save(context.Background(), app.UserID, m, strings.Join(args, " "))
			if err != nil {
				return err
			}

			cmd.Printf("Saved. %d words captured.\n", entry.WordCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&moodFlag, "mood", "neutral", "Mood to attach to the entry")

	return cmd
}

func newJournalListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Journal.ListRecent(context.Background(), app.UserID, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println(formatter.Dim("No entries yet."))
				return nil
			}

			for _, e := range entries {
				cmd.Printf("%s %s  %s\n", mood.EmojiFor(e.Mood),
					formatter.Dim(fmt.Sprintf("%s · %d words", formatter.HumanTimestamp(e.CreatedAt), e.WordCount)),
					formatter.Truncate(e.Content, 60))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of entries to show")

	return cmd
}

func newJournalPromptsCmd(app *App) *cobra.Command {
	var moodFlag string

	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Show writing prompts for a mood",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := domain.Mood(moodFlag)
			if !m.Valid() {
				return fmt.Errorf("unknown mood %q", moodFlag)
			}

			for _, p := range mood.JournalPromptsFor(m) {
				cmd.Println("• " + p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&moodFlag, "mood", "neutral", "Mood to fetch prompts for")

	return cmd
}
