package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/domain"
)

func newChatCmd(app *App) *cobra.Command {
	var moodFlag string

	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Send one message to the companion and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			result, err := app.Chat.Send(context.Background(), app.UserID, text, domain.Mood(moodFlag))
			if err != nil {
				return err
			}

			if result.Crisis {
				cmd.Println(formatter.StyleRed.Render(result.Message.Message))
				return nil
			}
			cmd.Println(result.Message.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&moodFlag, "mood", "", "Current mood for a more attuned reply")

	cmd.AddCommand(newChatHistoryCmd(app))

	return cmd
}

func newChatHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the recent conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := app.Chat.History(context.Background(), app.UserID, limit)
			if err != nil {
				return err
			}
			if len(messages) == 0 {
				cmd.Println(formatter.Dim("No conversation yet."))
				return nil
			}

			for _, m := range messages {
				prefix := formatter.StyleGreen.Render("Solace: ")
				if m.Sender == domain.SenderUser {
					prefix = formatter.Dim("You: ")
				}
				cmd.Println(prefix + m.Message)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of messages to show")

	return cmd
}
