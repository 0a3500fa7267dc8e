package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/solace/internal/cli/formatter"
)

func newShareCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Create and browse mood postcards",
	}

	cmd.AddCommand(
		newShareNewCmd(app),
		newShareListCmd(app),
	)

	return cmd
}

func newShareNewCmd(app *App) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "new <message>",
		Short: "Save a new mood postcard",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			share, err := app.Shares.Share(context.Background(), app.UserID, strings.Join(args, " "), style)
			if err != nil {
				return err
			}
			cmd.Print(formatter.RenderPostcard(share.Message, share.BackgroundStyle, share.CreatedAt) + "\n")
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "sunset", "Background style (sunset, ocean, citrus, twilight, meadow)")

	return cmd
}

func newShareListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show saved postcards, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			shares, err := app.Shares.ListRecent(context.Background(), app.UserID, limit)
			if err != nil {
				return err
			}
			if len(shares) == 0 {
				cmd.Println(formatter.Dim("No postcards yet."))
				return nil
			}

			for _, s := range shares {
				cmd.Print(formatter.RenderPostcard(s.Message, s.BackgroundStyle, s.CreatedAt) + "\n\n")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of postcards to show")

	return cmd
}
