package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/repository"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileNicknameCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Profile.Get(context.Background())
			if errors.Is(err, repository.ErrNotFound) {
				cmd.Println(formatter.Dim("No profile yet. Set a nickname with: solace profile nickname <name>"))
				return nil
			}
			if err != nil {
				return err
			}

			cmd.Println(formatter.Bold(profile.Nickname))
			cmd.Println(formatter.Dim("since " + formatter.HumanDate(profile.CreatedAt)))
			return nil
		},
	}
}

func newProfileNicknameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "nickname <name>",
		Short: "Set the nickname used in greetings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Profile.SetNickname(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			cmd.Printf("Nice to meet you, %s.\n", profile.Nickname)
			return nil
		},
	}
}
