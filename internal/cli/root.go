package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/solace/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	CheckIns   service.CheckInService
	Chat       service.ChatService
	Journal    service.JournalService
	Routine    service.RoutineService
	Challenges service.ChallengeService
	Shares     service.MoodShareService
	Profile    service.ProfileService
	AppState   service.AppStateService

	// UserID scopes every persisted row to the single local profile.
	UserID string

	// IsInteractive reports whether stdin is a terminal. May be nil in tests.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "solace" command and registers all
// subcommands against the provided App. Running it bare starts the TUI
// when attached to a terminal.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "solace",
		Short: "A gentle self-care companion for your terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newCheckinCmd(app),
		newChatCmd(app),
		newJournalCmd(app),
		newRoutineCmd(app),
		newChallengeCmd(app),
		newShareCmd(app),
		newInsightCmd(app),
		newProfileCmd(app),
	)

	return root
}

// runTUI starts the full-screen bubbletea program.
func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
