package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/solace/internal/mood"
)

func newInsightCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "insight <feeling>",
		Short: "Get a gentle reflection on a feeling in your own words",
		Long: `Describe how you feel in a single word (happy, sad, anxious,
stressed, excited, tired, angry, grateful) and get a short reflection
back. An optional note is echoed into the reflection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := strings.ToLower(strings.TrimSpace(args[0]))
			cmd.Println(mood.InsightFor(label, strings.TrimSpace(note)))
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Optional note about what's behind the feeling")

	return cmd
}
