package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/mood"
)

// solaceHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func solaceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequired rejects blank input.
func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

// journalForm returns a themed form collecting a journal entry for a mood.
// One of the mood's prompts is shown as the field description.
func journalForm(m domain.Mood, prompt string, content *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(fmt.Sprintf("Journal %s", mood.EmojiFor(m))).
				Description(prompt).
				Placeholder("Write freely...").
				Value(content).
				Validate(validateRequired),
		),
	).WithTheme(solaceHuhTheme()).WithShowHelp(false)
}

// routineForm returns a themed form collecting a routine activity with
// optional notes.
func routineForm(activity, notes *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity").
				Placeholder("Morning walk").
				Value(activity).
				Validate(validateRequired),
			huh.NewInput().
				Title("Notes (optional)").
				Placeholder("10 minutes around the block").
				Value(notes),
		),
	).WithTheme(solaceHuhTheme()).WithShowHelp(false)
}

// postcardForm returns a themed form collecting a postcard message and
// background style.
func postcardForm(message, style *string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(domain.BackgroundStyles))
	for _, s := range domain.BackgroundStyles {
		opts = append(opts, huh.NewOption(s, s))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Message").
				Placeholder("A few kind words").
				Value(message).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Background").
				Options(opts...).
				Value(style),
		),
	).WithTheme(solaceHuhTheme()).WithShowHelp(false)
}

// nicknameForm returns a themed form collecting the profile nickname.
func nicknameForm(nickname *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What should I call you?").
				Placeholder("friend").
				Value(nickname).
				Validate(validateRequired),
		),
	).WithTheme(solaceHuhTheme()).WithShowHelp(false)
}
