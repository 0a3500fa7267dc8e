package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/mood"
)

// journalLoadedMsg carries recent journal entries.
type journalLoadedMsg struct {
	entries []*domain.JournalEntry
	err     error
}

// journalView lists recent entries and opens the write-entry wizard.
type journalView struct {
	state   *SharedState
	entries []*domain.JournalEntry
	loading bool
	err     error
}

func newJournalView(state *SharedState) *journalView {
	return &journalView{state: state, loading: true}
}

func (v *journalView) ID() ViewID    { return ViewJournal }
func (v *journalView) Title() string { return "Journal" }

func (v *journalView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new entry")),
	}
}

func (v *journalView) Init() tea.Cmd {
	return v.loadData()
}

func (v *journalView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		entries, err := app.Journal.ListRecent(context.Background(), app.UserID, 10)
		return journalLoadedMsg{entries: entries, err: err}
	}
}

func (v *journalView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case journalLoadedMsg:
		v.loading = false
		v.entries = msg.entries
		v.err = msg.err
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		if msg.String() == "n" {
			return v, v.startEntryWizard()
		}
	}

	return v, nil
}

// startEntryWizard opens a write form seeded with one of the prompts
// for the current mood.
func (v *journalView) startEntryWizard() tea.Cmd {
	m := v.state.SelectedMood
	if !m.Valid() {
		m = domain.MoodNeutral
	}

	prompts := mood.JournalPromptsFor(m)
	prompt := ""
	if len(prompts) > 0 {
		prompt = prompts[rand.Intn(len(prompts))]
	}

	var content string
	app := v.state.App
	form := journalForm(m, prompt, &content)
	return pushView(newWizardView(v.state, "New Entry", form, func() tea.Cmd {
		return func() tea.Msg {
			_, err := app.Journal.Save(context.Background(), app.UserID, m, content)
			if err != nil {
				return journalLoadedMsg{err: err}
			}
			return nil
		}
	}))
}

func (v *journalView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.Header("Journal") + "\n\n")

	switch {
	case v.loading:
		b.WriteString("  " + formatter.Dim("Loading...") + "\n")
	case v.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	case len(v.entries) == 0:
		b.WriteString("  " + formatter.Dim("No entries yet. Press n to write your first one.") + "\n")
	default:
		for _, e := range v.entries {
			pill := formatter.MoodPill(mood.EmojiFor(e.Mood), mood.LabelFor(e.Mood), e.Mood)
			meta := formatter.Dim(fmt.Sprintf("%s · %d words", formatter.HumanTimestamp(e.CreatedAt), e.WordCount))
			b.WriteString("  " + pill + "  " + meta + "\n")
			b.WriteString("    " + formatter.Truncate(e.Content, 70) + "\n\n")
		}
	}

	return b.String()
}
