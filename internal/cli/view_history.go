package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/mood"
)

// historyLoadedMsg carries recent check-ins and journal entries.
type historyLoadedMsg struct {
	checkins []*domain.MoodCheckIn
	journals []*domain.JournalEntry
	err      error
}

// historyView shows the recent mood check-ins alongside journal activity.
type historyView struct {
	state    *SharedState
	checkins []*domain.MoodCheckIn
	journals []*domain.JournalEntry
	loading  bool
	err      error
}

func newHistoryView(state *SharedState) *historyView {
	return &historyView{state: state, loading: true}
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "History" }

func (v *historyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *historyView) Init() tea.Cmd {
	return v.loadData()
}

func (v *historyView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		checkins, err := app.CheckIns.ListRecent(ctx, app.UserID, 14)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		journals, err := app.Journal.ListRecent(ctx, app.UserID, 5)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		return historyLoadedMsg{checkins: checkins, journals: journals}
	}
}

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case historyLoadedMsg:
		v.loading = false
		v.checkins = msg.checkins
		v.journals = msg.journals
		v.err = msg.err
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *historyView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.Header("Mood History") + "\n\n")

	switch {
	case v.loading:
		b.WriteString("  " + formatter.Dim("Loading...") + "\n")
		return b.String()
	case v.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
		return b.String()
	}

	if len(v.checkins) == 0 {
		b.WriteString("  " + formatter.Dim("No check-ins yet.") + "\n")
	} else {
		rows := make([][]string, 0, len(v.checkins))
		for _, c := range v.checkins {
			rows = append(rows, []string{
				formatter.HumanTimestamp(c.CreatedAt),
				formatter.MoodPill(mood.EmojiFor(c.Mood), mood.LabelFor(c.Mood), c.Mood),
			})
		}
		b.WriteString(indent(formatter.RenderTable([]string{"WHEN", "MOOD"}, rows), "  "))
	}

	if len(v.journals) > 0 {
		b.WriteString("\n  " + formatter.Header("Recent Journaling") + "\n\n")
		for _, e := range v.journals {
			b.WriteString("  " + formatter.Dim(formatter.HumanTimestamp(e.CreatedAt)) + "  " +
				formatter.Truncate(e.Content, 60) + "\n")
		}
	}

	return b.String()
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
