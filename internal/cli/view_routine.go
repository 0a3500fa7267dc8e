package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/domain"
)

// routineLoadedMsg carries today's routine entries.
type routineLoadedMsg struct {
	entries []*domain.RoutineEntry
	err     error
}

// routineMutatedMsg signals a toggle or delete finished.
type routineMutatedMsg struct {
	err error
}

// routineView manages today's routine checklist.
type routineView struct {
	state   *SharedState
	entries []*domain.RoutineEntry
	cursor  int
	loading bool
	err     error
}

func newRoutineView(state *SharedState) *routineView {
	return &routineView{state: state, loading: true}
}

func (v *routineView) ID() ViewID    { return ViewRoutine }
func (v *routineView) Title() string { return "Routine" }

func (v *routineView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
	}
}

func (v *routineView) Init() tea.Cmd {
	return v.loadData()
}

// ── data loading ─────────────────────────────────────────────────────────────

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func (v *routineView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		entries, err := app.Routine.ListForDate(context.Background(), app.UserID, today())
		return routineLoadedMsg{entries: entries, err: err}
	}
}

func (v *routineView) toggleSelected() tea.Cmd {
	if v.cursor >= len(v.entries) {
		return nil
	}
	id := v.entries[v.cursor].ID
	app := v.state.App
	return func() tea.Msg {
		_, err := app.Routine.Toggle(context.Background(), app.UserID, id)
		return routineMutatedMsg{err: err}
	}
}

func (v *routineView) removeSelected() tea.Cmd {
	if v.cursor >= len(v.entries) {
		return nil
	}
	id := v.entries[v.cursor].ID
	app := v.state.App
	return func() tea.Msg {
		err := app.Routine.Remove(context.Background(), app.UserID, id)
		return routineMutatedMsg{err: err}
	}
}

func (v *routineView) startAddWizard() tea.Cmd {
	var activity, notes string
	app := v.state.App
	form := routineForm(&activity, &notes)
	return pushView(newWizardView(v.state, "Add Activity", form, func() tea.Cmd {
		return func() tea.Msg {
			_, err := app.Routine.Add(context.Background(), app.UserID, activity, today(), notes)
			return routineMutatedMsg{err: err}
		}
	}))
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *routineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case routineLoadedMsg:
		v.loading = false
		v.entries = msg.entries
		v.err = msg.err
		if v.cursor >= len(v.entries) && len(v.entries) > 0 {
			v.cursor = len(v.entries) - 1
		}
		return v, nil

	case routineMutatedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		return v, v.loadData()

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.entries)-1 {
				v.cursor++
			}
		case "a":
			return v, v.startAddWizard()
		case " ", "enter":
			return v, v.toggleSelected()
		case "x":
			return v, v.removeSelected()
		}
	}

	return v, nil
}

// ── render ───────────────────────────────────────────────────────────────────

func (v *routineView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.Header("Today's Routine") + "\n\n")

	switch {
	case v.loading:
		b.WriteString("  " + formatter.Dim("Loading...") + "\n")
	case v.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	case len(v.entries) == 0:
		b.WriteString("  " + formatter.Dim("Nothing planned yet. Press a to add an activity.") + "\n")
	default:
		done := 0
		for i, e := range v.entries {
			check := formatter.Dim("[ ]")
			text := formatter.StyleFg.Render(e.Activity)
			if e.Completed {
				check = formatter.StyleGreen.Render("[✓]")
				text = formatter.Dim(e.Activity)
				done++
			}
			marker := "  "
			if i == v.cursor {
				marker = formatter.StyleHeader.Render("▸ ")
			}
			b.WriteString("  " + marker + check + " " + text)
			if e.Notes != "" {
				b.WriteString("  " + formatter.Dim(e.Notes))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n  " + formatter.Dim(progressLabel(done, len(v.entries))) + "\n")
	}

	return b.String()
}

func progressLabel(done, total int) string {
	if total == 0 {
		return ""
	}
	if done == total {
		return "All done. Be proud of yourself today."
	}
	return fmt.Sprintf("%d of %d complete", done, total)
}
