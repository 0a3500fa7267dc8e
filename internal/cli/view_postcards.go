package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/domain"
)

// postcardsLoadedMsg carries the saved postcards, newest first.
type postcardsLoadedMsg struct {
	shares []*domain.MoodShare
	err    error
}

// postcardSavedMsg signals a new postcard was persisted.
type postcardSavedMsg struct {
	err error
}

// postcardsView is the gallery of saved mood postcards.
type postcardsView struct {
	state   *SharedState
	shares  []*domain.MoodShare
	cursor  int
	loading bool
	err     error
}

func newPostcardsView(state *SharedState) *postcardsView {
	return &postcardsView{state: state, loading: true}
}

func (v *postcardsView) ID() ViewID    { return ViewPostcards }
func (v *postcardsView) Title() string { return "Postcards" }

func (v *postcardsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new postcard")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "browse")),
	}
}

func (v *postcardsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *postcardsView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		shares, err := app.Shares.ListRecent(context.Background(), app.UserID, 20)
		return postcardsLoadedMsg{shares: shares, err: err}
	}
}

func (v *postcardsView) startNewWizard() tea.Cmd {
	var message string
	style := domain.BackgroundStyles[0]
	app := v.state.App
	form := postcardForm(&message, &style)
	return pushView(newWizardView(v.state, "New Postcard", form, func() tea.Cmd {
		return func() tea.Msg {
			_, err := app.Shares.Share(context.Background(), app.UserID, message, style)
			return postcardSavedMsg{err: err}
		}
	}))
}

func (v *postcardsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case postcardsLoadedMsg:
		v.loading = false
		v.shares = msg.shares
		v.err = msg.err
		if v.cursor >= len(v.shares) && len(v.shares) > 0 {
			v.cursor = len(v.shares) - 1
		}
		return v, nil

	case postcardSavedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.cursor = 0
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
			if v.cursor < len(v.shares)-1 {
				v.cursor++
			}
		case "n":
			return v, v.startNewWizard()
		}
	}

	return v, nil
}

func (v *postcardsView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.Header("Mood Postcards") + "\n\n")

	switch {
	case v.loading:
		b.WriteString("  " + formatter.Dim("Loading...") + "\n")
	case v.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	case len(v.shares) == 0:
		b.WriteString("  " + formatter.Dim("No postcards yet. Press n to capture a feeling.") + "\n")
	default:
		s := v.shares[v.cursor]
		b.WriteString(formatter.RenderPostcard(s.Message, s.BackgroundStyle, s.CreatedAt) + "\n\n")
		b.WriteString("  " + formatter.Dim(browsePosition(v.cursor, len(v.shares))) + "\n")
	}

	return b.String()
}

func browsePosition(cursor, total int) string {
	return fmt.Sprintf("%d of %d", cursor+1, total)
}
