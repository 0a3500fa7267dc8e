package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/service"
)

// challengeLoadedMsg carries today's challenge state and completion history.
type challengeLoadedMsg struct {
	challenge domain.Challenge
	doneToday bool
	history   []*domain.ChallengeCompletion
	err       error
}

// challengeCompletedMsg signals a completion attempt finished.
type challengeCompletedMsg struct {
	err error
}

// challengeView shows the daily challenge and records completions.
type challengeView struct {
	state     *SharedState
	challenge domain.Challenge
	doneToday bool
	history   []*domain.ChallengeCompletion
	loading   bool
	err       error
}

func newChallengeView(state *SharedState) *challengeView {
	return &challengeView{state: state, loading: true}
}

func (v *challengeView) ID() ViewID    { return ViewChallenge }
func (v *challengeView) Title() string { return "Challenge" }

func (v *challengeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "complete")),
	}
}

func (v *challengeView) Init() tea.Cmd {
	return v.loadData()
}

func (v *challengeView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		challenge := app.Challenges.Today(now)
		doneToday, err := app.Challenges.CompletedToday(ctx, app.UserID, now)
		if err != nil {
			return challengeLoadedMsg{err: err}
		}
		history, err := app.Challenges.History(ctx, app.UserID)
		if err != nil {
			return challengeLoadedMsg{err: err}
		}
		return challengeLoadedMsg{challenge: challenge, doneToday: doneToday, history: history}
	}
}

func (v *challengeView) complete() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		_, err := app.Challenges.Complete(context.Background(), app.UserID, time.Now())
		return challengeCompletedMsg{err: err}
	}
}

func (v *challengeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case challengeLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.challenge = msg.challenge
		v.doneToday = msg.doneToday
		v.history = msg.history
		return v, nil

	case challengeCompletedMsg:
		if msg.err != nil && !errors.Is(msg.err, service.ErrAlreadyCompleted) {
			v.err = msg.err
			return v, nil
		}
		return v, v.loadData()

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		if msg.String() == "enter" && !v.doneToday && !v.loading {
			return v, v.complete()
		}
	}

	return v, nil
}

func (v *challengeView) View() string {
	var b strings.Builder

	b.WriteString("\n")

	if v.loading {
		b.WriteString("  " + formatter.Dim("Loading...") + "\n")
		return b.String()
	}
	if v.err != nil {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
		return b.String()
	}

	body := formatter.Bold(v.challenge.Title) + "\n" +
		formatter.StyleFg.Render(v.challenge.Description) + "\n\n" +
		formatter.Dim(v.challenge.Category+" · "+string(v.challenge.Difficulty))
	b.WriteString(formatter.RenderBox("Daily Challenge", body) + "\n\n")

	if v.doneToday {
		b.WriteString("  " + formatter.StyleGreen.Render("✓ Completed today. See you tomorrow!") + "\n")
	} else {
		b.WriteString("  " + formatter.Dim("Press enter once you've done it.") + "\n")
	}

	if len(v.history) > 0 {
		b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%d challenges completed so far", len(v.history))) + "\n")
	}

	return b.String()
}
