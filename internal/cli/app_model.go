package cli

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/streak"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a stack of views with the home screen at the bottom.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}

	m := appModel{state: state}
	m.viewStack = []View{newHomeView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// stateRestoredMsg carries the previous session's persisted state.
type stateRestoredMsg struct {
	saved *domain.AppState
}

// restoreState loads the persisted session so the TUI can reopen where
// the user left off. Failures fall back to a fresh home screen.
func (m *appModel) restoreState() tea.Cmd {
	app := m.state.App
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		saved, err := app.AppState.Restore(ctx)
		if err != nil {
			return nil
		}
		return stateRestoredMsg{saved: saved}
	}
}

// persistState mirrors the current screen and mood to storage so the
// next session can resume. Failures are ignored; persistence is
// best-effort and must never interrupt navigation.
func (m *appModel) persistState() tea.Cmd {
	screen := ""
	if v := m.activeView(); v != nil {
		screen = screenName(v.ID())
	}
	mood := m.state.SelectedMood
	app := m.state.App
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = app.AppState.Persist(ctx, screen, mood)
		return nil
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	cmds = append(cmds, m.restoreState())
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case stateRestoredMsg:
		if msg.saved.SelectedMood != "" {
			m.state.SelectedMood = msg.saved.SelectedMood
		}
		// Reopen the saved screen only while the user is still on the
		// untouched home view.
		if len(m.viewStack) == 1 {
			if v := viewForScreen(m.state, msg.saved.Screen); v != nil {
				m.viewStack = append(m.viewStack, v)
				return m, v.Init()
			}
		}
		return m, nil

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, tea.Batch(msg.view.Init(), m.persistState())

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, m.persistState()

	case replaceViewMsg:
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, tea.Batch(msg.view.Init(), m.persistState())

	case refreshViewMsg:
		// Broadcast to ALL views in the stack so underlying views
		// reload data after mutations made in views above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, refreshViews(), m.persistState())

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// If the active view captures input (has its own text input), forward
	// directly so it receives all characters including 'q'.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		// Pop view stack (go back)
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, m.persistState()
		}
		return m, nil
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("solace")

	// Breadcrumb from view stack
	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb

	if m.state.Nickname != "" {
		header += "  " + formatter.Dim("hi, ") + formatter.StyleGreen.Render(m.state.Nickname)
	}
	if m.state.StreakDays > 0 {
		badge := streak.BadgeFor(m.state.StreakDays)
		header += "  " + badge.Icon + " " + formatter.Dim(badge.Text)
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	hints = append(hints, formatter.Dim("q: quit"))

	bar := strings.Join(hints, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// screenName maps a view to the token stored in the session state.
func screenName(id ViewID) string {
	switch id {
	case ViewHome:
		return "home"
	case ViewActivities:
		return "activities"
	case ViewBreathing:
		return "breathing"
	case ViewChat:
		return "chat"
	case ViewJournal:
		return "journal"
	case ViewRoutine:
		return "routine"
	case ViewChallenge:
		return "challenge"
	case ViewPlaylist:
		return "playlist"
	case ViewPostcards:
		return "postcards"
	case ViewHistory:
		return "history"
	case ViewGoalTimer:
		return "goal"
	default:
		return "home"
	}
}

// viewForScreen builds the view for a persisted screen token. Unknown
// tokens, "home", and mood-dependent screens with no saved mood all
// return nil, leaving the session on the home view.
func viewForScreen(state *SharedState, screen string) View {
	switch screen {
	case "activities":
		if !state.HasMood() {
			return nil
		}
		return newActivitiesView(state)
	case "breathing":
		return newBreathingView(state)
	case "chat":
		return newChatView(state)
	case "journal":
		return newJournalView(state)
	case "routine":
		return newRoutineView(state)
	case "challenge":
		return newChallengeView(state)
	case "playlist":
		return newPlaylistView(state)
	case "postcards":
		return newPostcardsView(state)
	case "history":
		return newHistoryView(state)
	case "goal":
		return newGoalTimerView(state)
	}
	return nil
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events (bypassing global keybindings like q/Esc).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	switch v.ID() {
	case ViewChat, ViewForm:
		return true
	}
	return false
}
