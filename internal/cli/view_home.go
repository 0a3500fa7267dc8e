package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/mood"
	"github.com/alexanderramin/solace/internal/streak"
)

// ── messages ─────────────────────────────────────────────────────────────────

// homeLoadedMsg signals that the streak and profile have been loaded.
type homeLoadedMsg struct {
	nickname string
	days     int
	badge    streak.Badge
	err      error
}

// checkinLoggedMsg signals that the selected mood was persisted.
type checkinLoggedMsg struct {
	mood domain.Mood
	err  error
}

// ── view ─────────────────────────────────────────────────────────────────────

// homeView is the first screen: a five-mood picker with the streak badge
// and shortcuts into the other features.
type homeView struct {
	state   *SharedState
	cursor  int
	loading bool
	days    int
	badge   streak.Badge
	err     error
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state, loading: true, cursor: 2} // start on neutral
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "check in")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chat")),
		key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "journal")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "routine")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "challenge")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "postcards")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
	}
}

func (v *homeView) Init() tea.Cmd {
	return v.loadData()
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *homeView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()

		nickname := ""
		if profile, err := app.Profile.Get(ctx); err == nil {
			nickname = profile.Nickname
		}

		days, badge, err := app.CheckIns.Streak(ctx, app.UserID, time.Now())
		if err != nil {
			return homeLoadedMsg{nickname: nickname, err: err}
		}
		return homeLoadedMsg{nickname: nickname, days: days, badge: badge}
	}
}

func (v *homeView) logCheckIn(m domain.Mood) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := app.CheckIns.Log(ctx, app.UserID, m); err != nil {
			return checkinLoggedMsg{mood: m, err: err}
		}
		return checkinLoggedMsg{mood: m}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case homeLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.days = msg.days
		v.badge = msg.badge
		v.state.Nickname = msg.nickname
		v.state.StreakDays = msg.days
		return v, nil

	case checkinLoggedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.state.SelectedMood = msg.mood
		return v, tea.Batch(
			pushView(newActivitiesView(v.state)),
			v.loadData(), // streak may have grown
		)

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "left":
			if v.cursor > 0 {
				v.cursor--
			}
		case "right":
			if v.cursor < len(domain.Moods)-1 {
				v.cursor++
			}
		case "enter":
			return v, v.logCheckIn(domain.Moods[v.cursor])
		case "c":
			return v, pushView(newChatView(v.state))
		case "j":
			return v, pushView(newJournalView(v.state))
		case "r":
			return v, pushView(newRoutineView(v.state))
		case "d":
			return v, pushView(newChallengeView(v.state))
		case "m":
			return v, pushView(newPlaylistView(v.state))
		case "p":
			return v, pushView(newPostcardsView(v.state))
		case "h":
			return v, pushView(newHistoryView(v.state))
		case "n":
			return v, v.startNicknameWizard()
		}
	}

	return v, nil
}

func (v *homeView) startNicknameWizard() tea.Cmd {
	nickname := v.state.Nickname
	app := v.state.App
	form := nicknameForm(&nickname)
	return pushView(newWizardView(v.state, "Nickname", form, func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			if _, err := app.Profile.SetNickname(ctx, nickname); err != nil {
				return homeLoadedMsg{err: err}
			}
			return nil
		}
	}))
}

// ── render ───────────────────────────────────────────────────────────────────

func (v *homeView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	greeting := "How are you feeling right now?"
	if v.state.Nickname != "" {
		greeting = "How are you feeling right now, " + v.state.Nickname + "?"
	}
	b.WriteString("  " + formatter.Bold(greeting) + "\n\n")

	// Mood picker row
	var cells []string
	for i, m := range domain.Moods {
		cell := mood.EmojiFor(m) + " " + mood.LabelFor(m)
		if i == v.cursor {
			cell = formatter.MoodStyle(m).Bold(true).Render("▸ " + cell)
		} else {
			cell = formatter.Dim("  " + cell)
		}
		cells = append(cells, cell)
	}
	b.WriteString("  " + strings.Join(cells, "   ") + "\n\n")

	if v.loading {
		b.WriteString("  " + formatter.Dim("Loading...") + "\n")
	} else if v.err != nil {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	} else {
		b.WriteString("  " + formatter.FormatStreakBadge(v.days, v.badge) + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + formatter.Dim("m: playlists  n: nickname") + "\n")

	return b.String()
}
