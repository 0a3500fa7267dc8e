package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/mood"
)

// activitiesView lists the activity recommendations for the mood picked
// on the home screen. Selecting an activity routes to its session view.
type activitiesView struct {
	state      *SharedState
	activities []mood.Activity
	cursor     int
}

func newActivitiesView(state *SharedState) *activitiesView {
	return &activitiesView{
		state:      state,
		activities: mood.ActivitiesFor(state.SelectedMood),
	}
}

func (v *activitiesView) ID() ViewID    { return ViewActivities }
func (v *activitiesView) Title() string { return "Activities" }

func (v *activitiesView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
	}
}

func (v *activitiesView) Init() tea.Cmd { return nil }

func (v *activitiesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.activities)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(v.activities) {
			return v, v.open(v.activities[v.cursor])
		}
	}
	return v, nil
}

// open routes an activity to its session view. Activities without a
// session view stay on this screen.
func (v *activitiesView) open(a mood.Activity) tea.Cmd {
	switch a.Action {
	case mood.ActionBreathing:
		return pushView(newBreathingView(v.state))
	case mood.ActionJournaling:
		return pushView(newJournalView(v.state))
	case mood.ActionGoal:
		return pushView(newGoalTimerView(v.state))
	case mood.ActionSupport:
		return pushView(newChatView(v.state))
	case mood.ActionSharing:
		return pushView(newPostcardsView(v.state))
	case mood.ActionRoutine:
		return pushView(newRoutineView(v.state))
	case mood.ActionChallenge:
		return pushView(newChallengeView(v.state))
	case mood.ActionPlaylist:
		return pushView(newPlaylistView(v.state))
	default:
		return nil
	}
}

func (v *activitiesView) View() string {
	var b strings.Builder
	m := v.state.SelectedMood

	b.WriteString("\n")
	b.WriteString("  " + formatter.MoodPill(mood.EmojiFor(m), mood.LabelFor(m), m) + "\n")
	b.WriteString("  " + formatter.Dim(mood.MessageFor(m)) + "\n\n")

	for i, a := range v.activities {
		marker := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
			titleStyle = formatter.StyleBold
		}
		b.WriteString("  " + marker + titleStyle.Render(a.Title))
		b.WriteString("  " + formatter.Dim(a.Duration) + "\n")
		b.WriteString("      " + formatter.Dim(a.Description) + "\n")
	}

	if len(v.activities) == 0 {
		b.WriteString("  " + formatter.Dim("No suggestions for this mood.") + "\n")
	}

	return b.String()
}
