package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/solace/internal/cli/formatter"
)

// goalPresets are the selectable focus durations in minutes.
var goalPresets = []int{25, 15, 5}

// goalTickMsg advances the countdown once a second.
type goalTickMsg time.Time

// goalTimerView runs a single focus timer for one small goal. Nothing is
// persisted; the timer only exists while the view is on the stack.
type goalTimerView struct {
	state     *SharedState
	cursor    int
	remaining int
	running   bool
	done      bool
}

func newGoalTimerView(state *SharedState) *goalTimerView {
	return &goalTimerView{state: state}
}

func (v *goalTimerView) ID() ViewID    { return ViewGoalTimer }
func (v *goalTimerView) Title() string { return "Focus Timer" }

func (v *goalTimerView) ShortHelp() []key.Binding {
	if v.running || v.done {
		return []key.Binding{
			key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "pause/resume")),
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "duration")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
	}
}

func (v *goalTimerView) Init() tea.Cmd { return nil }

func goalTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return goalTickMsg(t)
	})
}

// started reports whether a countdown has begun, paused or not.
func (v *goalTimerView) started() bool { return v.remaining > 0 || v.done }

func (v *goalTimerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case goalTickMsg:
		if !v.running {
			return v, nil
		}
		v.remaining--
		if v.remaining <= 0 {
			v.remaining = 0
			v.running = false
			v.done = true
			return v, nil
		}
		return v, goalTick()

	case tea.KeyMsg:
		if !v.started() {
			switch msg.String() {
			case "up", "k":
				if v.cursor > 0 {
					v.cursor--
				}
			case "down", "j":
				if v.cursor < len(goalPresets)-1 {
					v.cursor++
				}
			case "enter", " ":
				v.remaining = goalPresets[v.cursor] * 60
				v.running = true
				return v, goalTick()
			}
			return v, nil
		}

		switch msg.String() {
		case " ":
			if v.done {
				return v, nil
			}
			v.running = !v.running
			if v.running {
				return v, goalTick()
			}
		case "r":
			v.remaining = 0
			v.running = false
			v.done = false
		}
	}

	return v, nil
}

func (v *goalTimerView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.Header("Focus Timer") + "\n\n")

	if !v.started() {
		b.WriteString("  " + formatter.Dim("Pick one small goal and a block of time to give it.") + "\n\n")
		for i, minutes := range goalPresets {
			prefix := "  "
			line := fmt.Sprintf("%d minutes", minutes)
			if i == v.cursor {
				prefix = formatter.StyleGreen.Render("> ")
				line = formatter.Bold(line)
			}
			b.WriteString("  " + prefix + line + "\n")
		}
		return b.String()
	}

	if v.done {
		b.WriteString("  " + formatter.StyleGreen.Bold(true).Render("Time's up!") + "\n\n")
		b.WriteString("  " + formatter.Dim("Well done for showing up. Press r to run another block.") + "\n")
		return b.String()
	}

	b.WriteString("  " + formatter.Bold(fmt.Sprintf("%02d:%02d", v.remaining/60, v.remaining%60)) + "\n\n")
	if !v.running {
		b.WriteString("  " + formatter.Dim("Paused. Press space to resume.") + "\n")
	} else {
		b.WriteString("  " + formatter.Dim("Stay with it. One thing at a time.") + "\n")
	}

	return b.String()
}
