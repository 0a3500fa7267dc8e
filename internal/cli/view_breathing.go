package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/solace/internal/cli/formatter"
)

// breathPhase is one leg of the inhale-hold-exhale cycle. Every phase
// runs four seconds.
type breathPhase struct {
	name    string
	seconds int
	hint    string
}

var breathCycle = []breathPhase{
	{name: "Breathe in", seconds: 4, hint: "slowly through your nose"},
	{name: "Hold", seconds: 4, hint: "gently, without straining"},
	{name: "Breathe out", seconds: 4, hint: "fully through your mouth"},
}

// breathTickMsg advances the countdown once a second.
type breathTickMsg time.Time

// breathingView runs a guided breathing session.
type breathingView struct {
	state     *SharedState
	phase     int
	remaining int
	rounds    int
	running   bool
}

func newBreathingView(state *SharedState) *breathingView {
	return &breathingView{
		state:     state,
		remaining: breathCycle[0].seconds,
	}
}

func (v *breathingView) ID() ViewID    { return ViewBreathing }
func (v *breathingView) Title() string { return "Breathing" }

func (v *breathingView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "start/pause")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	}
}

func (v *breathingView) Init() tea.Cmd { return nil }

func breathTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return breathTickMsg(t)
	})
}

func (v *breathingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case breathTickMsg:
		if !v.running {
			return v, nil
		}
		v.remaining--
		if v.remaining <= 0 {
			v.phase = (v.phase + 1) % len(breathCycle)
			if v.phase == 0 {
				v.rounds++
			}
			v.remaining = breathCycle[v.phase].seconds
		}
		return v, breathTick()

	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			v.running = !v.running
			if v.running {
				return v, breathTick()
			}
		case "r":
			v.phase = 0
			v.remaining = breathCycle[0].seconds
			v.rounds = 0
			v.running = false
		}
	}

	return v, nil
}

func (v *breathingView) View() string {
	var b strings.Builder
	phase := breathCycle[v.phase]

	b.WriteString("\n")
	b.WriteString("  " + formatter.Header("Guided Breathing") + "\n\n")

	if !v.running && v.rounds == 0 && v.phase == 0 && v.remaining == breathCycle[0].seconds {
		b.WriteString("  " + formatter.Dim("Press space to begin. Follow the rhythm until you feel settled.") + "\n")
		return b.String()
	}

	phaseStyle := formatter.StyleGreen
	switch v.phase {
	case 1:
		phaseStyle = formatter.StyleYellow
	case 2:
		phaseStyle = formatter.StyleBlue
	}

	b.WriteString("  " + phaseStyle.Bold(true).Render(phase.name) + "  " + formatter.Dim(phase.hint) + "\n\n")

	// Countdown bar shrinks with the remaining seconds.
	bar := strings.Repeat("█", v.remaining*3)
	b.WriteString("  " + phaseStyle.Render(bar) + " " + formatter.Bold(fmt.Sprintf("%d", v.remaining)) + "\n\n")

	if v.rounds > 0 {
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("Rounds completed: %d", v.rounds)) + "\n")
	}
	if !v.running {
		b.WriteString("  " + formatter.Dim("Paused. Press space to resume.") + "\n")
	}

	return b.String()
}
