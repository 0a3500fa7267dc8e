package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/service"
)

// chatHistoryMsg carries the persisted conversation on view open.
type chatHistoryMsg struct {
	messages []*domain.ChatMessage
	err      error
}

// chatReplyMsg carries the companion's reply to a sent message.
type chatReplyMsg struct {
	result *service.ChatResult
	err    error
}

// chatView is the companion chat. Replies come from the support proxy
// when it is reachable and from the built-in responder otherwise.
type chatView struct {
	state   *SharedState
	input   textinput.Model
	lines   []string
	waiting bool
}

func newChatView(state *SharedState) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Placeholder = "Tell me what's on your mind..."

	return &chatView{state: state, input: ti}
}

func (v *chatView) ID() ViewID    { return ViewChat }
func (v *chatView) Title() string { return "Companion" }

func (v *chatView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *chatView) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, v.loadHistory())
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *chatView) loadHistory() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		messages, err := app.Chat.History(context.Background(), app.UserID, 20)
		return chatHistoryMsg{messages: messages, err: err}
	}
}

func (v *chatView) send(text string) tea.Cmd {
	app := v.state.App
	m := v.state.SelectedMood
	return func() tea.Msg {
		result, err := app.Chat.Send(context.Background(), app.UserID, text, m)
		return chatReplyMsg{result: result, err: err}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case chatHistoryMsg:
		if msg.err != nil {
			v.lines = append(v.lines, formatter.StyleRed.Render("Error: "+msg.err.Error()))
			return v, nil
		}
		v.lines = nil
		for _, m := range msg.messages {
			v.lines = append(v.lines, renderChatLine(m.Sender, m.Message, false))
		}
		if len(v.lines) == 0 {
			v.lines = append(v.lines, formatter.Dim("I'm here whenever you're ready."))
		}
		return v, nil

	case chatReplyMsg:
		v.waiting = false
		if msg.err != nil {
			v.lines = append(v.lines, formatter.StyleRed.Render("Error: "+msg.err.Error()))
			return v, nil
		}
		v.lines = append(v.lines, renderChatLine(domain.SenderAssistant, msg.result.Message.Message, msg.result.Crisis))
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, popView()
		}
		if msg.Type == tea.KeyEnter {
			text := strings.TrimSpace(v.input.Value())
			v.input.Reset()
			if text == "" || v.waiting {
				return v, nil
			}
			v.lines = append(v.lines, renderChatLine(domain.SenderUser, text, false))
			v.waiting = true
			return v, v.send(text)
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func renderChatLine(sender domain.Sender, content string, crisis bool) string {
	if sender == domain.SenderUser {
		return formatter.Dim("You: ") + content
	}
	if crisis {
		return formatter.StyleRed.Render(content)
	}
	return formatter.StyleGreen.Render("Solace: ") + content
}

// ── render ───────────────────────────────────────────────────────────────────

func (v *chatView) View() string {
	var b strings.Builder

	// Keep the tail that fits the content area.
	lines := v.lines
	if maxLines := v.state.ContentHeight() - 3; maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if v.waiting {
		b.WriteString(formatter.Dim("...") + "\n")
	}

	prompt := formatter.StylePurple.Render("you") + formatter.Dim("> ")
	b.WriteString("\n" + prompt + v.input.View())

	return b.String()
}
