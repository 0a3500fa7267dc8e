package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/solace/internal/cli/formatter"
	"github.com/alexanderramin/solace/internal/mood"
)

// playlistView lists the fixed uplifting playlists with their links.
type playlistView struct {
	state     *SharedState
	playlists []mood.Playlist
	cursor    int
}

func newPlaylistView(state *SharedState) *playlistView {
	return &playlistView{state: state, playlists: mood.Playlists()}
}

func (v *playlistView) ID() ViewID    { return ViewPlaylist }
func (v *playlistView) Title() string { return "Playlists" }

func (v *playlistView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
	}
}

func (v *playlistView) Init() tea.Cmd { return nil }

func (v *playlistView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if v.cursor < len(v.playlists)-1 {
			v.cursor++
		}
	}
	return v, nil
}

func (v *playlistView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.Header("Uplifting Playlists") + "\n\n")

	for i, p := range v.playlists {
		marker := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		b.WriteString("  " + marker + "🎵 " + nameStyle.Render(p.Name) + "\n")
		b.WriteString("      " + formatter.Dim(p.Description) + "\n")
		if i == v.cursor {
			b.WriteString("      " + formatter.StyleBlue.Render(p.URL) + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
