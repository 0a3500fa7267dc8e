package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/teatest"
)

// newDriver boots the full TUI against an in-memory DB.
func newDriver(t *testing.T) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newAppModel(testApp(t)), teatest.WithSize(80, 24))
	d.DrainInit()
	return d
}

func appOf(d *teatest.Driver) *appModel {
	m := d.Model.(appModel)
	return &m
}

func TestTUI_CheckInFlowReachesActivities(t *testing.T) {
	d := newDriver(t)

	assert.Contains(t, d.View(), "How are you feeling")

	// One step right of neutral is happy.
	d.SendKey(tea.KeyMsg{Type: tea.KeyRight})
	d.PressEnter()

	m := appOf(d)
	require.Greater(t, len(m.viewStack), 1)
	assert.Equal(t, ViewActivities, m.activeView().ID())
	assert.Equal(t, domain.MoodHappy, m.state.SelectedMood)
	assert.Contains(t, d.View(), "Activities")
}

func TestTUI_EscReturnsHome(t *testing.T) {
	d := newDriver(t)

	d.PressKey('d') // daily challenge
	require.Equal(t, ViewChallenge, appOf(d).activeView().ID())

	d.PressEsc()
	assert.Equal(t, ViewHome, appOf(d).activeView().ID())
}

func TestTUI_ChatRoundTrip(t *testing.T) {
	d := newDriver(t)

	d.PressKey('c')
	require.Equal(t, ViewChat, appOf(d).activeView().ID())

	d.Type("hello")
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "You: hello")
	assert.Contains(t, view, "Solace: ")
}

func TestTUI_ChallengeCompleteShowsConfirmation(t *testing.T) {
	d := newDriver(t)

	d.PressKey('d')
	require.Equal(t, ViewChallenge, appOf(d).activeView().ID())
	assert.Contains(t, d.View(), "DAILY CHALLENGE")

	d.PressEnter()
	assert.Contains(t, d.View(), "Completed today")
}

func TestTUI_QuitFromHome(t *testing.T) {
	d := newDriver(t)

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestTUI_NavigationPersistsScreen(t *testing.T) {
	app := testApp(t)
	d := teatest.New(t, newAppModel(app), teatest.WithSize(80, 24))
	d.DrainInit()

	d.PressKey('j')
	require.Equal(t, ViewJournal, appOf(d).activeView().ID())

	state, err := app.AppState.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "journal", state.Screen)
}

func TestTUI_LaunchResumesSavedSession(t *testing.T) {
	app := testApp(t)
	err := app.AppState.Persist(context.Background(), "journal", domain.MoodHappy)
	require.NoError(t, err)

	d := teatest.New(t, newAppModel(app), teatest.WithSize(80, 24))
	d.DrainInit()

	m := appOf(d)
	assert.Equal(t, ViewJournal, m.activeView().ID())
	assert.Equal(t, domain.MoodHappy, m.state.SelectedMood)
}

func TestTUI_FreshSessionStartsAtHome(t *testing.T) {
	d := newDriver(t)
	assert.Equal(t, ViewHome, appOf(d).activeView().ID())
}
