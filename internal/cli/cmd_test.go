package cli

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/solace/internal/companion"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/repository"
	"github.com/alexanderramin/solace/internal/service"
	"github.com/alexanderramin/solace/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	comp := companion.NewService(nil, companion.NewResponder(rand.New(rand.NewSource(1))))

	return &App{
		CheckIns:   service.NewCheckInService(repository.NewSQLiteCheckInRepo(database)),
		Chat:       service.NewChatService(repository.NewSQLiteChatMessageRepo(database), comp, uow),
		Journal:    service.NewJournalService(repository.NewSQLiteJournalRepo(database)),
		Routine:    service.NewRoutineService(repository.NewSQLiteRoutineRepo(database)),
		Challenges: service.NewChallengeService(repository.NewSQLiteChallengeRepo(database)),
		Shares:     service.NewMoodShareService(repository.NewSQLiteMoodShareRepo(database)),
		Profile:    service.NewProfileService(repository.NewSQLiteUserProfileRepo(database)),
		AppState:   service.NewAppStateService(repository.NewSQLiteAppStateRepo(database)),
		UserID:     testutil.TestUserID,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- root command ---

func TestRootCmd_NonInteractive_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "solace")
}

// --- checkin ---

func TestCheckinLogAndList(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "checkin", "log", "happy")
	require.NoError(t, err)
	assert.Contains(t, output, "🙂")

	output, err = executeCmd(t, app, "checkin", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Happy")
}

func TestCheckinLogRejectsUnknownMood(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "checkin", "log", "ecstatic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mood")
}

func TestCheckinStreakAfterLog(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "checkin", "log", "neutral")
	require.NoError(t, err)

	output, err := executeCmd(t, app, "checkin", "streak")
	require.NoError(t, err)
	assert.Contains(t, output, "1 Day")
}

// --- chat ---

func TestChatOneShot(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "chat", "hello", "there")
	require.NoError(t, err)
	assert.NotEmpty(t, output)

	history, err := executeCmd(t, app, "chat", "history")
	require.NoError(t, err)
	assert.Contains(t, history, "hello there")
}

func TestChatCrisisMessage(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "chat", "I", "want", "to", "hurt", "myself")
	require.NoError(t, err)
	assert.Contains(t, output, "000")
	assert.Contains(t, output, "Lifeline")
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "chat", "   ")
	require.Error(t, err)
}

// --- journal ---

func TestJournalWriteAndList(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "journal", "write", "--mood", "sad", "today", "was", "heavy")
	require.NoError(t, err)
	assert.Contains(t, output, "3 words")

	output, err = executeCmd(t, app, "journal", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "today was heavy")
}

func TestJournalPrompts(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "journal", "prompts", "--mood", "very-sad")
	require.NoError(t, err)
	assert.Contains(t, output, "•")
}

// --- routine ---

func TestRoutineAddToggleRemove(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "routine", "add", "Morning", "walk", "--notes", "10 minutes")
	require.NoError(t, err)

	entries, err := app.Routine.ListForDate(ctx, app.UserID, todayArg())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	id := entries[0].ID

	output, err := executeCmd(t, app, "routine", "toggle", id)
	require.NoError(t, err)
	assert.Contains(t, output, "Done: Morning walk")

	output, err = executeCmd(t, app, "routine", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "[✓]")

	_, err = executeCmd(t, app, "routine", "remove", id)
	require.NoError(t, err)

	output, err = executeCmd(t, app, "routine", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Nothing planned")
}

func todayArg() string {
	return today()
}

// --- challenge ---

func TestChallengeTodayCompleteTwice(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "challenge", "today")
	require.NoError(t, err)
	assert.NotEmpty(t, output)

	output, err = executeCmd(t, app, "challenge", "complete")
	require.NoError(t, err)
	assert.Contains(t, output, "✓")

	output, err = executeCmd(t, app, "challenge", "complete")
	require.NoError(t, err)
	assert.Contains(t, output, "Already completed")

	output, err = executeCmd(t, app, "challenge", "history")
	require.NoError(t, err)
	assert.Contains(t, output, "CHALLENGE")
}

// --- share ---

func TestShareNewAndList(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "share", "new", "--style", "ocean", "Sending", "myself", "kindness")
	require.NoError(t, err)
	assert.Contains(t, output, "Sending myself kindness")

	output, err = executeCmd(t, app, "share", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "ocean")
}

func TestShareRejectsUnknownStyle(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "share", "new", "--style", "lava", "hi")
	require.Error(t, err)
}

// --- insight ---

func TestInsightKnownFeelingWithNote(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "insight", "anxious", "--note", "big week ahead")
	require.NoError(t, err)
	assert.Contains(t, output, "deep breathing")
	assert.Contains(t, output, "big week ahead")
}

func TestInsightUnknownFeelingFallsBack(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "insight", "floaty")
	require.NoError(t, err)
	assert.Contains(t, output, "Every feeling you experience is valid")
}

// --- profile ---

func TestProfileShowBeforeAndAfterNickname(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "No profile yet")

	output, err = executeCmd(t, app, "profile", "nickname", "Sam")
	require.NoError(t, err)
	assert.Contains(t, output, "Nice to meet you, Sam.")

	output, err = executeCmd(t, app, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "Sam")
}

// Mood values round-trip through the CLI unchanged.
func TestCheckinListShowsAllLoggedMoods(t *testing.T) {
	app := testApp(t)

	for _, m := range domain.Moods {
		_, err := executeCmd(t, app, "checkin", "log", string(m))
		require.NoError(t, err)
	}

	output, err := executeCmd(t, app, "checkin", "list")
	require.NoError(t, err)
	for _, label := range []string{"Very Sad", "Sad", "Neutral", "Happy", "Very Happy"} {
		assert.Contains(t, output, label)
	}
}
