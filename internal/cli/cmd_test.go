package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/pmorten/timetrail/internal/repository"
	"github.com/pmorten/timetrail/internal/service"
	"github.com/pmorten/timetrail/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) (*App, *repository.SQLiteEntryRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)

	entryRepo := repository.NewSQLiteEntryRepo(database)
	prefsRepo := repository.NewSQLitePreferencesRepo(database)
	uow := testutil.NewTestUoW(database)
	clk := testutil.NewFixedClock(time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC))

	app := &App{
		Timeline:    service.NewTimelineService(entryRepo, prefsRepo, uow, clk),
		Preferences: service.NewPreferencesService(prefsRepo, clk),
		Import:      service.NewImportService(prefsRepo, uow, clk),
		Clock:       clk,
		OwnerID:     "cli-test-owner",
	}
	return app, entryRepo
}

// executeCmd runs a cobra command and captures cobra's own output.
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

func TestStartStopCmd_RoundTrip(t *testing.T) {
	app, entries := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "start", "writing", "report", "--tags", "work,writing")
	require.NoError(t, err)

	active, err := entries.FindActiveByOwner(ctx, app.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, "writing report", active.Title, "bare args join into one title")
	assert.Equal(t, []string{"work", "writing"}, active.Tags)

	_, err = executeCmd(t, app, "stop")
	require.NoError(t, err)

	_, err = entries.FindActiveByOwner(ctx, app.OwnerID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStartCmd_SecondStartFails(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "start", "first")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "start", "second")
	assert.ErrorIs(t, err, service.ErrActiveEntryExists)
}

func TestStopCmd_WhileIdleFails(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "stop")
	assert.ErrorIs(t, err, service.ErrNoActiveEntry)
}

func TestContinueCmd_CopiesEntry(t *testing.T) {
	app, entries := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "start", "research", "--tags", "deep")
	require.NoError(t, err)
	first, err := entries.FindActiveByOwner(ctx, app.OwnerID)
	require.NoError(t, err)
	_, err = executeCmd(t, app, "stop")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "continue", first.ID)
	require.NoError(t, err)

	active, err := entries.FindActiveByOwner(ctx, app.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, "research", active.Title)
	assert.Equal(t, []string{"deep"}, active.Tags)
	assert.NotEqual(t, first.ID, active.ID)
}

func TestEditCmd_ChangesTitle(t *testing.T) {
	app, entries := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "start", "tpyo")
	require.NoError(t, err)
	active, err := entries.FindActiveByOwner(ctx, app.OwnerID)
	require.NoError(t, err)

	_, err = executeCmd(t, app, "edit", active.ID, "--title", "typo")
	require.NoError(t, err)

	got, err := entries.GetByID(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, "typo", got.Title)
}

func TestRemoveCmd(t *testing.T) {
	app, entries := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "start", "ephemeral")
	require.NoError(t, err)
	active, err := entries.FindActiveByOwner(ctx, app.OwnerID)
	require.NoError(t, err)
	_, err = executeCmd(t, app, "stop")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "rm", active.ID)
	require.NoError(t, err)

	_, err = entries.GetByID(ctx, active.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWeekCmd_RejectsUnknownDirection(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "week", "sideways")
	assert.Error(t, err)
}

func TestPrefsSetCmd_RoundTrip(t *testing.T) {
	app, _ := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "prefs", "set",
		"--timezone", "Europe/Berlin", "--week-start", "sunday", "--locale", "de-DE")
	require.NoError(t, err)

	p, err := app.Preferences.Get(ctx, app.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", p.Timezone)
	assert.Equal(t, time.Sunday, p.StartOfWeek)
	assert.Equal(t, "de-DE", p.Locale)
}

func TestPrefsSetCmd_RejectsBadTimezone(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "prefs", "set", "--timezone", "Mars/Olympus")
	assert.Error(t, err)
}

func TestLogCmd_Executes(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "start", "reading")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "stop")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "log", "--limit", "5")
	require.NoError(t, err)
}
