package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/pmorten/timetrail/internal/repository"
	"github.com/pmorten/timetrail/internal/testutil"
)

// testNow is the fixed instant engine tests run at: a Wednesday, mid-morning UTC.
var testNow = time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC)

type engineFixture struct {
	db      *sql.DB
	entries *repository.SQLiteEntryRepo
	prefs   *repository.SQLitePreferencesRepo
	clock   *testutil.FixedClock
	svc     TimelineService
}

func newEngine(t *testing.T) *engineFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	entries := repository.NewSQLiteEntryRepo(database)
	prefs := repository.NewSQLitePreferencesRepo(database)
	clk := testutil.NewFixedClock(testNow)
	svc := NewTimelineService(entries, prefs, testutil.NewTestUoW(database), clk)
	return &engineFixture{db: database, entries: entries, prefs: prefs, clock: clk, svc: svc}
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
