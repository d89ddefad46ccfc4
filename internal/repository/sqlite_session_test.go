package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/luanbartole/kairos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_CompleteRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	errInjected := errors.New("injected failure")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errInjected}
	store := NewSQLiteSessionStore(database, uow)
	ctx := context.Background()

	running := testutil.NewTestSession("Write report", testutil.Running())
	require.NoError(t, store.SaveCurrent(ctx, &running))

	done := testutil.NewTestSession("Write report")
	err := store.Complete(ctx, &done)
	assert.ErrorIs(t, err, errInjected)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "insert should be rolled back")

	got, err := store.Current(ctx)
	require.NoError(t, err, "current session should survive the rollback")
	assert.Equal(t, "Write report", got.Task)
}

func TestSQLiteStore_AssignsUniqueIDs(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := NewSQLiteSessionStore(database, testutil.NewTestUoW(database))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		s := testutil.NewTestSession("same task")
		require.NoError(t, store.Complete(ctx, &s))
	}

	var distinct int
	require.NoError(t, database.QueryRow(`SELECT COUNT(DISTINCT id) FROM sessions`).Scan(&distinct))
	assert.Equal(t, 3, distinct)
}

func TestSQLiteStore_ReadsSeededRowsInInsertOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := NewSQLiteSessionStore(database, testutil.NewTestUoW(database))
	ctx := context.Background()

	testutil.SeedLoggedSessions(t, database,
		testutil.NewTestSession("b-second", testutil.WithSpan("11:00", "11:30")),
		testutil.NewTestSession("a-first", testutil.WithSpan("08:00", "09:00")),
	)
	testutil.SeedRunningSession(t, database, testutil.NewTestSession("running", testutil.Running()))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b-second", list[0].Task)
	assert.Equal(t, "00:30", list[0].Duration)
	assert.Equal(t, "a-first", list[1].Task)

	current, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "running", current.Task)

	done := testutil.NewTestSession("running", testutil.WithSpan("09:00", "09:20"))
	require.NoError(t, store.Complete(ctx, &done))

	list, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "running", list[2].Task)
}
