package tracker

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/acest-fitness/gym-service/internal/persistence"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	db, err := persistence.OpenSQLite(ctx, filepath.Join(t.TempDir(), "workouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := NewStore(ctx, db)
	require.NoError(t, err)
	return store
}

func TestStore_AddAndList(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	at := time.Date(2026, 10, 17, 7, 0, 0, 0, time.UTC)

	first := &Entry{Name: "Morning run", DurationMinutes: 30, LoggedAt: at}
	second := &Entry{Name: "Deadlifts", DurationMinutes: 45, LoggedAt: at.Add(time.Hour)}
	require.NoError(t, store.Add(ctx, first))
	require.NoError(t, store.Add(ctx, second))
	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Morning run", entries[0].Name)
	assert.Equal(t, 45, entries[1].DurationMinutes)
	assert.True(t, at.Equal(entries[0].LoggedAt))
}

func TestStore_SchemaIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := persistence.OpenSQLite(ctx, filepath.Join(t.TempDir(), "workouts.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = NewStore(ctx, db)
	require.NoError(t, err)
	_, err = NewStore(ctx, db)
	assert.NoError(t, err)
}

func runConsole(t *testing.T, store *Store, input string) string {
	t.Helper()
	var out bytes.Buffer
	console := NewConsole(store, strings.NewReader(input), &out, zap.NewNop())
	console.now = func() time.Time { return time.Date(2026, 10, 17, 7, 0, 0, 0, time.UTC) }
	require.NoError(t, console.Run(context.Background()))
	return out.String()
}

func TestConsole_AddAndList(t *testing.T) {
	store := newTestStore(t)

	out := runConsole(t, store, "add Yoga Flex | 60\nadd  HIIT|20 \nlist\nquit\nadd ignored | 5\n")

	assert.Contains(t, out, `logged "Yoga Flex" for 60 minutes`)
	assert.Contains(t, out, `logged "HIIT" for 20 minutes`)
	assert.Contains(t, out, "1. Yoga Flex - 60 minutes\n2. HIIT - 20 minutes\n")

	entries, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestConsole_RejectsInvalidEntries(t *testing.T) {
	store := newTestStore(t)

	out := runConsole(t, store, strings.Join([]string{
		"add Rowing",
		"add Rowing | ten",
		"add  | 10",
		"add Rowing | 0",
		"add Rowing | -5",
		"add Rowing | 5000",
		"list",
	}, "\n"))

	assert.Contains(t, out, "please enter both workout and duration")
	assert.Contains(t, out, "duration must be a whole number of minutes")
	assert.Contains(t, out, "invalid workout name")
	assert.Equal(t, 3, strings.Count(out, "invalid duration (1-1440 minutes)"))
	assert.Contains(t, out, "no workouts logged yet")
}

func TestConsole_HelpAndUnknown(t *testing.T) {
	out := runConsole(t, newTestStore(t), "help\nsquat\n")

	assert.Contains(t, out, "add <workout name> | <minutes>")
	assert.Contains(t, out, `unknown command "squat"`)
}

func TestConsole_StopsOnCancel(t *testing.T) {
	store := newTestStore(t)
	reader, writer := io.Pipe()
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewConsole(store, reader, io.Discard, zap.NewNop()).Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("console did not stop after cancel")
	}
}
