package usagelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dispatch-tools/chatcmd/internal/testutil"
)

func TestInsertAndRecent(t *testing.T) {
	db := testutil.NewTestDB(t)

	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	records := []Record{
		{Command: "chatsh", SubCommand: "ping", Sender: "alice", Outcome: OutcomeOK, Duration: 2 * time.Millisecond, At: base},
		{Command: "chatsh", SubCommand: "ban", Sender: "bob", Outcome: OutcomeRejected, Duration: time.Millisecond, At: base.Add(time.Minute)},
		{Command: "chatsh", SubCommand: "roll", Sender: "alice", Outcome: OutcomeFault, Duration: 5 * time.Millisecond, At: base.Add(2 * time.Minute)},
	}
	for _, r := range records {
		require.NoError(t, Insert(db, r))
	}

	got, err := Recent(db, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "roll", got[0].SubCommand, "newest first")
	require.Equal(t, "ban", got[1].SubCommand)
	require.Equal(t, OutcomeFault, got[0].Outcome)
	require.Equal(t, 5*time.Millisecond, got[0].Duration)
}

func TestInsert_FillsIDAndTimestamp(t *testing.T) {
	db := testutil.NewTestDB(t)

	require.NoError(t, Insert(db, Record{
		Command:    "chatsh",
		SubCommand: "ping",
		Sender:     "alice",
		Outcome:    OutcomeOK,
	}))

	got, err := Recent(db, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotEmpty(t, got[0].ID)
	require.False(t, got[0].At.IsZero())
}

func TestRecent_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)

	got, err := Recent(db, 10)
	require.NoError(t, err)
	require.Empty(t, got)
}
