package journal

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/cvadmin/internal/logger"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournal_RecordAndRecent(t *testing.T) {
	j := openTestJournal(t)

	j.RecordMutation("steps", "create", 0, nil)
	j.RecordMutation("steps", "delete", 4, errors.New("step is in use"))
	j.RecordMutation("users", "toggle-status", 2, nil)

	entries, err := j.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first.
	assert.Equal(t, "users", entries[0].Entity)
	assert.True(t, entries[0].OK)

	assert.Equal(t, "steps", entries[1].Entity)
	assert.Equal(t, "delete", entries[1].Operation)
	assert.Equal(t, 4, entries[1].TargetID)
	assert.False(t, entries[1].OK)
	assert.Equal(t, "step is in use", entries[1].Error)

	assert.False(t, entries[2].Timestamp.IsZero())
}

func TestJournal_RecentLimit(t *testing.T) {
	j := openTestJournal(t)

	for i := 0; i < 5; i++ {
		j.RecordMutation("steps", "create", i, nil)
	}

	entries, err := j.Recent(2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 4, entries[0].TargetID)
}

func TestJournal_Empty(t *testing.T) {
	j := openTestJournal(t)

	entries, err := j.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJournal_KV(t *testing.T) {
	j := openTestJournal(t)

	v, err := j.GetValue("last-filter")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, j.SetValue("last-filter", "page=2"))
	require.NoError(t, j.SetValue("last-filter", "page=3")) // upsert

	v, err = j.GetValue("last-filter")
	require.NoError(t, err)
	assert.Equal(t, "page=3", v)
}
