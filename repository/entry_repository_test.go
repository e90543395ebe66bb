package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"giveaway/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryRepository_Load_CreatesEmptyStoreWhenAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "entries.json")
	repo := NewEntryRepository(path)

	entries, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// The empty store representation must now exist on disk
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestEntryRepository_SaveAndLoad_PreservesOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "entries.json")
	repo := NewEntryRepository(path)

	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	saved := []*models.Entry{
		models.NewEntry("111", "first#0", "UID-A", now),
		models.NewEntry("222", "second#0", "UID-B", now.Add(time.Minute)),
		models.NewEntry("333", "third#0", "", now.Add(2*time.Minute)),
	}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	for i := range saved {
		assert.Equal(t, saved[i], loaded[i])
	}
}

func TestEntryRepository_Load_Unreadable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not json",
			content: "this is not json",
		},
		{
			name:    "wrong top-level shape",
			content: `{"discord_user_id": "123"}`,
		},
		{
			name:    "null entry",
			content: `[null]`,
		},
		{
			name:    "entry missing discord_user_id",
			content: `[{"discord_tag": "x#0", "uid": "A", "timestamp": "2024-03-07T12:00:00"}]`,
		},
		{
			name:    "entry with wrong field type",
			content: `[{"discord_user_id": 123, "discord_tag": "x#0", "uid": "A", "timestamp": "t"}]`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "entries.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := NewEntryRepository(path).Load(ctx)
			assert.ErrorIs(t, err, ErrStoreUnreadable)
		})
	}
}

func TestEntryRepository_Save_Unwritable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Target a path whose parent directory does not exist
	path := filepath.Join(t.TempDir(), "missing", "entries.json")
	repo := NewEntryRepository(path)

	err := repo.Save(ctx, []*models.Entry{})
	assert.ErrorIs(t, err, ErrStoreUnwritable)
}

func TestEntryRepository_Save_NilBecomesEmptyStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "entries.json")
	repo := NewEntryRepository(path)

	require.NoError(t, repo.Save(ctx, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
