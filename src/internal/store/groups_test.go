// FILE: logvault/src/internal/store/groups_test.go
package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGroups(t *testing.T) {
	base := time.Date(2023, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("OrderedByMostRecentWrite", func(t *testing.T) {
		s := newTestStore(t, Options{})
		s.WriteEntry(entryAt("stale", base, "old"))
		s.WriteEntry(entryAt("busy", base.Add(time.Hour), "new"))
		s.WriteEntry(entryAt("busy", base.Add(2*time.Hour), "newer"))

		groups := s.ListGroups()
		require.Len(t, groups, 2)
		assert.Equal(t, "busy", groups[0].Name)
		assert.Equal(t, 2, groups[0].EntryCount)
		assert.Equal(t, "stale", groups[1].Name)
		assert.Equal(t, 1, groups[1].EntryCount)
	})

	t.Run("GroupsWithoutTimestampSortLast", func(t *testing.T) {
		s := newTestStore(t, Options{})
		s.WriteEntry(entryAt("active", base, "m"))
		require.NoError(t, os.MkdirAll(filepath.Join(s.opts.Directory, "empty"), 0755))

		groups := s.ListGroups()
		require.Len(t, groups, 2)
		assert.Equal(t, "active", groups[0].Name)
		assert.Equal(t, "empty", groups[1].Name)
		assert.Zero(t, groups[1].EntryCount)
		assert.Nil(t, groups[1].LastLog)
	})

	t.Run("StrayFilesInBaseAreIgnored", func(t *testing.T) {
		s := newTestStore(t, Options{})
		s.WriteEntry(entryAt("orders", base, "m"))
		require.NoError(t, os.WriteFile(filepath.Join(s.opts.Directory, "notes.txt"), []byte("x"), 0644))

		groups := s.ListGroups()
		require.Len(t, groups, 1)
		assert.Equal(t, "orders", groups[0].Name)
	})

	t.Run("CorruptLastLineStillCounts", func(t *testing.T) {
		s := newTestStore(t, Options{})
		s.WriteEntry(entryAt("orders", base, "m"))

		path := groupFile(s, "orders")
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
		require.NoError(t, err)
		_, err = f.WriteString("garbage tail\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		groups := s.ListGroups()
		require.Len(t, groups, 1)
		assert.Equal(t, 2, groups[0].EntryCount)
		assert.Nil(t, groups[0].LastLog, "undecodable last line yields no timestamp")
	})

	t.Run("MissingBaseDirectoryIsEmpty", func(t *testing.T) {
		s := New(Options{Directory: "/nonexistent/logvault-test"}, newTestLogger())
		assert.Empty(t, s.ListGroups())
	})
}
