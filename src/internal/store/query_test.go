// FILE: logvault/src/internal/store/query_test.go
package store

import (
	"fmt"
	"testing"
	"time"

	"logvault/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedStore writes n hourly entries starting at base and returns the store
func seedStore(t *testing.T, n int, base time.Time) *Store {
	t.Helper()
	s := newTestStore(t, Options{})
	for i := 0; i < n; i++ {
		s.WriteEntry(entryAt("orders", base.Add(time.Duration(i)*time.Hour), fmt.Sprintf("m%d", i)))
	}
	return s
}

func TestQuery(t *testing.T) {
	base := time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("DefaultOrderIsNewestFirst", func(t *testing.T) {
		s := seedStore(t, 5, base)

		result := s.Query("orders", QueryOptions{Limit: -1})
		require.Len(t, result, 5)
		for i := 1; i < len(result); i++ {
			assert.True(t, result[i].Timestamp.Before(result[i-1].Timestamp),
				"descending order expected")
		}
	})

	t.Run("AscendingOrder", func(t *testing.T) {
		s := seedStore(t, 5, base)

		result := s.Query("orders", QueryOptions{Limit: -1, Ascending: true})
		require.Len(t, result, 5)
		for i := 1; i < len(result); i++ {
			assert.True(t, result[i-1].Timestamp.Before(result[i].Timestamp))
		}
	})

	t.Run("LimitTruncatesAfterOrdering", func(t *testing.T) {
		s := seedStore(t, 5, base)

		result := s.Query("orders", QueryOptions{Limit: 2})
		require.Len(t, result, 2)
		assert.Equal(t, "m4", result[0].Message, "newest entries win the cut")
		assert.Equal(t, "m3", result[1].Message)
	})

	t.Run("ZeroLimitReturnsNothing", func(t *testing.T) {
		s := seedStore(t, 5, base)
		assert.Empty(t, s.Query("orders", QueryOptions{Limit: 0}))
	})

	t.Run("NegativeLimitReturnsAll", func(t *testing.T) {
		s := seedStore(t, 5, base)
		assert.Len(t, s.Query("orders", QueryOptions{Limit: -1}), 5)
	})

	t.Run("StartDateIsInclusive", func(t *testing.T) {
		s := seedStore(t, 5, base)

		result := s.Query("orders", QueryOptions{Start: base.Add(2 * time.Hour), Limit: -1, Ascending: true})
		require.Len(t, result, 3)
		assert.True(t, result[0].Timestamp.Equal(base.Add(2*time.Hour)))
	})

	t.Run("EndDateCoversWholeDay", func(t *testing.T) {
		s := newTestStore(t, Options{})
		endDay := time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)
		s.WriteEntry(entryAt("orders", endDay.Add(23*time.Hour+59*time.Minute), "last minute"))
		s.WriteEntry(entryAt("orders", endDay.Add(24*time.Hour), "next day"))

		result := s.Query("orders", QueryOptions{End: endDay, Limit: -1})
		require.Len(t, result, 1)
		assert.Equal(t, "last minute", result[0].Message)
	})

	t.Run("DateWindow", func(t *testing.T) {
		s := seedStore(t, 72, base) // three days of hourly entries

		result := s.Query("orders", QueryOptions{
			Start: time.Date(2023, 3, 11, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2023, 3, 11, 0, 0, 0, 0, time.UTC),
			Limit: -1,
		})
		assert.Len(t, result, 24, "exactly one calendar day of entries")
	})

	t.Run("LevelFilter", func(t *testing.T) {
		s := newTestStore(t, Options{})
		s.WriteEntry(entryAt("orders", base, "fine"))
		failed := entryAt("orders", base.Add(time.Minute), "failed")
		failed.Level = core.LevelError
		s.WriteEntry(failed)

		result := s.Query("orders", QueryOptions{Level: core.LevelError, Limit: -1})
		require.Len(t, result, 1)
		assert.Equal(t, "failed", result[0].Message)
	})

	t.Run("MissingGroupIsEmpty", func(t *testing.T) {
		s := newTestStore(t, Options{})
		assert.Empty(t, s.Query("never-written", QueryOptions{Limit: -1}))
	})

	t.Run("MissingBaseDirectoryIsEmpty", func(t *testing.T) {
		s := New(Options{Directory: "/nonexistent/logvault-test"}, newTestLogger())
		assert.Empty(t, s.Query("orders", QueryOptions{Limit: -1}))
	})
}
