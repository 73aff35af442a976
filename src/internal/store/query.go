// FILE: logvault/src/internal/store/query.go
package store

import (
	"time"

	"logvault/src/internal/core"
)

// QueryOptions filters and shapes a Query result
type QueryOptions struct {
	// Start excludes entries before it; zero means unbounded
	Start time.Time

	// End is a calendar-day cutoff: every entry dated on End's day is
	// included regardless of time-of-day. Zero means unbounded.
	End time.Time

	// Level keeps only entries of an exact severity when set
	Level core.Level

	// Limit truncates the result after ordering. Negative means no cap;
	// zero yields an empty result.
	Limit int

	// Ascending returns oldest-first order; default is newest-first
	Ascending bool
}

// Query reads a group's entries with inclusive time filtering, ordering and
// a result cap. A missing or unreadable file yields an empty result.
func (s *Store) Query(group string, q QueryOptions) []core.LogEntry {
	entries := readEntries(s.groupPath(group))

	filtered := entries[:0:0]
	var cutoff time.Time
	if !q.End.IsZero() {
		cutoff = startOfNextDay(q.End)
	}
	for _, entry := range entries {
		if !q.Start.IsZero() && entry.Timestamp.Before(q.Start) {
			continue
		}
		if !cutoff.IsZero() && !entry.Timestamp.Before(cutoff) {
			continue
		}
		if q.Level != "" && entry.Level != q.Level {
			continue
		}
		filtered = append(filtered, entry)
	}

	// The file is stored oldest-first
	if !q.Ascending {
		reverse(filtered)
	}

	if q.Limit >= 0 && len(filtered) > q.Limit {
		filtered = filtered[:q.Limit]
	}
	return filtered
}

// startOfNextDay advances to midnight after d's calendar day, in d's location
func startOfNextDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, d.Location())
}

func reverse(entries []core.LogEntry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}
