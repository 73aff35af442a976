// FILE: logvault/src/internal/store/groups.go
package store

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"time"

	"logvault/src/internal/codec"
	"logvault/src/internal/core"
)

// GroupInfo describes one group's on-disk state, computed on demand
type GroupInfo struct {
	Name       string
	EntryCount int
	LastLog    *time.Time // nil when the group has no decodable entries
}

// ListGroups enumerates group directories under the base path. Only the last
// line of each file is decoded; counting needs no deserialization. Groups are
// ordered most-recently-written first, empty groups last. A missing base
// directory yields an empty result.
func (s *Store) ListGroups() []GroupInfo {
	s.mu.Lock()
	dir := s.opts.Directory
	s.mu.Unlock()

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var groups []GroupInfo
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		count, last := scanGroupFile(filepath.Join(dir, de.Name(), core.LogFileName))
		groups = append(groups, GroupInfo{
			Name:       de.Name(),
			EntryCount: count,
			LastLog:    last,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].LastLog, groups[j].LastLog
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return groups
}

// scanGroupFile counts non-empty lines and decodes only the final one for
// its timestamp
func scanGroupFile(path string) (int, *time.Time) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil
	}
	defer f.Close()

	var count int
	var lastLine []byte
	r := bufio.NewReader(f)
	for {
		line, rerr := r.ReadBytes('\n')
		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			count++
			lastLine = append(lastLine[:0], trimmed...)
		}
		if rerr != nil {
			break
		}
	}

	if count == 0 {
		return 0, nil
	}
	entry, err := codec.Decode(lastLine)
	if err != nil {
		return count, nil
	}
	return count, &entry.Timestamp
}
