// FILE: logvault/src/internal/codec/codec.go
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"logvault/src/internal/core"
)

// TimestampLayout is the on-disk timestamp profile. Entries carry UTC
// timestamps, so output is reproducible regardless of host timezone.
const TimestampLayout = time.RFC3339Nano

// record is the wire shape of one line. Field declaration order is the
// sorted key order; encoding/json preserves it, which keeps identical
// entries byte-identical on every encode.
type record struct {
	Group     string `json:"group"`
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
}

// Encode serializes one entry to one newline-terminated JSON line.
func Encode(entry core.LogEntry) ([]byte, error) {
	if !entry.Level.Valid() {
		return nil, fmt.Errorf("invalid log level: %q", entry.Level)
	}

	line, err := json.Marshal(record{
		Group:     entry.Group,
		ID:        entry.ID,
		Message:   entry.Message,
		Timestamp: entry.Timestamp.UTC().Format(TimestampLayout),
		Type:      string(entry.Level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry: %w", err)
	}

	return append(line, '\n'), nil
}

// Decode parses one line back into an entry. A failure means the line is
// unusable; the caller's policy (the store) is to skip it and continue.
func Decode(line []byte) (core.LogEntry, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return core.LogEntry{}, fmt.Errorf("empty line")
	}

	var rec record
	if err := json.Unmarshal(line, &rec); err != nil {
		return core.LogEntry{}, fmt.Errorf("failed to unmarshal entry: %w", err)
	}

	level, err := core.ParseLevel(rec.Type)
	if err != nil {
		return core.LogEntry{}, err
	}

	ts, err := time.Parse(TimestampLayout, rec.Timestamp)
	if err != nil {
		return core.LogEntry{}, fmt.Errorf("invalid timestamp %q: %w", rec.Timestamp, err)
	}

	return core.LogEntry{
		ID:        rec.ID,
		Timestamp: ts.UTC(),
		Group:     rec.Group,
		Level:     level,
		Message:   rec.Message,
	}, nil
}
