// FILE: logvault/src/internal/core/entry.go
package core

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry represents a single persisted log record. Once written, every
// field is immutable; rotation only appends or drops whole entries.
type LogEntry struct {
	ID        string
	Timestamp time.Time
	Group     string
	Level     Level
	Message   string
}

// NewLogEntry builds an entry with a fresh identifier and the current time.
// Timestamps are normalized to UTC so encoded output is location-independent.
func NewLogEntry(group string, level Level, message string) LogEntry {
	return LogEntry{
		ID:        NewID(),
		Timestamp: time.Now().UTC(),
		Group:     group,
		Level:     level,
		Message:   message,
	}
}

// NewID returns a time-ordered unique entry identifier
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
