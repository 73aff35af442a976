// FILE: logvault/src/internal/core/level_test.go
package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    Level
		expectError bool
	}{
		{name: "Debug", input: "debug", expected: LevelDebug},
		{name: "Info", input: "info", expected: LevelInfo},
		{name: "Warning", input: "warning", expected: LevelWarning},
		{name: "WarnAlias", input: "warn", expected: LevelWarning},
		{name: "Error", input: "error", expected: LevelError},
		{name: "Critical", input: "critical", expected: LevelCritical},
		{name: "Audit", input: "audit", expected: LevelAudit},
		{name: "MixedCase", input: "ERROR", expected: LevelError},
		{name: "Unknown", input: "verbose", expectError: true},
		{name: "Empty", input: "", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level, err := ParseLevel(tc.input)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, level)
				assert.True(t, level.Valid())
			}
		})
	}
}

func TestNewLogEntry(t *testing.T) {
	entry := NewLogEntry("orders", LevelInfo, "hello")

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "orders", entry.Group)
	assert.Equal(t, LevelInfo, entry.Level)
	assert.Equal(t, "hello", entry.Message)
	assert.False(t, entry.Timestamp.IsZero())
	assert.Equal(t, entry.Timestamp, entry.Timestamp.UTC())

	other := NewLogEntry("orders", LevelInfo, "hello")
	assert.NotEqual(t, entry.ID, other.ID, "identifiers must be unique per entry")
}
