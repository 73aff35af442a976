// FILE: logvault/src/internal/core/level.go
package core

import (
	"fmt"
	"strings"
)

// Level is the severity of a log entry
type Level string

const (
	LevelDebug    Level = "debug"
	LevelInfo     Level = "info"
	LevelWarning  Level = "warning"
	LevelError    Level = "error"
	LevelCritical Level = "critical"
	LevelAudit    Level = "audit"
)

// ParseLevel converts a severity name to a Level, case-insensitively
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical":
		return LevelCritical, nil
	case "audit":
		return LevelAudit, nil
	default:
		return "", fmt.Errorf("unknown log level: %s", s)
	}
}

// Valid reports whether l is one of the defined severities
func (l Level) Valid() bool {
	switch l {
	case LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical, LevelAudit:
		return true
	}
	return false
}

func (l Level) String() string {
	return string(l)
}
