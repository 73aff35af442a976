// FILE: logvault/src/internal/core/const.go
package core

// LogFileName is the per-group entry file inside each group directory
const LogFileName = "logs.jsonl"

const (
	DefaultQueryLimit = 100
	DefaultQueueSize  = 1000
	DefaultMaxEntries = 1000
)
