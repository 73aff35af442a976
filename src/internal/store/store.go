// FILE: logvault/src/internal/store/store.go
package store

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"logvault/src/internal/codec"
	"logvault/src/internal/core"

	"github.com/lixenwraith/log"
)

// Options configures a Store
type Options struct {
	// Directory is the base path; one subdirectory per group is created under it
	Directory string

	// MaxEntries caps the entry count per group; 0 or negative disables the cap
	MaxEntries int

	// GroupLimits overrides MaxEntries for specific raw group names
	GroupLimits map[string]int

	// QueueSize bounds the async write queue; fixed at construction
	QueueSize int
}

func (o Options) effectiveLimit(group string) int {
	if limit, ok := o.GroupLimits[group]; ok {
		return limit
	}
	return o.MaxEntries
}

// Store persists bounded, per-group log entries to line-delimited JSON files.
// Write is fire-and-forget: entries are enqueued onto a buffered channel and
// persisted by a single background loop, so the read-append-trim-rewrite
// rotation for a group is never interleaved with another write to it. Reads
// never take the write path's locks; atomic file replacement keeps partially
// written files invisible to them.
type Store struct {
	mu         sync.Mutex // guards opts and groupLocks
	opts       Options
	groupLocks map[string]*sync.Mutex

	input chan task
	done  chan struct{}
	wg    sync.WaitGroup

	logger *log.Logger

	// Statistics
	totalWritten atomic.Uint64
	totalDropped atomic.Uint64
	queueFull    atomic.Uint64
}

type task struct {
	entry core.LogEntry
	flush chan struct{} // barrier marker; nil for regular writes
}

// New creates a store. Start must be called before Write; synchronous
// WriteEntry works without the background loop.
func New(opts Options, logger *log.Logger) *Store {
	if opts.QueueSize <= 0 {
		opts.QueueSize = core.DefaultQueueSize
	}

	return &Store{
		opts:       opts,
		groupLocks: make(map[string]*sync.Mutex),
		input:      make(chan task, opts.QueueSize),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Start launches the background persistence loop
func (s *Store) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.processLoop(ctx)
}

// Stop drains pending writes and stops the background loop
func (s *Store) Stop() {
	close(s.done)
	s.wg.Wait()
}

// Configure replaces the active options. A changed base directory is created
// best-effort; failure is reported on the side-channel only, since the write
// path retries creation on every persist.
func (s *Store) Configure(opts Options) {
	s.mu.Lock()
	prev := s.opts.Directory
	opts.QueueSize = s.opts.QueueSize // queue is fixed at construction
	s.opts = opts
	s.mu.Unlock()

	if opts.Directory == prev {
		return
	}
	if err := os.MkdirAll(opts.Directory, 0755); err != nil {
		s.logger.Error("msg", "Failed to create log directory",
			"component", "store",
			"directory", opts.Directory,
			"error", err)
	}
}

// Write enqueues a new entry for the group. It never blocks: when the queue
// is full the entry is dropped and counted. Callers must not assume the
// entry has been persisted when the call returns.
func (s *Store) Write(group string, level core.Level, message string) {
	s.enqueue(core.NewLogEntry(group, level, message))
}

// WriteEntry persists a caller-constructed entry synchronously. A zero ID
// or timestamp is filled in as Write would.
func (s *Store) WriteEntry(entry core.LogEntry) {
	s.persist(s.fill(entry))
}

func (s *Store) enqueue(entry core.LogEntry) {
	select {
	case s.input <- task{entry: entry}:
	default:
		s.queueFull.Add(1)
		s.totalDropped.Add(1)
		s.logger.Warn("msg", "Write queue full, entry dropped",
			"component", "store",
			"group", entry.Group)
	}
}

// Flush blocks until every entry enqueued before the call has been persisted
func (s *Store) Flush() {
	barrier := make(chan struct{})
	s.input <- task{flush: barrier}
	<-barrier
}

func (s *Store) fill(entry core.LogEntry) core.LogEntry {
	if entry.ID == "" {
		entry.ID = core.NewID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	} else {
		entry.Timestamp = entry.Timestamp.UTC()
	}
	return entry
}

func (s *Store) processLoop(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case t := <-s.input:
			s.handle(t)
		case <-ctx.Done():
			return
		case <-s.done:
			// Drain what was enqueued before shutdown
			for {
				select {
				case t := <-s.input:
					s.handle(t)
				default:
					return
				}
			}
		}
	}
}

func (s *Store) handle(t task) {
	if t.flush != nil {
		close(t.flush)
		return
	}
	s.persist(t.entry)
}

// persist runs the rotation sequence for one entry: load the group's file,
// append, sort by timestamp, trim the oldest entries past the cap, and
// atomically replace the file. Any failure drops the entry; logging must
// never surface errors to the host application.
func (s *Store) persist(entry core.LogEntry) {
	name := SanitizeGroupName(entry.Group)

	lock := s.groupLock(name)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	opts := s.opts
	s.mu.Unlock()

	dir := filepath.Join(opts.Directory, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		s.totalDropped.Add(1)
		s.logger.Error("msg", "Failed to create group directory",
			"component", "store",
			"group", entry.Group,
			"directory", dir,
			"error", err)
		return
	}

	path := filepath.Join(dir, core.LogFileName)
	entries := readEntries(path)
	entries = append(entries, entry)

	// Guards against out-of-order arrival across writers; stable keeps the
	// original relative order of equal timestamps
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})

	if limit := opts.effectiveLimit(entry.Group); limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	if err := writeEntriesAtomic(dir, path, entries); err != nil {
		s.totalDropped.Add(1)
		s.logger.Error("msg", "Failed to persist log entry",
			"component", "store",
			"group", entry.Group,
			"path", path,
			"error", err)
		return
	}

	s.totalWritten.Add(1)
}

func (s *Store) groupLock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.groupLocks[name]
	if !ok {
		lock = &sync.Mutex{}
		s.groupLocks[name] = lock
	}
	return lock
}

// groupPath resolves the log file for a raw group name
func (s *Store) groupPath(group string) string {
	s.mu.Lock()
	dir := s.opts.Directory
	s.mu.Unlock()
	return filepath.Join(dir, SanitizeGroupName(group), core.LogFileName)
}

// readEntries loads every decodable line from path. A missing or unreadable
// file means "no entries"; malformed lines are skipped individually. Lines
// carry no length cap: messages are arbitrary text, and a committed entry
// must never become invisible just for being large.
func readEntries(path string) []core.LogEntry {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var entries []core.LogEntry
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			if entry, derr := codec.Decode(line); derr == nil {
				entries = append(entries, entry)
			}
		}
		if err != nil {
			return entries
		}
	}
}

// writeEntriesAtomic rewrites the group file via temp-file-then-rename so a
// reader never observes a partial file
func writeEntriesAtomic(dir, path string, entries []core.LogEntry) error {
	tmp, err := os.CreateTemp(dir, ".logs-*.tmp")
	if err != nil {
		return err
	}

	w := bufio.NewWriter(tmp)
	for _, entry := range entries {
		line, err := codec.Encode(entry)
		if err != nil {
			// Entries come from our own decode or constructors; an encode
			// failure is a programming error, skip the record
			continue
		}
		if _, err := w.Write(line); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return err
		}
	}

	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// SanitizeGroupName maps a raw group name to a filesystem-safe directory
// name. Distinct raw names can collide after sanitization; colliding groups
// share one file and one cap (documented limitation).
func SanitizeGroupName(name string) string {
	if name == "" {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '?', '%', '*', '|', '"', ':', '<', '>':
			return '_'
		}
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name)
}

// Stats reports store counters
func (s *Store) Stats() map[string]any {
	return map[string]any{
		"total_written": s.totalWritten.Load(),
		"total_dropped": s.totalDropped.Load(),
		"queue_full":    s.queueFull.Load(),
	}
}
