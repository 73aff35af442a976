// FILE: logvault/src/cmd/logvault/commands.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"logvault/src/internal/config"
	"logvault/src/internal/core"
	"logvault/src/internal/store"
	"logvault/src/internal/version"
)

// parseArgs treats -h/--help on a subcommand as handled, not as an error
func parseArgs(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Handles subcommand routing
type CommandRouter struct {
	commands map[string]CommandHandler
}

// Defines the interface for subcommands
type CommandHandler interface {
	Execute(args []string) error
	Description() string
}

// Creates and initializes the command router
func NewCommandRouter() *CommandRouter {
	router := &CommandRouter{
		commands: make(map[string]CommandHandler),
	}

	// Register available commands
	router.commands["write"] = &writeCommand{}
	router.commands["query"] = &queryCommand{}
	router.commands["groups"] = &groupsCommand{}
	router.commands["init"] = &initCommand{}
	router.commands["version"] = &versionCommand{}
	router.commands["help"] = &helpCommand{}

	return router
}

// Checks for and executes subcommands
func (r *CommandRouter) Route(args []string) {
	if len(args) < 2 {
		return
	}

	cmdName := args[1]
	if cmdName == "-h" || cmdName == "--help" {
		cmdName = "help"
	}

	if handler, exists := r.commands[cmdName]; exists {
		if err := handler.Execute(args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmdName)
	fmt.Fprintln(os.Stderr, "\nAvailable commands:")
	r.ShowCommands()
	os.Exit(1)
}

// Displays available subcommands
func (r *CommandRouter) ShowCommands() {
	fmt.Fprintln(os.Stderr, "  write      Append a log entry to a group")
	fmt.Fprintln(os.Stderr, "  query      Read entries from a group with filters")
	fmt.Fprintln(os.Stderr, "  groups     List groups with counts and last-write times")
	fmt.Fprintln(os.Stderr, "  init       Write the effective configuration to a file")
	fmt.Fprintln(os.Stderr, "  version    Show version information")
	fmt.Fprintln(os.Stderr, "  help       Display help information")
	fmt.Fprintln(os.Stderr, "\nUse 'logvault <command> --help' for command-specific help")
}

type writeCommand struct{}

func (c *writeCommand) Execute(args []string) error {
	fs := flag.NewFlagSet("write", flag.ContinueOnError)
	group := fs.String("group", "default", "Group name (routes to a per-group file)")
	level := fs.String("level", "info", "Severity: debug, info, warning, error, critical, audit")
	configFile := fs.String("config", "", "Config file path")
	quiet := fs.Bool("quiet", false, "Suppress non-log output")
	if ok, err := parseArgs(fs, args); !ok {
		return err
	}

	message := strings.Join(fs.Args(), " ")
	if message == "" {
		return fmt.Errorf("no message given")
	}

	lvl, err := core.ParseLevel(*level)
	if err != nil {
		return err
	}

	app, err := bootstrap(*configFile, *quiet)
	if err != nil {
		return err
	}
	defer app.shutdown()

	// Callers annotate messages with their own call site; the store never
	// inspects call-site metadata itself
	app.store.Write(*group, lvl, annotateCallSite(message))
	app.store.Flush()
	return nil
}

func (c *writeCommand) Description() string {
	return "Append a log entry to a group"
}

type queryCommand struct{}

func (c *queryCommand) Execute(args []string) error {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	group := fs.String("group", "default", "Group name")
	startDate := fs.String("start", "", "Earliest date to include (2006-01-02)")
	endDate := fs.String("end", "", "Latest date to include, whole day (2006-01-02)")
	level := fs.String("level", "", "Only entries of this severity")
	limit := fs.Int("limit", core.DefaultQueryLimit, "Maximum entries to return (negative = all)")
	ascending := fs.Bool("asc", false, "Oldest first instead of newest first")
	asJSON := fs.Bool("json", false, "Print entries in the on-disk line format")
	configFile := fs.String("config", "", "Config file path")
	quiet := fs.Bool("quiet", false, "Suppress non-log output")
	if ok, err := parseArgs(fs, args); !ok {
		return err
	}

	var q store.QueryOptions
	q.Limit = *limit
	q.Ascending = *ascending
	if *startDate != "" {
		t, err := time.Parse("2006-01-02", *startDate)
		if err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
		q.Start = t
	}
	if *endDate != "" {
		t, err := time.Parse("2006-01-02", *endDate)
		if err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
		q.End = t
	}
	if *level != "" {
		lvl, err := core.ParseLevel(*level)
		if err != nil {
			return err
		}
		q.Level = lvl
	}

	app, err := bootstrap(*configFile, *quiet)
	if err != nil {
		return err
	}
	defer app.shutdown()

	for _, entry := range app.store.Query(*group, q) {
		printEntry(entry, *asJSON)
	}
	return nil
}

func (c *queryCommand) Description() string {
	return "Read entries from a group with filters"
}

type groupsCommand struct{}

func (c *groupsCommand) Execute(args []string) error {
	fs := flag.NewFlagSet("groups", flag.ContinueOnError)
	configFile := fs.String("config", "", "Config file path")
	quiet := fs.Bool("quiet", false, "Suppress non-log output")
	if ok, err := parseArgs(fs, args); !ok {
		return err
	}

	app, err := bootstrap(*configFile, *quiet)
	if err != nil {
		return err
	}
	defer app.shutdown()

	for _, info := range app.store.ListGroups() {
		last := "-"
		if info.LastLog != nil {
			last = info.LastLog.Format(time.RFC3339)
		}
		Print("%-30s %8d  %s\n", info.Name, info.EntryCount, last)
	}
	return nil
}

func (c *groupsCommand) Description() string {
	return "List groups with counts and last-write times"
}

type initCommand struct{}

func (c *initCommand) Execute(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	out := fs.String("out", "", "Destination path (default: the active config path)")
	if ok, err := parseArgs(fs, args); !ok {
		return err
	}

	path := *out
	if path == "" {
		path = config.GetConfigPath()
	}

	// Resolve defaults, file and environment into one effective config
	cfg, err := config.Load(nil)
	if err != nil {
		return err
	}
	if err := cfg.SaveToFile(path); err != nil {
		return err
	}

	Print("Wrote configuration to %s\n", path)
	return nil
}

func (c *initCommand) Description() string {
	return "Write the effective configuration to a file"
}

type versionCommand struct{}

func (c *versionCommand) Execute(args []string) error {
	fmt.Println(version.String())
	return nil
}

func (c *versionCommand) Description() string {
	return "Show version information"
}

type helpCommand struct{}

func (c *helpCommand) Execute(args []string) error {
	showUsage()
	return nil
}

func (c *helpCommand) Description() string {
	return "Display help information"
}
