// FILE: logvault/src/cmd/logvault/bootstrap.go
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"logvault/src/internal/codec"
	"logvault/src/internal/config"
	"logvault/src/internal/core"
	"logvault/src/internal/store"
	"logvault/src/internal/version"

	"github.com/lixenwraith/log"
)

var logger *log.Logger

// appContext is the application composition root: the default store instance
// lives here, with its lifecycle tied to command execution
type appContext struct {
	cfg    *config.Config
	store  *store.Store
	cancel context.CancelFunc
}

func bootstrap(configFile string, quiet bool) (*appContext, error) {
	if quiet {
		output.SetQuiet(true)
	}
	if configFile != "" {
		os.Setenv("LOGVAULT_CONFIG_FILE", configFile)
	}

	cfg, err := config.Load(os.Args[2:])
	if err != nil {
		if configFile != "" && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("config file not found: %s", configFile)
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := initializeLogger(cfg, quiet); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	st := store.New(store.Options{
		Directory:   cfg.Store.Directory,
		MaxEntries:  cfg.Store.MaxEntries,
		GroupLimits: cfg.Store.GroupLimits,
		QueueSize:   cfg.Store.QueueSize,
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	st.Start(ctx)

	logger.Info("msg", "LogVault starting",
		"version", version.Short(),
		"directory", cfg.Store.Directory)

	return &appContext{cfg: cfg, store: st, cancel: cancel}, nil
}

func (a *appContext) shutdown() {
	a.store.Stop()
	a.cancel()
	shutdownLogger()
}

func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			// Best effort - can't log the shutdown error
			Error("Logger shutdown error: %v\n", err)
		}
	}
}

// initializeLogger sets up the operational logger based on configuration
func initializeLogger(cfg *config.Config, quiet bool) error {
	logger = log.NewLogger()

	var configArgs []string

	if quiet {
		// In quiet mode, disable ALL logging output
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=false",
			"level=255")

		return logger.ApplyConfigString(configArgs...)
	}

	levelValue, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	configArgs = append(configArgs, fmt.Sprintf("level=%d", levelValue))

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "disable_file=true", "enable_stdout=false")

	case "stdout":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stdout")

	case "stderr":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stderr")

	case "file":
		configArgs = append(configArgs, "enable_stdout=false")
		configureFileLogging(&configArgs, cfg)

	case "both":
		configArgs = append(configArgs, "enable_stdout=true")
		configureFileLogging(&configArgs, cfg)
		configureConsoleTarget(&configArgs, cfg)

	default:
		return fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	if cfg.Logging.Console != nil && cfg.Logging.Console.Format != "" {
		configArgs = append(configArgs, fmt.Sprintf("format=%s", cfg.Logging.Console.Format))
	}

	return logger.ApplyConfigString(configArgs...)
}

// configureFileLogging sets up file-based logging parameters
func configureFileLogging(configArgs *[]string, cfg *config.Config) {
	if cfg.Logging.File != nil {
		*configArgs = append(*configArgs,
			fmt.Sprintf("directory=%s", cfg.Logging.File.Directory),
			fmt.Sprintf("name=%s", cfg.Logging.File.Name),
			fmt.Sprintf("max_size_mb=%d", cfg.Logging.File.MaxSizeMB),
			fmt.Sprintf("max_total_size_mb=%d", cfg.Logging.File.MaxTotalSizeMB))
	}
}

// configureConsoleTarget sets up console output parameters
func configureConsoleTarget(configArgs *[]string, cfg *config.Config) {
	target := "stderr" // default

	if cfg.Logging.Console != nil && cfg.Logging.Console.Target != "" {
		target = cfg.Logging.Console.Target
	}

	*configArgs = append(*configArgs, fmt.Sprintf("stdout_target=%s", target))
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}

// annotateCallSite prefixes a message with the caller's source location, the
// enrichment contract expected by the store
func annotateCallSite(message string) string {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return message
	}
	fn := "?"
	if f := runtime.FuncForPC(pc); f != nil {
		name := f.Name()
		fn = name[strings.LastIndex(name, ".")+1:]
	}
	return fmt.Sprintf("%s:%d %s() %s", filepath.Base(file), line, fn, message)
}

func printEntry(entry core.LogEntry, asJSON bool) {
	if asJSON {
		line, err := codec.Encode(entry)
		if err != nil {
			return
		}
		Print("%s", line)
		return
	}
	Print("%s [%s] %s %s\n",
		entry.Timestamp.Format(time.RFC3339),
		entry.Level,
		entry.Group,
		entry.Message)
}
