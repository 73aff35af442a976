// FILE: logvault/src/cmd/logvault/usage.go
package main

import (
	"fmt"
	"os"
)

func showUsage() {
	fmt.Fprintf(os.Stderr, "LogVault - Bounded Per-Group Log Store\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  write      Append a log entry to a group\n")
	fmt.Fprintf(os.Stderr, "  query      Read entries from a group with filters\n")
	fmt.Fprintf(os.Stderr, "  groups     List groups with counts and last-write times\n")
	fmt.Fprintf(os.Stderr, "  init       Write the effective configuration to a file\n")
	fmt.Fprintf(os.Stderr, "  version    Show version information\n")
	fmt.Fprintf(os.Stderr, "  help       Display help information\n")

	fmt.Fprintf(os.Stderr, "\nCommon options:\n")
	fmt.Fprintf(os.Stderr, "  -config string\n\tConfig file path\n")
	fmt.Fprintf(os.Stderr, "  -quiet\n\tSuppress non-log output\n")

	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  # Append an entry to the orders group\n")
	fmt.Fprintf(os.Stderr, "  %s write -group orders -level info \"order 1042 accepted\"\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "  # Read the 20 most recent errors from a date window\n")
	fmt.Fprintf(os.Stderr, "  %s query -group orders -level error -start 2026-08-01 -end 2026-08-31 -limit 20\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "  # List all groups\n")
	fmt.Fprintf(os.Stderr, "  %s groups\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "Environment Variables:\n")
	fmt.Fprintf(os.Stderr, "  LOGVAULT_CONFIG_FILE   Config file path\n")
	fmt.Fprintf(os.Stderr, "  LOGVAULT_CONFIG_DIR    Config directory\n")
}
