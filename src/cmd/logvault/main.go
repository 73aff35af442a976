// FILE: logvault/src/cmd/logvault/main.go
package main

import (
	"os"
)

func main() {
	InitOutputHandler(false)

	router := NewCommandRouter()
	router.Route(os.Args)

	// Route exits after handling a command; reaching here means none was given
	showUsage()
	os.Exit(1)
}
