// Package main provides the CLI entry point for chart-gridlines.
package main

import (
	"fmt"
	"log"
	"os"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// stdout carries documents (and MCP in serve mode), so logs go to stderr
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("GRIDLINES_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("chart-gridlines %s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if err := newRootCmd(debug).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
