package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wayfare",
		Short: "Client-side navigation for single-page applications",
		Long: `Wayfare is a navigation library for single-page applications.

It matches requested paths against a declarative route tree, drives
matches through an interceptor pipeline, and keeps browser history in
sync through a pluggable host. This CLI runs the demo application that
exercises the full stack.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
