package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/breakout
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of breakout",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "breakout %s\n", version)
	},
}
