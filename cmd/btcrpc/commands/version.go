// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Args:  cobra.NoArgs,
	// The client is not needed to print the version.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Version:", Version)
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					fmt.Fprintln(out, "Git Commit:", s.Value)
				}
			}
		}
		fmt.Fprintln(out, "Architecture:", runtime.GOARCH)
		fmt.Fprintln(out, "Go Version:", runtime.Version())
		fmt.Fprintln(out, "Operating System:", runtime.GOOS)
	},
}
