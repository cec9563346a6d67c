// Package cli provides the Cobra command structure for fixups.
package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/fixups/internal/configloader"
	"github.com/yaklabco/fixups/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root fixups command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "fixups",
		Short: "One-shot repairs for project documents and pages",
		Long: `fixups applies fixed, one-time text repairs to specific project files.

Each subcommand rewrites its own target in a single pass and prints a
confirmation when done. Targets default to the paths the repairs were written
for; pass a path, set FIXUPS_* variables, or add a .fixups.yml to point them
elsewhere. Running a repair twice is safe: the second run changes nothing.

` + envHelp(),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "info"
			if debug {
				level = "debug"
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
			logging.SetDefault(logger)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logger))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output: auto, always, never")

	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newUnescapeCommand())
	rootCmd.AddCommand(newDocsCommand())
	rootCmd.AddCommand(newRestoreCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// envHelp lists the supported environment variables for the root help text.
func envHelp() string {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		width = max(width, len(name))
	}
	slices.Sort(names)

	var builder strings.Builder
	builder.WriteString("Environment:\n")
	for _, name := range names {
		fmt.Fprintf(&builder, "  %-*s  %s\n", width, name, vars[name])
	}
	return strings.TrimSuffix(builder.String(), "\n")
}
