package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fleetlens",
	Short: "Read-only codebase introspection for the fleet app",
	Long: `FleetLens - Codebase Introspection for AI Assistants

FleetLens exposes a fixed catalog of read-only queries over the fleet
Laravel application: routes, domain structure, tests, Vue components and
database tables. An MCP-compatible assistant asks FleetLens instead of
grepping the tree.

The target application root comes from FLEETLENS_APP_PATH.

Quick Start:
  fleetlens serve          Start the MCP server on stdio
  fleetlens tools          Print the tool catalog
  fleetlens check <path>   Run static analysis on a path
  fleetlens status         Verify the configuration`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&appPathFlag, "app", "a", "", "Laravel application root (overrides FLEETLENS_APP_PATH)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}
