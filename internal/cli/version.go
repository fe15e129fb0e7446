package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// SetVersionInfo sets the build version info from ldflags
func SetVersionInfo(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of FleetLens",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fleetlens %s (commit: %s, built: %s)\n", buildVersion, buildCommit, buildDate)
	},
}
