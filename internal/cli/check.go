package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Run static analysis on a path inside the app",
	Long: `Run phpstan on a path relative to the application root and print its
output verbatim. A non-zero phpstan exit means findings, not failure; the
command only fails when the analyzer could not run at all.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := buildEngine()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		report, err := eng.StaticAnalysis(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(report.Output)
		if !report.Clean {
			os.Exit(1)
		}
	},
}
