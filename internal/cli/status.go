package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Verify the configuration and show the domain overview",
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := buildEngine()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("App root: %s\n\n", eng.AppPath())

		domains, err := eng.ListDomains()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, d := range domains.Domains {
			fmt.Printf("  %-10s %4d files  (%s)\n", d.Domain, d.Files, d.Path)
		}
	},
}
