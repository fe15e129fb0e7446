package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tvandenberg/fleetlens/internal/mcp"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the tool catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, tool := range mcp.ToolCatalog() {
			fmt.Printf("%s\n  %s\n", tool.Name, tool.Description)
			if len(tool.InputSchema.Properties) > 0 {
				names := make([]string, 0, len(tool.InputSchema.Properties))
				for name := range tool.InputSchema.Properties {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					prop := tool.InputSchema.Properties[name]
					marker := "optional"
					if contains(tool.InputSchema.Required, name) {
						marker = "required"
					}
					line := fmt.Sprintf("    %-12s %s (%s)", name, prop.Type, marker)
					if len(prop.Enum) > 0 {
						line += " [" + strings.Join(prop.Enum, ", ") + "]"
					}
					fmt.Println(line)
				}
			}
			fmt.Println()
		}
	},
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
