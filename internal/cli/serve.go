package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tvandenberg/fleetlens/internal/analysis"
	"github.com/tvandenberg/fleetlens/internal/config"
	"github.com/tvandenberg/fleetlens/internal/engine"
	"github.com/tvandenberg/fleetlens/internal/mcp"
	"github.com/tvandenberg/fleetlens/internal/routes"
	"github.com/tvandenberg/fleetlens/internal/schema"
)

var appPathFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start the MCP (Model Context Protocol) server.

The server communicates via stdio using JSON-RPC: requests on stdin, one
response per line on stdout, diagnostics on stderr. Point an MCP-compatible
assistant (Claude Desktop, Cursor) at this command.

The Laravel application root is taken from --app, or FLEETLENS_APP_PATH
when the flag is absent.`,
	Run: runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	eng, err := buildEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "fleetlens serving %s\n", eng.AppPath())
	mcp.NewServer(eng).Run()
}

// buildEngine loads the configuration and wires the engine with its
// production collaborators.
func buildEngine() (*engine.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if appPathFlag != "" {
		cfg.AppPath = appPathFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cache := routes.NewCache(
		routes.ArtisanLister(cfg.PHPBinary, cfg.AppPath, cfg.ArtisanTimeout),
		cfg.RouteCacheTTL,
	)
	inspector := schema.NewInspector(cfg.AppPath)
	analyzer := analysis.NewRunner(cfg.AppPath, cfg.AnalyzeTimeout)

	return engine.New(cfg.AppPath, cache, inspector, analyzer), nil
}
