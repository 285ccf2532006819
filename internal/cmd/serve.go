package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthropics/codenav/internal/cache"
	"github.com/anthropics/codenav/internal/config"
	"github.com/anthropics/codenav/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long: `Start an MCP (Model Context Protocol) server over stdio, exposing
codenav_pagerank, codenav_hubs, codenav_critical_nodes,
codenav_resolve_imports, and codenav_graph_stats as tools.

Examples:
  codenav serve
  codenav serve --no-cache`,
	RunE: runServe,
}

var serveNoCache bool

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveNoCache, "no-cache", false, "Disable the SQLite result cache; every call recomputes")
}

func runServe(cmd *cobra.Command, args []string) error {
	var c *cache.Cache
	if !serveNoCache {
		dir, err := config.EnsureConfigDir(".")
		if err != nil {
			return fmt.Errorf("ensure config dir: %w", err)
		}
		c, err = cache.Open(dir)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer c.Close()
	}

	srv := mcp.New(c)
	return srv.ServeStdio()
}
