// Package cmd contains the codenav CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the current version of codenav.
var Version = "0.1.0"

var (
	verbose      bool
	configPath   string
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "codenav",
	Short: "Graph analysis CLI for code navigation tooling",
	Long: `codenav computes dependency-graph metrics for code navigation tools.

It ranks nodes by PageRank importance, flags import/module hubs, resolves
relative import strings against a file index, and reports whole-graph
statistics. The graph itself is supplied by the caller as a dense integer
node/edge list; codenav never scans a codebase on its own.

Global Flags:
  --format    Output format: yaml (default) | json
  --config    Path to config file (default: .codenav/config.yaml)

Examples:
  codenav rank --edges edges.txt --nodes 100 --top 20
  codenav hubs --edges edges.txt --nodes 100 --threshold 3
  codenav resolve --index index.txt --extensions .py,.js src/utils
  codenav stats --edges edges.txt --nodes 100
  codenav serve

See 'codenav <command> --help' for command-specific options.`,
	Version: Version,
}

// Execute adds all child commands to the root command and runs it. Called
// once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .codenav/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "yaml", "Output format (yaml|json)")
}
