package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anthropics/codenav/internal/resolver"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [imports...]",
	Short: "Resolve import strings against a file index",
	Long: `Resolve one or more import strings to the file paths they name, using
a fixed cascade of matching strategies (exact, extension probe,
directory index, normalized lookup, suffix match).

Examples:
  codenav resolve --index index.txt --extensions .py,.js src/utils ./api/client
  codenav resolve --index index.txt --extensions .ts,.tsx components/Button`,
	RunE: runResolve,
}

var (
	resolveIndexPath  string
	resolveExtensions string
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveIndexPath, "index", "", "Path to file index (required)")
	resolveCmd.Flags().StringVar(&resolveExtensions, "extensions", "", "Comma-separated extension probe list, e.g. .py,.js")
	resolveCmd.MarkFlagRequired("index")
}

func runResolve(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one import string is required")
	}

	index, err := readFileIndex(resolveIndexPath)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	extensions := cfg.Resolver.Extensions
	if resolveExtensions != "" {
		extensions = splitExtensions(resolveExtensions)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "resolving %d imports against %d indexed files, extensions=%v\n",
			len(args), len(index), extensions)
	}

	r := resolver.New(index, extensions)
	results := r.ResolveBatch(args)

	resolved := 0
	for _, res := range results {
		if res.Found {
			resolved++
		}
	}
	stats := resolver.Stats{
		Total:      len(results),
		Resolved:   resolved,
		Unresolved: len(results) - resolved,
	}
	if stats.Total > 0 {
		stats.ResolutionRate = float64(resolved) / float64(stats.Total)
	}

	return writeResult(cmd.OutOrStdout(), map[string]interface{}{
		"results": results,
		"stats":   stats,
	})
}
