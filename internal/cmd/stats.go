package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anthropics/codenav/internal/kernel"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report whole-graph statistics",
	Long: `Compute degree distribution and isolation counts over the full graph.

Examples:
  codenav stats --edges edges.txt --nodes 100`,
	RunE: runStats,
}

var (
	statsEdgesPath string
	statsNodes     int
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsEdgesPath, "edges", "", "Path to edge list file (required)")
	statsCmd.Flags().IntVar(&statsNodes, "nodes", 0, "Number of nodes in the graph (required)")
	statsCmd.MarkFlagRequired("edges")
	statsCmd.MarkFlagRequired("nodes")
}

func runStats(cmd *cobra.Command, args []string) error {
	edges, err := readEdges(statsEdgesPath)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "computing stats: %d nodes, %d edges\n", statsNodes, len(edges))
	}

	stats := kernel.ComputeGraphStats(statsNodes, edges)
	return writeResult(cmd.OutOrStdout(), stats)
}
