package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anthropics/codenav/internal/kernel"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank nodes by PageRank importance",
	Long: `Compute PageRank over a dependency graph and report the top nodes
combined with their in-degree, matching the critical-node facade that
pairs PageRank importance with raw fan-in.

Examples:
  codenav rank --edges edges.txt --nodes 100
  codenav rank --edges edges.txt --nodes 100 --top 50 --damping 0.9`,
	RunE: runRank,
}

var (
	rankEdgesPath string
	rankNodes     int
	rankTop       int
	rankDamping   float64
)

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringVar(&rankEdgesPath, "edges", "", "Path to edge list file (required)")
	rankCmd.Flags().IntVar(&rankNodes, "nodes", 0, "Number of nodes in the graph (required)")
	rankCmd.Flags().IntVar(&rankTop, "top", 20, "Show top N nodes by PageRank")
	rankCmd.Flags().Float64Var(&rankDamping, "damping", 0, "Damping factor override (default: config or 0.85)")
	rankCmd.MarkFlagRequired("edges")
	rankCmd.MarkFlagRequired("nodes")
}

func runRank(cmd *cobra.Command, args []string) error {
	edges, err := readEdges(rankEdgesPath)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	damping := cfg.PageRank.Damping
	if rankDamping != 0 {
		damping = rankDamping
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "ranking %d nodes, %d edges, damping=%.2f, top=%d\n",
			rankNodes, len(edges), damping, rankTop)
	}

	nodes := kernel.GetCriticalNodes(rankNodes, edges, rankTop, damping)
	return writeResult(cmd.OutOrStdout(), map[string]interface{}{
		"results": nodes,
		"count":   len(nodes),
	})
}
