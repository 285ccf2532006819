package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anthropics/codenav/internal/graph"
	"github.com/anthropics/codenav/internal/hub"
)

var hubsCmd = &cobra.Command{
	Use:   "hubs",
	Short: "Find hub nodes by in-degree threshold",
	Long: `Find nodes whose in-degree meets or exceeds a threshold, and classify
each by its in-degree (critical|high|medium|low|none).

Examples:
  codenav hubs --edges edges.txt --nodes 100
  codenav hubs --edges edges.txt --nodes 100 --threshold 5`,
	RunE: runHubs,
}

var (
	hubsEdgesPath string
	hubsNodes     int
	hubsThreshold int
)

func init() {
	rootCmd.AddCommand(hubsCmd)

	hubsCmd.Flags().StringVar(&hubsEdgesPath, "edges", "", "Path to edge list file (required)")
	hubsCmd.Flags().IntVar(&hubsNodes, "nodes", 0, "Number of nodes in the graph (required)")
	hubsCmd.Flags().IntVar(&hubsThreshold, "threshold", 0, "Minimum in-degree to qualify as a hub (default: config or 3)")
	hubsCmd.MarkFlagRequired("edges")
	hubsCmd.MarkFlagRequired("nodes")
}

type hubRow struct {
	Node           int    `json:"node" yaml:"node"`
	InDegree       int    `json:"in_degree" yaml:"in_degree"`
	Classification string `json:"classification" yaml:"classification"`
}

func runHubs(cmd *cobra.Command, args []string) error {
	edges, err := readEdges(hubsEdgesPath)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	threshold := cfg.Hub.DefaultThreshold
	if hubsThreshold != 0 {
		threshold = hubsThreshold
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "finding hubs: %d nodes, %d edges, threshold=%d\n",
			hubsNodes, len(edges), threshold)
	}

	g := graph.New(hubsNodes, edges)
	hubs := hub.FindHubs(g, threshold)

	rows := make([]hubRow, len(hubs))
	for i, h := range hubs {
		rows[i] = hubRow{
			Node:           h.Node,
			InDegree:       h.InDegree,
			Classification: string(hub.Classify(h.InDegree)),
		}
	}

	return writeResult(cmd.OutOrStdout(), map[string]interface{}{
		"results": rows,
		"count":   len(rows),
		"stats":   hub.GetStats(g),
	})
}
