// Package kernel is the aggregation facade: it composes the pagerank and
// hub packages into "critical node" rankings and reports summary graph
// statistics. It is the only package in this module that wires two other
// kernel packages together; graph, pagerank, hub, and resolver each stand
// alone.
package kernel

import (
	"errors"
	"sort"

	"github.com/anthropics/codenav/internal/graph"
	"github.com/anthropics/codenav/internal/hub"
	"github.com/anthropics/codenav/internal/pagerank"
)

// ErrInvalidInput is a sentinel for malformed caller-supplied graph/index
// input. No package in this module returns it: the CLI input readers and
// the MCP argument decoders report malformed input with their own
// unwrapped errors. The kernel packages themselves never return errors
// for numeric or structural issues.
var ErrInvalidInput = errors.New("invalid input")

// CriticalNode pairs a node with its PageRank score and in-degree, the
// zipped triple GetCriticalNodes ranks by.
type CriticalNode struct {
	Node     int     `json:"node" yaml:"node"`
	Score    float64 `json:"score" yaml:"score"`
	InDegree int     `json:"in_degree" yaml:"in_degree"`
}

// GetCriticalNodes computes PageRank with max_iterations=100,
// tolerance=1e-6 (this facade's fixed contract, independent of whatever
// defaults a caller might otherwise configure), zips in in-degree, sorts
// by PageRank score descending, and truncates to topN. Nodes with
// zero in-degree are included if their score places them in the top N.
func GetCriticalNodes(numNodes int, edges []graph.Edge, topN int, damping float64) []CriticalNode {
	g := graph.New(numNodes, edges)

	prResult := pagerank.Compute(g, pagerank.Config{
		Damping:       damping,
		MaxIterations: 100,
		Tolerance:     1e-6,
	})

	combined := make([]CriticalNode, len(prResult.Scores))
	for i, score := range prResult.Scores {
		combined[i] = CriticalNode{
			Node:     i,
			Score:    score,
			InDegree: g.InDegree(i),
		}
	}

	sort.Slice(combined, func(i, j int) bool {
		return combined[i].Score > combined[j].Score
	})

	if topN < 0 {
		topN = 0
	}
	if topN > len(combined) {
		topN = len(combined)
	}
	return combined[:topN]
}

// GraphStats reports summary statistics over the full graph, including
// nodes that never appear as an edge endpoint.
//
// AvgInDegree and AvgOutDegree here divide by numNodes (all nodes), which
// is a deliberate divergence from hub.Stats.AvgInDegree (which divides
// only by nodes that have in-edges) — both definitions are preserved
// verbatim since downstream callers may depend on either.
type GraphStats struct {
	TotalEdges    int     `json:"total_edges" yaml:"total_edges"`
	AvgInDegree   float64 `json:"avg_in_degree" yaml:"avg_in_degree"`
	AvgOutDegree  float64 `json:"avg_out_degree" yaml:"avg_out_degree"`
	MaxInDegree   int     `json:"max_in_degree" yaml:"max_in_degree"`
	MaxOutDegree  int     `json:"max_out_degree" yaml:"max_out_degree"`
	IsolatedNodes int     `json:"isolated_nodes" yaml:"isolated_nodes"`
}

// ComputeGraphStats reports graph-wide statistics. TotalEdges is the
// length of the input edge list before validation, not the number of
// edges actually accepted into the graph.
func ComputeGraphStats(numNodes int, edges []graph.Edge) GraphStats {
	g := graph.New(numNodes, edges)

	stats := GraphStats{TotalEdges: len(edges)}
	if numNodes == 0 {
		return stats
	}

	totalIn, totalOut := 0, 0
	for i := 0; i < numNodes; i++ {
		in, out := g.InDegree(i), g.OutDegree(i)
		totalIn += in
		totalOut += out
		if in > stats.MaxInDegree {
			stats.MaxInDegree = in
		}
		if out > stats.MaxOutDegree {
			stats.MaxOutDegree = out
		}
		if in == 0 && out == 0 {
			stats.IsolatedNodes++
		}
	}

	stats.AvgInDegree = float64(totalIn) / float64(numNodes)
	stats.AvgOutDegree = float64(totalOut) / float64(numNodes)

	return stats
}

// DetectHubs is a thin passthrough exposing hub.FindHubs at the facade
// level, so callers that only import package kernel can reach every
// operation.
func DetectHubs(numNodes int, edges []graph.Edge, threshold int) []hub.Hub {
	g := graph.New(numNodes, edges)
	return hub.FindHubs(g, threshold)
}

// FastPageRank is a thin passthrough exposing pagerank.Compute at the
// facade level.
func FastPageRank(numNodes int, edges []graph.Edge, damping float64, maxIterations int, tolerance float64) []float64 {
	g := graph.New(numNodes, edges)
	result := pagerank.Compute(g, pagerank.Config{
		Damping:       damping,
		MaxIterations: maxIterations,
		Tolerance:     tolerance,
	})
	return result.Scores
}
