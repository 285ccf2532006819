// Package hub classifies nodes in a dependency graph by in-degree,
// identifying files that act as hubs — imported by many others.
package hub

import (
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/anthropics/codenav/internal/graph"
)

// Classification is the fixed hub-level enum returned by Classify. Values
// are lowercase to match this kernel's external wire contract.
type Classification string

const (
	Critical Classification = "critical"
	High     Classification = "high"
	Medium   Classification = "medium"
	Low      Classification = "low"
	None     Classification = "none"
)

// Classify returns the hub classification for an in-degree value. Fixed
// contract thresholds, not configuration: critical >= 8, high >= 5,
// medium >= 3, low >= 2, none otherwise. Implemented as a flat branch
// rather than a dispatched method, per this kernel's "monomorphic
// classifier" design note.
func Classify(inDegree int) Classification {
	switch {
	case inDegree >= 8:
		return Critical
	case inDegree >= 5:
		return High
	case inDegree >= 3:
		return Medium
	case inDegree >= 2:
		return Low
	default:
		return None
	}
}

// Hub pairs a node id with its in-degree, as returned by FindHubs.
type Hub struct {
	Node     int `json:"node" yaml:"node"`
	InDegree int `json:"in_degree" yaml:"in_degree"`
}

// Score pairs a node id with its combined hub score, as returned by
// ComputeHubScores.
type Score struct {
	Node  int     `json:"node" yaml:"node"`
	Value float64 `json:"value" yaml:"value"`
}

// Stats reports aggregate hub distribution for a graph.
type Stats struct {
	TotalNodes       int `json:"total_nodes" yaml:"total_nodes"`
	NodesWithImports int `json:"nodes_with_imports" yaml:"nodes_with_imports"`
	TotalHubs        int `json:"total_hubs" yaml:"total_hubs"`
	CriticalHubs     int `json:"critical_hubs" yaml:"critical_hubs"`
	MaxInDegree      int `json:"max_in_degree" yaml:"max_in_degree"`
	// AvgInDegree averages over nodes that have at least one in-edge, not
	// over all nodes — a deliberate contract divergence from
	// kernel.GraphStats.AvgInDegree, preserved for output compatibility.
	AvgInDegree float64 `json:"avg_in_degree" yaml:"avg_in_degree"`
}

// FindHubs returns every node whose in-degree is at least threshold,
// sorted by in-degree descending and, for ties, by node id ascending for
// reproducible output (the sort order for ties is otherwise unspecified by
// the contract).
func FindHubs(g *graph.Graph, threshold int) []Hub {
	inDegrees := g.InDegrees()

	hubs := make([]Hub, 0, len(inDegrees))
	for node, deg := range inDegrees {
		if deg >= threshold {
			hubs = append(hubs, Hub{Node: node, InDegree: deg})
		}
	}

	sort.Slice(hubs, func(i, j int) bool {
		if hubs[i].InDegree != hubs[j].InDegree {
			return hubs[i].InDegree > hubs[j].InDegree
		}
		return hubs[i].Node < hubs[j].Node
	})

	return hubs
}

// minChunk mirrors pagerank's sequential/parallel crossover: below 2x
// this many nodes in total, scoring runs sequentially in the calling
// goroutine.
const minChunk = 256

// ComputeHubScores returns, for every node with a positive combined score,
// (node, score) sorted by score descending (ties by node id ascending).
// Nodes with in-degree 0 are omitted, since their score is always 0.
//
//	score = in_degree * (1 + ln(1 + out_degree))
func ComputeHubScores(g *graph.Graph) []Score {
	n := g.NumNodes
	raw := make([]float64, n)

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}

	if n < minChunk*2 || workers == 1 {
		for i := 0; i < n; i++ {
			raw[i] = scoreOf(g, i)
		}
	} else {
		chunk := (n + workers - 1) / workers
		var eg errgroup.Group
		for start := 0; start < n; start += chunk {
			start := start
			end := start + chunk
			if end > n {
				end = n
			}
			eg.Go(func() error {
				for i := start; i < end; i++ {
					raw[i] = scoreOf(g, i)
				}
				return nil
			})
		}
		_ = eg.Wait()
	}

	scores := make([]Score, 0, n)
	for i, v := range raw {
		if v > 0 {
			scores = append(scores, Score{Node: i, Value: v})
		}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Value != scores[j].Value {
			return scores[i].Value > scores[j].Value
		}
		return scores[i].Node < scores[j].Node
	})

	return scores
}

func scoreOf(g *graph.Graph, i int) float64 {
	inDeg := float64(g.InDegree(i))
	if inDeg == 0 {
		return 0
	}
	outDeg := float64(g.OutDegree(i))
	return inDeg * (1.0 + math.Log(1.0+outDeg))
}

// GetStats computes aggregate hub statistics for a graph.
func GetStats(g *graph.Graph) Stats {
	inDegrees := g.InDegrees()

	stats := Stats{
		TotalNodes:       g.NumNodes,
		NodesWithImports: len(inDegrees),
	}

	if len(inDegrees) == 0 {
		return stats
	}

	total := 0
	for _, deg := range inDegrees {
		total += deg
		if deg > stats.MaxInDegree {
			stats.MaxInDegree = deg
		}
		if deg >= 3 {
			stats.TotalHubs++
		}
		if deg >= 8 {
			stats.CriticalHubs++
		}
	}
	stats.AvgInDegree = float64(total) / float64(len(inDegrees))

	return stats
}
