// Package pagerank computes stationary PageRank distributions over a
// directed graph using power iteration with dangling-node mass
// redistribution.
package pagerank

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/anthropics/codenav/internal/graph"
)

// Config holds the power-iteration parameters.
type Config struct {
	// Damping is the probability of following an edge rather than
	// teleporting. Standard value is 0.85.
	Damping float64
	// MaxIterations bounds the number of power-iteration rounds.
	MaxIterations int
	// Tolerance is the L1 convergence threshold between iterations.
	Tolerance float64
}

// DefaultConfig returns the damping/iterations/tolerance defaults named in
// this kernel's external interface (damping=0.85, max_iterations=100,
// tolerance=1e-6).
func DefaultConfig() Config {
	return Config{
		Damping:       0.85,
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// Result carries the PageRank score vector plus convergence diagnostics
// for callers that want to report them (the core numeric contract only
// requires Scores).
type Result struct {
	Scores     []float64
	Iterations int
	Converged  bool
}

// minChunk is the smallest per-goroutine slice of work worth the overhead
// of spinning up a worker pool; below 2x this many nodes, Compute runs the
// per-node update sequentially in the calling goroutine.
const minChunk = 256

// Compute runs power iteration over g and returns the stationary score
// vector, dense over [0, g.NumNodes).
//
// new[i] = (1-d)/N + d*(D/N) + d * sum_{j in in(i)} old[j]/outDegree[j]
//
// where D is the dangling mass recomputed from the previous iteration.
// Stops early once the L1 difference between iterations drops below
// cfg.Tolerance, and always renormalizes the final vector to sum to 1
// (skipped only when the total is exactly zero, which requires N == 0).
func Compute(g *graph.Graph, cfg Config) Result {
	n := g.NumNodes
	if n == 0 {
		return Result{Scores: []float64{}, Converged: true}
	}

	nf := float64(n)
	teleport := (1.0 - cfg.Damping) / nf
	dangling := g.DanglingNodes()

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / nf
	}
	next := make([]float64, n)

	result := Result{Scores: scores}

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		danglingSum := sumIndices(scores, dangling)
		danglingContribution := cfg.Damping * danglingSum / nf

		updateScores(g, scores, next, teleport, danglingContribution, cfg.Damping)

		l1 := l1Difference(scores, next)
		scores, next = next, scores
		result.Iterations = iter + 1

		if l1 < cfg.Tolerance {
			result.Converged = true
			break
		}
	}

	normalize(scores)
	result.Scores = scores
	return result
}

// updateScores computes next[i] for every node, splitting the node range
// across a bounded worker pool when there is enough work to amortize the
// fork/join cost. Each goroutine only ever writes to disjoint indices of
// next, so no synchronization beyond the join is needed.
func updateScores(g *graph.Graph, old, next []float64, teleport, danglingContribution, damping float64) {
	n := len(next)
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}

	if n < minChunk*2 || workers == 1 {
		for i := 0; i < n; i++ {
			next[i] = updateOne(g, old, i, teleport, danglingContribution, damping)
		}
		return
	}

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
				next[i] = updateOne(g, old, i, teleport, danglingContribution, damping)
			}
			return nil
		})
	}
	_ = eg.Wait() // goroutines above never return an error
}

func updateOne(g *graph.Graph, old []float64, i int, teleport, danglingContribution, damping float64) float64 {
	score := teleport + danglingContribution
	for _, j := range g.InNeighbors(i) {
		outDeg := g.OutDegree(j)
		if outDeg == 0 {
			// Should not occur: j has an edge to i, so its out-degree is
			// at least 1. Clamp rather than divide by zero.
			continue
		}
		score += damping * old[j] / float64(outDeg)
	}
	return score
}

func sumIndices(values []float64, indices []int) float64 {
	sum := 0.0
	for _, i := range indices {
		sum += values[i]
	}
	return sum
}

func l1Difference(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		sum += diff
	}
	return sum
}

func normalize(scores []float64) {
	total := 0.0
	for _, s := range scores {
		total += s
	}
	if total == 0 {
		return
	}
	for i := range scores {
		scores[i] /= total
	}
}
