package pagerank

import (
	"math"
	"testing"

	"github.com/anthropics/codenav/internal/graph"
)

func floatEquals(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestCompute_EmptyGraph(t *testing.T) {
	g := graph.New(0, nil)
	result := Compute(g, DefaultConfig())

	if len(result.Scores) != 0 {
		t.Errorf("expected empty scores, got %v", result.Scores)
	}
}

func TestCompute_NonNegative(t *testing.T) {
	g := graph.New(4, []graph.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	result := Compute(g, DefaultConfig())

	for i, s := range result.Scores {
		if s < 0 {
			t.Errorf("scores[%d] = %f, expected non-negative", i, s)
		}
	}
}

func TestCompute_NormalizesToOne(t *testing.T) {
	g := graph.New(5, []graph.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}})
	result := Compute(g, DefaultConfig())

	sum := 0.0
	for _, s := range result.Scores {
		sum += s
	}
	if !floatEquals(sum, 1.0, 1e-9) {
		t.Errorf("expected sum 1.0 within 1e-9, got %f", sum)
	}
}

func TestCompute_HubGetsHigherScore(t *testing.T) {
	// 0, 1, 2 all point to 3.
	g := graph.New(4, []graph.Edge{{0, 3}, {1, 3}, {2, 3}})
	result := Compute(g, DefaultConfig())

	for i := 0; i < 3; i++ {
		if result.Scores[3] <= result.Scores[i] {
			t.Errorf("expected scores[3] > scores[%d], got %f <= %f", i, result.Scores[3], result.Scores[i])
		}
	}
}

func TestCompute_CycleIsNearlySymmetric(t *testing.T) {
	g := graph.New(3, []graph.Edge{{0, 1}, {1, 2}, {2, 0}})
	result := Compute(g, DefaultConfig())

	maxScore, minScore := result.Scores[0], result.Scores[0]
	for _, s := range result.Scores {
		if s > maxScore {
			maxScore = s
		}
		if s < minScore {
			minScore = s
		}
	}
	if maxScore-minScore >= 0.01 {
		t.Errorf("expected cycle scores within 0.01 of each other, spread = %f", maxScore-minScore)
	}
}

func TestCompute_AllDanglingIsUniform(t *testing.T) {
	g := graph.New(3, nil)
	result := Compute(g, DefaultConfig())

	expected := 1.0 / 3.0
	for i, s := range result.Scores {
		if !floatEquals(s, expected, 0.01) {
			t.Errorf("scores[%d] = %f, expected ~%f", i, s, expected)
		}
	}
}

func TestCompute_ChainSinkGetsMoreThanSource(t *testing.T) {
	g := graph.New(4, []graph.Edge{{0, 1}, {1, 2}, {2, 3}})
	result := Compute(g, DefaultConfig())

	if result.Scores[3] <= result.Scores[0] {
		t.Errorf("expected sink scores[3] > source scores[0], got %f <= %f", result.Scores[3], result.Scores[0])
	}
}

func TestCompute_ConvergesAndReportsIterations(t *testing.T) {
	g := graph.New(4, []graph.Edge{{0, 1}, {1, 2}, {2, 3}})
	result := Compute(g, DefaultConfig())

	if !result.Converged {
		t.Errorf("expected convergence within %d iterations", DefaultConfig().MaxIterations)
	}
	if result.Iterations <= 0 {
		t.Errorf("expected at least one iteration, got %d", result.Iterations)
	}
}

func TestCompute_LargeGraphUsesParallelPath(t *testing.T) {
	// Exceeds the sequential-path threshold so the errgroup-driven chunked
	// update runs; the formula is identical either way, so this only
	// guards against a data race or an off-by-one in chunk boundaries.
	const n = 1000
	edges := make([]graph.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, graph.Edge{Src: i, Tgt: (i + 1) % n})
	}
	g := graph.New(n, edges)
	result := Compute(g, DefaultConfig())

	sum := 0.0
	for _, s := range result.Scores {
		if s < 0 {
			t.Fatalf("negative score in large graph")
		}
		sum += s
	}
	if !floatEquals(sum, 1.0, 1e-9) {
		t.Errorf("expected sum 1.0, got %f", sum)
	}
}

func TestCompute_SingleNode(t *testing.T) {
	g := graph.New(1, nil)
	result := Compute(g, DefaultConfig())

	if len(result.Scores) != 1 || !floatEquals(result.Scores[0], 1.0, 1e-9) {
		t.Errorf("expected single score of 1.0, got %v", result.Scores)
	}
}
