package hub

import (
	"testing"

	"github.com/anthropics/codenav/internal/graph"
)

func TestFindHubs(t *testing.T) {
	g := graph.New(4, []graph.Edge{{0, 3}, {1, 3}, {2, 3}, {0, 1}})
	hubs := FindHubs(g, 3)

	if len(hubs) != 1 {
		t.Fatalf("expected 1 hub, got %d: %v", len(hubs), hubs)
	}
	if hubs[0] != (Hub{Node: 3, InDegree: 3}) {
		t.Errorf("expected (3, 3), got %v", hubs[0])
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		inDegree int
		want     Classification
	}{
		{10, Critical},
		{8, Critical},
		{6, High},
		{5, High},
		{3, Medium},
		{2, Low},
		{1, None},
		{0, None},
	}
	for _, c := range cases {
		if got := Classify(c.inDegree); got != c.want {
			t.Errorf("Classify(%d) = %s, want %s", c.inDegree, got, c.want)
		}
	}
}

func TestInOutDegree(t *testing.T) {
	g := graph.New(3, []graph.Edge{{0, 1}, {0, 2}, {1, 2}})

	if got := g.OutDegree(0); got != 2 {
		t.Errorf("expected out-degree(0) = 2, got %d", got)
	}
	if got := g.InDegree(2); got != 2 {
		t.Errorf("expected in-degree(2) = 2, got %d", got)
	}
}

func TestGetStats(t *testing.T) {
	edges := []graph.Edge{
		{0, 5}, {1, 5}, {2, 5}, {3, 5}, {4, 5},
		{0, 6}, {1, 6}, {2, 6},
	}
	g := graph.New(7, edges)
	stats := GetStats(g)

	if stats.TotalNodes != 7 {
		t.Errorf("expected TotalNodes 7, got %d", stats.TotalNodes)
	}
	if stats.TotalHubs != 2 {
		t.Errorf("expected TotalHubs 2, got %d", stats.TotalHubs)
	}
	if stats.MaxInDegree != 5 {
		t.Errorf("expected MaxInDegree 5, got %d", stats.MaxInDegree)
	}
	if stats.CriticalHubs != 0 {
		t.Errorf("expected CriticalHubs 0 (max in-degree is 5), got %d", stats.CriticalHubs)
	}
}

func TestGetStats_EmptyGraphHasZeroAverage(t *testing.T) {
	g := graph.New(3, nil)
	stats := GetStats(g)

	if stats.AvgInDegree != 0.0 {
		t.Errorf("expected AvgInDegree 0.0 for graph with no in-edges, got %f", stats.AvgInDegree)
	}
}

func TestComputeHubScores_ZipOrder(t *testing.T) {
	g := graph.New(4, []graph.Edge{{0, 2}, {1, 2}, {2, 3}})
	scores := ComputeHubScores(g)

	if len(scores) == 0 {
		t.Fatal("expected at least one scored node")
	}
	if scores[0].Node != 2 {
		t.Errorf("expected node 2 to have the top score, got node %d", scores[0].Node)
	}
}

func TestComputeHubScores_OmitsZeroInDegree(t *testing.T) {
	g := graph.New(3, []graph.Edge{{0, 1}})
	scores := ComputeHubScores(g)

	for _, s := range scores {
		if s.Node == 0 {
			t.Errorf("node 0 has in-degree 0 and must be omitted, got score %v", s)
		}
	}
}

func TestComputeHubScores_LargeGraphUsesParallelPath(t *testing.T) {
	const n = 1000
	edges := make([]graph.Edge, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge{Src: i, Tgt: 0})
	}
	g := graph.New(n, edges)
	scores := ComputeHubScores(g)

	if len(scores) != 1 || scores[0].Node != 0 {
		t.Fatalf("expected single scored node 0, got %v", scores)
	}
}
