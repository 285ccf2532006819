// Package graph provides the compact dense-integer graph representation
// shared by the pagerank, hub, and kernel packages.
package graph

// Edge is a directed edge from Src to Tgt, both dense node identifiers in
// [0, NumNodes).
type Edge struct {
	Src int
	Tgt int
}

// Graph is an immutable adjacency representation built once from an edge
// list. Out-neighbors and in-neighbors preserve the insertion order of the
// input edges. Edges with either endpoint outside [0, NumNodes) are dropped
// during construction; self-loops and parallel edges are kept as given.
type Graph struct {
	NumNodes int

	// out[i] lists the nodes i has an edge to, in input order.
	out [][]int
	// in[i] lists the nodes that have an edge to i, in input order.
	in [][]int
	// outDegree[i] == len(out[i]), cached for the PageRank hot loop.
	outDegree []int
}

// New builds a Graph from numNodes and edges. Out-of-range edges are
// silently discarded; numNodes == 0 discards every edge.
func New(numNodes int, edges []Edge) *Graph {
	if numNodes < 0 {
		numNodes = 0
	}

	g := &Graph{
		NumNodes:  numNodes,
		out:       make([][]int, numNodes),
		in:        make([][]int, numNodes),
		outDegree: make([]int, numNodes),
	}

	for _, e := range edges {
		if e.Src < 0 || e.Src >= numNodes || e.Tgt < 0 || e.Tgt >= numNodes {
			continue
		}
		g.out[e.Src] = append(g.out[e.Src], e.Tgt)
		g.in[e.Tgt] = append(g.in[e.Tgt], e.Src)
		g.outDegree[e.Src]++
	}

	return g
}

// OutNeighbors returns node i's out-neighbors in insertion order. The
// returned slice must not be mutated by the caller.
func (g *Graph) OutNeighbors(i int) []int {
	if i < 0 || i >= g.NumNodes {
		return nil
	}
	return g.out[i]
}

// InNeighbors returns node i's in-neighbors in insertion order. The
// returned slice must not be mutated by the caller.
func (g *Graph) InNeighbors(i int) []int {
	if i < 0 || i >= g.NumNodes {
		return nil
	}
	return g.in[i]
}

// OutDegree returns the number of outgoing edges from node i. Clamps
// out-of-range ids to 0 rather than panicking, per the kernel's
// no-panic-on-invalid-lookup contract.
func (g *Graph) OutDegree(i int) int {
	if i < 0 || i >= g.NumNodes {
		return 0
	}
	return g.outDegree[i]
}

// InDegree returns the number of incoming edges to node i.
func (g *Graph) InDegree(i int) int {
	if i < 0 || i >= g.NumNodes {
		return 0
	}
	return len(g.in[i])
}

// InDegrees returns the non-zero in-degree table: node id -> count. A
// missing key denotes zero, matching the data model's degree-table
// invariant.
func (g *Graph) InDegrees() map[int]int {
	degrees := make(map[int]int)
	for i := 0; i < g.NumNodes; i++ {
		if d := len(g.in[i]); d > 0 {
			degrees[i] = d
		}
	}
	return degrees
}

// OutDegrees returns the non-zero out-degree table: node id -> count.
func (g *Graph) OutDegrees() map[int]int {
	degrees := make(map[int]int)
	for i := 0; i < g.NumNodes; i++ {
		if d := g.outDegree[i]; d > 0 {
			degrees[i] = d
		}
	}
	return degrees
}

// DanglingNodes returns the ids of every node with out-degree zero.
func (g *Graph) DanglingNodes() []int {
	var dangling []int
	for i := 0; i < g.NumNodes; i++ {
		if g.outDegree[i] == 0 {
			dangling = append(dangling, i)
		}
	}
	return dangling
}
